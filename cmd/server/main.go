package main

import (
	"log/slog"
	"os"

	// Swagger imports
	_ "pinkhub/backend/docs" // This is important for swag to find the generated docs
)

// @title           Pink Hub API
// @version         1.0
// @description     Catalog browsing, interaction sessions and the interest form of the Pink Hub landing page.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("server exit", "error", err)
		os.Exit(1)
	}
}
