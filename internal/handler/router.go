package handler

import (
	"log/slog"
	"net/http"

	"pinkhub/backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every route of the API.
func NewRouter(catalogHandler *CatalogHandler, sessionHandler *SessionHandler, log *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logger.Middleware(log))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(apiV1)
		sessionHandler.RegisterRoutes(apiV1)
		RegisterGameRoutes(apiV1)
	}

	return router
}
