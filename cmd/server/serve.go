package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pinkhub/backend/internal/catalog"
	"pinkhub/backend/internal/database"
	"pinkhub/backend/internal/handler"
	"pinkhub/backend/internal/hub"
	"pinkhub/backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serve(cmd *cobra.Command, _ []string) error {
	cfg := a.cfg
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	database.Connect(cfg.DatabaseURL, a.logWriter)
	if cfg.SeedDatabase {
		n, err := database.Seed(ctx, database.DB, catalog.DefaultRecords())
		if err != nil {
			return fmt.Errorf("seed games: %w", err)
		}
		if n > 0 {
			slog.Info("seeded games table", "count", n)
		}
	}

	cat, err := a.loadCatalog(ctx, database.DB)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	engine := catalog.NewEngine(cat, cfg.CatalogLocale)
	slog.Info("catalog ready", "source", cfg.CatalogSource, "games", cat.Len())

	h := hub.NewHub(slog.Default())
	sessions := session.NewManager(engine, session.Config{
		ClearDelay:  cfg.MessageClearDelay,
		IdleTimeout: cfg.SessionIdleTimeout,
		Broadcaster: h,
		Logger:      slog.Default(),
	})
	if cfg.SessionIdleTimeout > 0 {
		go sessions.Run(ctx, cfg.SessionSweepInterval)
	}

	router := handler.NewRouter(
		handler.NewCatalogHandler(engine),
		handler.NewSessionHandler(sessions, h, slog.Default()),
		slog.Default(),
	)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.HTTPAddr, "swagger", "/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		sessions.Shutdown()
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutdown signal received")
	// Ending sessions closes their event streams so Shutdown can drain.
	sessions.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
