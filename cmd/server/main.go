package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tastebite/orderapi/internal/api"
	"github.com/tastebite/orderapi/internal/catalog"
	"github.com/tastebite/orderapi/internal/config"
	"github.com/tastebite/orderapi/internal/placement"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting order API server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	// Wire components: seed catalog, in-memory order store, placement gate
	cat := catalog.New(catalog.SeedMenu())
	store := placement.NewStore()
	svc := placement.NewService(store, logger)

	// Initialize router
	router := api.NewRouter(cfg, cat, store, svc, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Simulated status feed: advances placed orders until shutdown
	feedCtx, stopFeed := context.WithCancel(context.Background())
	go placement.RunStatusFeed(feedCtx, store, cfg.StatusFeed.Interval, logger)
	logger.Info("Status feed started", zap.Duration("interval", cfg.StatusFeed.Interval))

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopFeed()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
