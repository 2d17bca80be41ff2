// @title Trust Skin Hub API
// @version 1.0
// @description Mystery-box catalog, operator reviews and portfolio analysis API
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/whaamkabaam/trust-skin-hub/internal/bootstrap"
	"github.com/whaamkabaam/trust-skin-hub/internal/config"
	"github.com/whaamkabaam/trust-skin-hub/internal/database"
	"github.com/whaamkabaam/trust-skin-hub/internal/handler"
	"github.com/whaamkabaam/trust-skin-hub/internal/publisher"
	"github.com/whaamkabaam/trust-skin-hub/internal/server"
)

const (
	dbMaxConnections = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port)

	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)
	services, err := bootstrap.InitializeServices(cfg, repos)
	if err != nil {
		slog.Error("Service initialization failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisherWorker := publisher.New(services.Operator, time.Duration(cfg.PublishInterval)*time.Second)
	publisherWorker.Start(ctx)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool,
		services.Catalog, services.Operator, services.Content, services.Importer)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:          srv,
		PublisherWorker: publisherWorker,
	})
}
