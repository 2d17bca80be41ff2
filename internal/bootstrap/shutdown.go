package bootstrap

import (
	"context"
	"log/slog"

	"github.com/whaamkabaam/trust-skin-hub/internal/publisher"
	"github.com/whaamkabaam/trust-skin-hub/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server          *server.Server
	PublisherWorker *publisher.Worker
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Publisher worker (let an in-flight publish pass finish)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.PublisherWorker != nil {
		if err := components.PublisherWorker.Stop(ctx); err != nil {
			slog.Error(LogMsgPublisherStopFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
