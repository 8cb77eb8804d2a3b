package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/NutriFind_Go/internal/database/sqlite"
	"github.com/osse101/NutriFind_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Events *EventSystem
	Store  *sqlite.Store
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests, end open streams)
// 2. Event subscribers and the SSE hub
// 3. Record store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if events := components.Events; events != nil {
		slog.Info(LogMsgShuttingDownStreams)
		if events.Subscriber != nil {
			events.Subscriber.Unsubscribe()
		}
		if events.Metrics != nil {
			events.Metrics.Unregister()
		}
		events.Hub.Stop()
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
