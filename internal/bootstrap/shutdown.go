package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SpaceBot_Go/internal/database"
	"github.com/osse101/SpaceBot_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	MarketJobs *MarketJobs
	Storage    database.Pool
}

// GracefulShutdown stops the HTTP server first so no new requests arrive, then the
// background market jobs, and closes storage last.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.MarketJobs != nil {
		slog.Info(LogMsgStoppingMarketJobs)
		components.MarketJobs.Stop()
	}

	if components.Storage != nil {
		slog.Info(LogMsgClosingStorage)
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
