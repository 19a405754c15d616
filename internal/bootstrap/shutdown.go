package bootstrap

import (
	"context"
	"log/slog"
)

type stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server   stopper
	Services *Services
	Store    *Store
}

// GracefulShutdown stops the HTTP listener first, then the sweep scheduler
// and its pool, then waits for in-flight care before closing the store.
// A failing step is logged and the rest still run.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerStopFailed, "error", err)
		}
	}

	if svc := components.Services; svc != nil {
		if svc.Scheduler != nil {
			svc.Scheduler.Stop()
		}
		if svc.Pool != nil {
			if err := svc.Pool.Shutdown(ctx); err != nil {
				slog.Error(LogMsgPoolStopFailed, "error", err)
			}
		}
		if svc.Garden != nil {
			if err := svc.Garden.Shutdown(ctx); err != nil {
				slog.Error(LogMsgGardenStopFailed, "error", err)
			}
		}
	}

	if components.Store != nil {
		components.Store.Close()
	}

	slog.Info(LogMsgStopped)
}
