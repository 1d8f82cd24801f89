package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/DecisionSpinner_Go/internal/event"
	"github.com/osse101/DecisionSpinner_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Services           *Services
	Storage            *Storage
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in this order:
// 1. SSE hub (ends open streams so the server can drain)
// 2. HTTP server (stop accepting new requests, finish in-flight spins)
// 3. Background jobs and services (cancel pending timers)
// 4. Event publisher (flush pending events)
// 5. Storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	svc := components.Services
	if svc != nil && svc.Hub != nil {
		svc.Hub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if svc != nil {
		if svc.Scheduler != nil {
			svc.Scheduler.Stop()
		}
		if svc.Pool != nil {
			svc.Pool.Stop()
		}
		if svc.Spins != nil {
			shutdownService(ctx, ServiceNameSpin, svc.Spins)
		}
		if svc.Ads != nil {
			if err := svc.Ads.Teardown(ctx); err != nil {
				slog.Error(ServiceNameAds+LogMsgServiceShutdownFailed, "error", err)
			}
		}
	}

	// Shutdown resilient publisher after the services so their last events are flushed
	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Storage != nil {
		if err := components.Storage.State.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
