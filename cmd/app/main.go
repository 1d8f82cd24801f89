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

	_ "github.com/osse101/DecisionSpinner_Go/docs"
	"github.com/osse101/DecisionSpinner_Go/internal/bootstrap"
	"github.com/osse101/DecisionSpinner_Go/internal/config"
	"github.com/osse101/DecisionSpinner_Go/internal/handler"
	"github.com/osse101/DecisionSpinner_Go/internal/server"
)

// @title Decision Spinner API
// @version 1.0
// @description Weighted decision wheel with option lists, spin history and a live event stream.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	services, err := bootstrap.InitializeServices(ctx, cfg, bus, publisher, storage)
	if err != nil {
		return err
	}

	handler.InitValidator()

	srv := server.NewServer(server.Settings{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		CORSOrigins:    cfg.CORSAllowedOrigins,
		StorageDriver:  storage.Driver,
	}, server.Services{
		Store:   storage.State,
		Options: services.Options,
		Spins:   services.Spins,
		History: services.History,
		Ads:     services.Ads,
		Hub:     services.Hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Services:           services,
		Storage:            storage,
		ResilientPublisher: publisher,
	})
	return nil
}
