package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/DecisionSpinner_Go/internal/bootstrap"
	"github.com/osse101/DecisionSpinner_Go/internal/config"
)

type CheckStorageCommand struct{}

func (c *CheckStorageCommand) Name() string {
	return "check-storage"
}

func (c *CheckStorageCommand) Description() string {
	return "Wait until the configured storage driver is reachable (with retries)"
}

func (c *CheckStorageCommand) Run(_ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	PrintHeader(fmt.Sprintf("Checking %s storage...", cfg.StorageDriver))

	maxRetries := 30
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		err = pingStorage(cfg)
		if err == nil {
			PrintSuccess("Storage is ready")
			return nil
		}
		fmt.Printf("Storage not ready (%d/%d): %v\n", i+1, maxRetries, err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("storage failed to become ready after %d attempts", maxRetries)
}

func pingStorage(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.State.Close()
	return storage.State.Ping(ctx)
}
