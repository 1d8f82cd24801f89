package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/osse101/DecisionSpinner_Go/internal/bootstrap"
	"github.com/osse101/DecisionSpinner_Go/internal/config"
)

// reset wipes the stored options and history of the configured driver.
// The next server start falls back to the default options.
func main() {
	yes := flag.Bool("yes", false, "Skip the confirmation guard")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !*yes {
		log.Fatalf("Refusing to clear %s storage without -yes", cfg.StorageDriver)
	}

	ctx := context.Background()
	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer storage.State.Close()

	log.Printf("Clearing %s storage...\n", storage.Driver)
	if err := storage.State.Clear(ctx); err != nil {
		log.Fatalf("Failed to clear storage: %v", err)
	}

	log.Println("✅ Storage reset complete!")
}
