package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/osse101/DecisionSpinner_Go/internal/config"
	"github.com/osse101/DecisionSpinner_Go/internal/database"
)

// Usage: setup [up|down|status]
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	db, dialect, err := open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if db == nil {
		fmt.Printf("Storage driver %q has no schema, nothing to do.\n", cfg.StorageDriver)
		return
	}
	defer db.Close()

	switch action {
	case "up":
		fmt.Println("Running migrations...")
		err = database.Migrate(ctx, db, dialect)
	case "down":
		fmt.Println("Rolling back the latest migration...")
		err = database.MigrateDown(ctx, db, dialect)
	case "status":
		err = printStatus(ctx, db, dialect)
	default:
		log.Fatalf("Unknown action %q (want up, down or status)", action)
	}
	if err != nil {
		log.Fatalf("Migration %s failed: %v", action, err)
	}
	fmt.Println("Done.")
}

// open connects to the configured SQL store. It returns a nil handle for
// drivers without a schema.
func open(ctx context.Context, cfg *config.Config) (*sql.DB, database.Dialect, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		if err := ensureDatabase(ctx, cfg); err != nil {
			return nil, "", err
		}
		cc, err := pgx.ParseConfig(cfg.GetDBConnString())
		if err != nil {
			return nil, "", fmt.Errorf("invalid connection string: %w", err)
		}
		return stdlib.OpenDB(*cc), database.DialectPostgres, nil
	case config.StorageDriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return db, database.DialectSQLite, nil
	default:
		return nil, "", nil
	}
}

// ensureDatabase creates the target database through the default
// postgres database when it does not exist yet
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	admin := *cfg
	admin.DBName = "postgres"

	conn, err := pgx.Connect(ctx, admin.GetDBConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}

func printStatus(ctx context.Context, db *sql.DB, dialect database.Dialect) error {
	statuses, err := database.Status(ctx, db, dialect)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Printf("%5d  %-8s %s\n", s.Version, state, s.Path)
	}
	return nil
}
