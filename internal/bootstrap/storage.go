package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/DecisionSpinner_Go/internal/config"
	"github.com/osse101/DecisionSpinner_Go/internal/database"
	"github.com/osse101/DecisionSpinner_Go/internal/database/postgres"
	"github.com/osse101/DecisionSpinner_Go/internal/database/sqlite"
	"github.com/osse101/DecisionSpinner_Go/internal/repository"
	"github.com/osse101/DecisionSpinner_Go/internal/storage/file"
	"github.com/osse101/DecisionSpinner_Go/internal/storage/memory"
	"github.com/osse101/DecisionSpinner_Go/internal/validation"
)

// Storage is the selected state driver, possibly behind the cache
type Storage struct {
	State  repository.State
	Driver string
}

// InitializeStorage opens the configured driver. SQL drivers run their
// migrations first. Every driver except memory is fronted by the cache
// when STATE_CACHE_TTL is positive.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	state, err := openDriver(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.StorageDriver != config.StorageDriverMemory && cfg.StateCacheTTL > 0 {
		state = repository.NewCached(state, cfg.StateCacheTTL)
	}

	slog.Info(LogMsgStorageInitialized,
		"driver", cfg.StorageDriver,
		"cache_ttl", cfg.StateCacheTTL)

	return &Storage{State: state, Driver: cfg.StorageDriver}, nil
}

func openDriver(ctx context.Context, cfg *config.Config) (repository.State, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		return openPostgres(ctx, cfg)
	case config.StorageDriverSQLite:
		return openSQLite(ctx, cfg.SQLitePath)
	case config.StorageDriverFile:
		store, err := file.New(cfg.StorageDir, validation.NewSchemaValidator())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
		}
		return store, nil
	case config.StorageDriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (repository.State, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectStorage, err)
	}

	// goose needs database/sql; the handle shares the pool and is closed
	// without closing the pool
	db := stdlib.OpenDBFromPool(pool)
	err = database.Migrate(ctx, db, database.DialectPostgres)
	db.Close()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied, "dialect", database.DialectPostgres)

	store, err := postgres.NewStore(pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectStorage, err)
	}
	return store, nil
}

func openSQLite(ctx context.Context, path string) (repository.State, error) {
	if err := os.MkdirAll(filepath.Dir(path), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
	}

	db, err := database.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectStorage, err)
	}

	if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied, "dialect", database.DialectSQLite)

	return sqlite.NewStore(db), nil
}
