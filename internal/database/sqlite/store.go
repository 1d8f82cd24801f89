// Package sqlite stores spinner state in a single sqlite file
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/logger"
)

const timeLayout = time.RFC3339Nano

// Store is a State driver over database/sql and modernc.org/sqlite
type Store struct {
	db *sql.DB
}

// NewStore wraps an open, migrated database
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) keyExists(ctx context.Context, key string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM spinner_state_keys WHERE key = ?", key).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check state key: %w", err)
	}
	return n > 0, nil
}

func markKey(ctx context.Context, tx *sql.Tx, key string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO spinner_state_keys (key, updated_at) VALUES (?, ?) "+
			"ON CONFLICT (key) DO UPDATE SET updated_at = excluded.updated_at",
		key, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to mark state key: %w", err)
	}
	return nil
}

func (s *Store) LoadOptions(ctx context.Context) ([]domain.Option, error) {
	exists, err := s.keyExists(ctx, domain.StorageKeyOptions)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrStateNotFound
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id, text, color, weight FROM spinner_options ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	opts := []domain.Option{}
	for rows.Next() {
		var o domain.Option
		if err := rows.Scan(&o.ID, &o.Text, &o.Color, &o.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}

func (s *Store) SaveOptions(ctx context.Context, options []domain.Option) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM spinner_options"); err != nil {
			return fmt.Errorf("failed to delete options: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO spinner_options (position, id, text, color, weight) VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, o := range options {
			if _, err := stmt.ExecContext(ctx, i, o.ID, o.Text, o.Color, o.Weight); err != nil {
				return fmt.Errorf("failed to insert option %d: %w", i, err)
			}
		}
		return markKey(ctx, tx, domain.StorageKeyOptions)
	})
}

func (s *Store) LoadHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	exists, err := s.keyExists(ctx, domain.StorageKeyHistory)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrStateNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, winner_id, winner_text, winner_color, winner_weight, spun_at, total_options "+
			"FROM spinner_history ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var (
			e      domain.HistoryEntry
			spunAt string
		)
		if err := rows.Scan(&e.ID, &e.Winner.ID, &e.Winner.Text, &e.Winner.Color, &e.Winner.Weight,
			&spunAt, &e.TotalOptions); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		ts, err := time.Parse(timeLayout, spunAt)
		if err != nil {
			return nil, fmt.Errorf("%w: history %s: %v", domain.ErrStateMalformed, e.ID, err)
		}
		e.Timestamp = ts
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) SaveHistory(ctx context.Context, entries []domain.HistoryEntry) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM spinner_history"); err != nil {
			return fmt.Errorf("failed to delete history: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO spinner_history (position, id, winner_id, winner_text, winner_color, winner_weight, spun_at, total_options) "+
				"VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, e := range entries {
			if _, err := stmt.ExecContext(ctx, i, e.ID, e.Winner.ID, e.Winner.Text, e.Winner.Color, e.Winner.Weight,
				e.Timestamp.UTC().Format(timeLayout), e.TotalOptions); err != nil {
				return fmt.Errorf("failed to insert history entry %d: %w", i, err)
			}
		}
		return markKey(ctx, tx, domain.StorageKeyHistory)
	})
}

func (s *Store) Clear(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"spinner_options", "spinner_history", "spinner_state_keys"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
