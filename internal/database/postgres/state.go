// Package postgres stores spinner state in PostgreSQL tables
package postgres

import (
	"context"
	"fmt"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/repository"
)

// Store is a State driver over a pgx pool. Each save replaces the whole
// list inside one transaction, so readers never see a partial list.
type Store struct {
	pool      *pgxpool.Pool
	txManager *manager.Manager
	getter    *trmpgx.CtxGetter
}

// NewStore wraps pool. The pool is owned by the caller until Close.
func NewStore(pool *pgxpool.Pool) (*Store, error) {
	m, err := manager.New(trmpgx.NewDefaultFactory(pool))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateTxManager, err)
	}
	return &Store{
		pool:      pool,
		txManager: m,
		getter:    trmpgx.DefaultCtxGetter,
	}, nil
}

// TxManager exposes the transaction manager so callers can group saves
func (s *Store) TxManager() repository.TxManager {
	return s.txManager
}

func (s *Store) conn(ctx context.Context) trmpgx.Tr {
	return s.getter.DefaultTrOrDB(ctx, s.pool)
}

func (s *Store) keyExists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.conn(ctx).QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM "+tableStateKeys+" WHERE key = $1)", key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckKey, err)
	}
	return exists, nil
}

func (s *Store) markKey(ctx context.Context, key string) error {
	_, err := s.conn(ctx).Exec(ctx,
		"INSERT INTO "+tableStateKeys+" (key, updated_at) VALUES ($1, $2) "+
			"ON CONFLICT (key) DO UPDATE SET updated_at = EXCLUDED.updated_at",
		key, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarkKey, err)
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

	rows, err := s.conn(ctx).Query(ctx,
		"SELECT id, text, color, weight FROM "+tableOptions+" ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryOptions, err)
	}
	defer rows.Close()

	opts := []domain.Option{}
	for rows.Next() {
		var o domain.Option
		if err := rows.Scan(&o.ID, &o.Text, &o.Color, &o.Weight); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanOption, err)
		}
		opts = append(opts, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryOptions, err)
	}
	return opts, nil
}

func (s *Store) SaveOptions(ctx context.Context, options []domain.Option) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		tr := s.conn(ctx)
		if _, err := tr.Exec(ctx, "DELETE FROM "+tableOptions); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRows, err)
		}

		batch := &pgx.Batch{}
		for i, o := range options {
			batch.Queue("INSERT INTO "+tableOptions+" (position, id, text, color, weight) VALUES ($1, $2, $3, $4, $5)",
				i, o.ID, o.Text, o.Color, o.Weight)
		}
		if batch.Len() > 0 {
			if err := tr.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRows, err)
			}
		}
		return s.markKey(ctx, domain.StorageKeyOptions)
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

	rows, err := s.conn(ctx).Query(ctx,
		"SELECT id, winner_id, winner_text, winner_color, winner_weight, spun_at, total_options FROM "+
			tableHistory+" ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryHistory, err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Winner.ID, &e.Winner.Text, &e.Winner.Color, &e.Winner.Weight,
			&e.Timestamp, &e.TotalOptions); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanHistory, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryHistory, err)
	}
	return entries, nil
}

func (s *Store) SaveHistory(ctx context.Context, entries []domain.HistoryEntry) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		tr := s.conn(ctx)
		if _, err := tr.Exec(ctx, "DELETE FROM "+tableHistory); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRows, err)
		}

		batch := &pgx.Batch{}
		for i, e := range entries {
			batch.Queue("INSERT INTO "+tableHistory+
				" (position, id, winner_id, winner_text, winner_color, winner_weight, spun_at, total_options)"+
				" VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
				i, e.ID, e.Winner.ID, e.Winner.Text, e.Winner.Color, e.Winner.Weight, e.Timestamp.UTC(), e.TotalOptions)
		}
		if batch.Len() > 0 {
			if err := tr.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRows, err)
			}
		}
		return s.markKey(ctx, domain.StorageKeyHistory)
	})
}

// Clear empties every table in one transaction
func (s *Store) Clear(ctx context.Context) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		tr := s.conn(ctx)
		for _, table := range []string{tableOptions, tableHistory, tableStateKeys} {
			if _, err := tr.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("%s from %s: %w", ErrMsgFailedToDeleteRows, table, err)
			}
		}
		return nil
	})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
