package repository

import (
	"context"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// Options defines persistence for the option list. LoadOptions returns
// domain.ErrStateNotFound when nothing was ever saved and
// domain.ErrStateMalformed when stored data cannot be decoded.
type Options interface {
	LoadOptions(ctx context.Context) ([]domain.Option, error)
	SaveOptions(ctx context.Context, options []domain.Option) error
}

// History defines persistence for spin history, most recent first
type History interface {
	LoadHistory(ctx context.Context) ([]domain.HistoryEntry, error)
	SaveHistory(ctx context.Context, entries []domain.HistoryEntry) error
}

// State is a full storage driver
type State interface {
	Options
	History

	// Clear removes every stored key
	Clear(ctx context.Context) error
	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
	Close() error
}
