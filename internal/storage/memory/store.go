// Package memory keeps spinner state in process memory
package memory

import (
	"context"
	"sync"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// Store is a State driver that forgets everything on restart
type Store struct {
	mu      sync.RWMutex
	options []domain.Option
	history []domain.HistoryEntry
	hasOpts bool
	hasHist bool
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

func (s *Store) LoadOptions(_ context.Context) ([]domain.Option, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasOpts {
		return nil, domain.ErrStateNotFound
	}
	return domain.CloneOptions(s.options), nil
}

func (s *Store) SaveOptions(_ context.Context, options []domain.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options = domain.CloneOptions(options)
	s.hasOpts = true
	return nil
}

func (s *Store) LoadHistory(_ context.Context) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasHist {
		return nil, domain.ErrStateNotFound
	}
	out := make([]domain.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out, nil
}

func (s *Store) SaveHistory(_ context.Context, entries []domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = make([]domain.HistoryEntry, len(entries))
	copy(s.history, entries)
	s.hasHist = true
	return nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options, s.history = nil, nil
	s.hasOpts, s.hasHist = false, false
	return nil
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}
