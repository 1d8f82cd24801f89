package history

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/event"
	"github.com/osse101/DecisionSpinner_Go/internal/logger"
	"github.com/osse101/DecisionSpinner_Go/internal/repository"
)

// Service keeps the most recent spin results, newest first
type Service interface {
	Record(ctx context.Context, winner domain.Option, totalOptions int) (*domain.HistoryEntry, error)
	Clear(ctx context.Context) error
	List(ctx context.Context) []domain.HistoryEntry
	Load(ctx context.Context) error
	Subscribe(bus event.Bus)
}

type service struct {
	repo      repository.History
	publisher event.Publisher
	limit     int
	now       func() time.Time

	mu      sync.Mutex
	entries []domain.HistoryEntry
	// recent spin ids, so a retried settled event is not recorded twice
	recorded map[string]struct{}
}

// NewService creates an empty history bounded to domain.HistoryLimit
func NewService(repo repository.History, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		limit:     domain.HistoryLimit,
		now:       time.Now,
		entries:   []domain.HistoryEntry{},
		recorded:  make(map[string]struct{}),
	}
}

func (s *service) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	stored, err := s.repo.LoadHistory(ctx)
	if err == nil {
		err = validateStored(stored)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil:
		if len(stored) > s.limit {
			stored = stored[:s.limit]
		}
		s.entries = stored
		log.Info(LogMsgHistoryLoaded, "count", len(stored))
	case errors.Is(err, domain.ErrStateNotFound):
		s.entries = []domain.HistoryEntry{}
		log.Info(LogMsgHistoryEmpty)
	default:
		s.entries = []domain.HistoryEntry{}
		log.Warn(LogMsgHistoryMalformed,
			"error", domain.NewPersistenceError("load", domain.StorageKeyHistory, err))
	}
	return nil
}

func validateStored(entries []domain.HistoryEntry) error {
	for i, e := range entries {
		if e.Winner.Text == "" || e.Timestamp.IsZero() {
			return fmt.Errorf("%w: entry %d incomplete", domain.ErrStateMalformed, i)
		}
	}
	return nil
}

func (s *service) Record(ctx context.Context, winner domain.Option, totalOptions int) (*domain.HistoryEntry, error) {
	return s.record(ctx, "", winner, totalOptions)
}

func (s *service) record(ctx context.Context, spinID string, winner domain.Option, totalOptions int) (*domain.HistoryEntry, error) {
	if err := domain.ValidateOptionText(winner.Text); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if spinID != "" {
		if _, seen := s.recorded[spinID]; seen {
			logger.FromContext(ctx).Debug(LogMsgDuplicateSettlement, "spin_id", spinID)
			return nil, nil
		}
		if len(s.recorded) >= s.limit*2 {
			s.recorded = make(map[string]struct{})
		}
		s.recorded[spinID] = struct{}{}
	}

	entry := domain.HistoryEntry{
		ID:           uuid.NewString(),
		Winner:       winner,
		Timestamp:    s.now().UTC(),
		TotalOptions: totalOptions,
	}

	next := make([]domain.HistoryEntry, 0, s.limit)
	next = append(next, entry)
	next = append(next, s.entries...)
	if len(next) > s.limit {
		next = next[:s.limit]
	}
	s.entries = next

	logger.FromContext(ctx).Info(LogMsgHistoryRecorded,
		"entry_id", entry.ID,
		"winner", winner.Text,
		"count", len(s.entries))

	s.saveLocked(ctx)
	s.publish(ctx, event.NewHistoryRecordedEvent(entry, len(s.entries)))
	return &entry, nil
}

// Clear empties the history. Clearing an empty history is not an error.
func (s *service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []domain.HistoryEntry{}
	logger.FromContext(ctx).Info(LogMsgHistoryCleared)
	s.saveLocked(ctx)
	s.publish(ctx, event.NewHistoryClearedEvent())
	return nil
}

func (s *service) List(_ context.Context) []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Subscribe records every settled spin
func (s *service) Subscribe(bus event.Bus) {
	bus.Subscribe(event.SpinSettled, s.handleSpinSettled)
}

// handleSpinSettled never returns an error. Persistence failures are
// already recovered from and a retried event would be a duplicate entry.
func (s *service) handleSpinSettled(ctx context.Context, evt event.Event) error {
	payload, err := event.PayloadAs[domain.SpinSettledPayload](evt)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgUnexpectedPayload, "error", err)
		return nil
	}
	_, _ = s.record(ctx, payload.SpinID, payload.Winner, payload.TotalOptions)
	return nil
}

func (s *service) saveLocked(ctx context.Context) {
	snapshot := make([]domain.HistoryEntry, len(s.entries))
	copy(snapshot, s.entries)
	if err := s.repo.SaveHistory(ctx, snapshot); err != nil {
		logger.FromContext(ctx).Error(LogMsgHistorySaveFailed,
			"error", domain.NewPersistenceError("save", domain.StorageKeyHistory, err))
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}
