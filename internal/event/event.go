package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// MetadataString returns a string metadata value, or "" when the key is
// absent or not a string
func (e Event) MetadataString(key string) string {
	m, ok := e.Metadata.(map[string]interface{})
	if !ok {
		return ""
	}
	v, _ := m[key].(string)
	return v
}

// Event types published by the spinner
const (
	SpinStarted     Type = Type(domain.EventTypeSpinStarted)
	SpinSettled     Type = Type(domain.EventTypeSpinSettled)
	SpinCancelled   Type = Type(domain.EventTypeSpinCancelled)
	OptionsChanged  Type = Type(domain.EventTypeOptionsChanged)
	HistoryRecorded Type = Type(domain.EventTypeHistoryRecorded)
	HistoryCleared  Type = Type(domain.EventTypeHistoryCleared)
)

// Type-safe event constructors

// NewSpinStartedEvent creates a spin.started event
func NewSpinStartedEvent(spinID string, start, final float64, totalOptions int, duration time.Duration, easing string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinStarted,
		Payload: domain.SpinStartedPayload{
			SpinID:       spinID,
			StartAngle:   start,
			FinalAngle:   final,
			TotalOptions: totalOptions,
			DurationMS:   duration.Milliseconds(),
			Easing:       easing,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"spin_id": spinID,
		},
	}
}

// NewSpinSettledEvent creates a spin.settled event from a completed result
func NewSpinSettledEvent(result domain.SpinResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinSettled,
		Payload: domain.SpinSettledPayload{
			SpinID:        result.SpinID,
			Winner:        result.Winner,
			WinnerIndex:   result.WinnerIndex,
			FinalAngle:    result.FinalAngle,
			TotalOptions:  result.TotalOptions,
			DurationMS:    result.DurationMS,
			ParticleCount: domain.CelebrationParticleCount,
			Timestamp:     result.SettledAt.Unix(),
		},
		Metadata: map[string]interface{}{
			"spin_id": result.SpinID,
		},
	}
}

// NewSpinCancelledEvent creates a spin.cancelled event
func NewSpinCancelledEvent(spinID, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinCancelled,
		Payload: domain.SpinCancelledPayload{
			SpinID:    spinID,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"spin_id": spinID,
		},
	}
}

// NewOptionsChangedEvent creates an options.changed event carrying the new
// list and its revision
func NewOptionsChangedEvent(action domain.OptionAction, options []domain.Option, revision uint64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    OptionsChanged,
		Payload: domain.OptionsChangedPayload{
			Action:      action,
			OptionCount: len(options),
			Options:     domain.CloneOptions(options),
			Revision:    revision,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"action": string(action),
		},
	}
}

// NewHistoryRecordedEvent creates a history.recorded event
func NewHistoryRecordedEvent(entry domain.HistoryEntry, count int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HistoryRecorded,
		Payload: domain.HistoryRecordedPayload{
			Entry:     entry,
			Count:     count,
			Timestamp: entry.Timestamp.Unix(),
		},
		Metadata: nil,
	}
}

// NewHistoryClearedEvent creates a history.cleared event
func NewHistoryClearedEvent() Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     HistoryCleared,
		Payload:  domain.HistoryClearedPayload{Timestamp: time.Now().Unix()},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously in subscription order. Subscribers that
	// must observe a mutation before the caller returns rely on this.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlerErrorFormat, len(errs), len(handlers), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
