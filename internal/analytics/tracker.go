// Package analytics records product analytics from spinner events. Events
// are counted and logged locally; nothing is sent over the network.
package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/event"
	"github.com/osse101/DecisionSpinner_Go/internal/logger"
	"github.com/osse101/DecisionSpinner_Go/internal/metrics"
)

// Categories and actions
const (
	CategoryWheel   = "wheel"
	CategoryOptions = "options"

	ActionSpin           = "spin"
	ActionWinnerSelected = "winner_selected"

	LogMsgTracked           = "Analytics event tracked"
	LogMsgUnexpectedPayload = "Unexpected event payload"
)

// Event is one tracked analytics hit
type Event struct {
	Action   string
	Category string
	Label    string
	Value    int
}

// Tracker turns bus events into analytics hits
type Tracker struct {
	measurementID string

	mu     sync.Mutex
	counts map[string]int
	spins  int
	sink   func(Event)
}

// NewTracker creates a tracker tagged with a measurement id
func NewTracker(measurementID string) *Tracker {
	return &Tracker{
		measurementID: measurementID,
		counts:        make(map[string]int),
	}
}

// Register subscribes to spin and option events
func (t *Tracker) Register(bus event.Bus) {
	bus.Subscribe(event.SpinSettled, t.handleSpinSettled)
	bus.Subscribe(event.OptionsChanged, t.handleOptionsChanged)
}

// OnTrack sets a callback invoked for every tracked hit
func (t *Tracker) OnTrack(fn func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sink = fn
}

func (t *Tracker) handleSpinSettled(ctx context.Context, evt event.Event) error {
	payload, err := event.PayloadAs[domain.SpinSettledPayload](evt)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "error", err)
		return nil
	}

	t.mu.Lock()
	t.spins++
	t.mu.Unlock()

	n := payload.TotalOptions
	t.track(ctx, Event{Action: ActionSpin, Category: CategoryWheel, Label: fmt.Sprintf("%d_options", n), Value: n})
	t.track(ctx, Event{Action: ActionWinnerSelected, Category: CategoryWheel, Label: payload.Winner.Text})
	return nil
}

func (t *Tracker) handleOptionsChanged(ctx context.Context, evt event.Event) error {
	payload, err := event.PayloadAs[domain.OptionsChangedPayload](evt)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "error", err)
		return nil
	}
	t.track(ctx, Event{Action: string(payload.Action), Category: CategoryOptions, Value: payload.OptionCount})
	return nil
}

func (t *Tracker) track(ctx context.Context, e Event) {
	metrics.AnalyticsEvents.WithLabelValues(e.Action, e.Category).Inc()

	t.mu.Lock()
	t.counts[e.Category+"/"+e.Action]++
	sink := t.sink
	t.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgTracked,
		slog.String("measurement_id", t.measurementID),
		slog.String("action", e.Action),
		slog.String("category", e.Category),
		slog.String("label", e.Label),
		slog.Int("value", e.Value))

	if sink != nil {
		sink(e)
	}
}

// Count returns how many hits were tracked for a category and action
func (t *Tracker) Count(category, action string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[category+"/"+action]
}

// Spins returns the number of settled spins seen since start
func (t *Tracker) Spins() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.spins
}
