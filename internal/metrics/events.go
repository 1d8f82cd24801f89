package metrics

import (
	"context"
	"fmt"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/event"
	"github.com/osse101/DecisionSpinner_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinStarted,
		event.SpinSettled,
		event.SpinCancelled,
		event.OptionsChanged,
		event.HistoryRecorded,
		event.HistoryCleared,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case domain.SpinSettledPayload:
		SpinsTotal.WithLabelValues(OutcomeSettled).Inc()
		SpinOptionCount.Observe(float64(payload.TotalOptions))

	case domain.SpinCancelledPayload:
		SpinsTotal.WithLabelValues(OutcomeCancelled).Inc()

	case domain.OptionsChangedPayload:
		OptionActions.WithLabelValues(string(payload.Action)).Inc()
		OptionCount.Set(float64(payload.OptionCount))

	case domain.HistoryRecordedPayload:
		HistoryEntries.Set(float64(payload.Count))

	case domain.HistoryClearedPayload:
		HistoryEntries.Set(0)

	case domain.SpinStartedPayload:
		// counted in EventsPublished only

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "payload_type", fmt.Sprintf("%T", evt.Payload))
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
