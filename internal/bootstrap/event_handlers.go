package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/DecisionSpinner_Go/internal/analytics"
	"github.com/osse101/DecisionSpinner_Go/internal/event"
	"github.com/osse101/DecisionSpinner_Go/internal/history"
	"github.com/osse101/DecisionSpinner_Go/internal/metrics"
	"github.com/osse101/DecisionSpinner_Go/internal/spin"
	"github.com/osse101/DecisionSpinner_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus       event.Bus
	SpinService    spin.Service
	HistoryService history.Service
	Hub            *sse.Hub
	Tracker        *analytics.Tracker
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// the spin service resets on option changes, history records settled spins,
// and metrics, analytics and the SSE stream observe everything.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	deps.SpinService.Subscribe(deps.EventBus)
	deps.HistoryService.Subscribe(deps.EventBus)

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Tracker != nil {
		deps.Tracker.Register(deps.EventBus)
		slog.Info(LogMsgAnalyticsRegistered)
	}

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	return nil
}
