package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/DecisionSpinner_Go/internal/event"
)

// StreamedTypes are the bus events forwarded to SSE clients
var StreamedTypes = []event.Type{
	event.SpinStarted,
	event.SpinSettled,
	event.SpinCancelled,
	event.OptionsChanged,
	event.HistoryRecorded,
	event.HistoryCleared,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every streamed type
func (s *Subscriber) Subscribe() {
	names := make([]string, len(StreamedTypes))
	for i, t := range StreamedTypes {
		s.bus.Subscribe(t, s.forward)
		names[i] = string(t)
	}
	slog.Info(LogMsgSubscribed, "types", names)
}

// forward rebroadcasts the typed payload unchanged. Stream failures never
// fail the publisher.
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "clients", s.hub.ClientCount())
	return nil
}
