package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/event"
	"github.com/osse101/DecisionSpinner_Go/internal/testing/leaktest"
)

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		return e
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHub_FiltersByType(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	spinsOnly := hub.Register([]string{domain.EventTypeSpinSettled})
	waitForClients(t, hub, 2)

	hub.Broadcast(domain.EventTypeOptionsChanged, "opts")
	hub.Broadcast(domain.EventTypeSpinSettled, "spin")

	assert.Equal(t, domain.EventTypeOptionsChanged, receive(t, all).Type)
	assert.Equal(t, domain.EventTypeSpinSettled, receive(t, all).Type)
	assert.Equal(t, domain.EventTypeSpinSettled, receive(t, spinsOnly).Type)
	assert.Empty(t, spinsOnly.EventChannel)
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	slow := hub.Register(nil)
	waitForClients(t, hub, 1)

	for i := 0; i < ClientEventBuffer*2; i++ {
		hub.Broadcast(domain.EventTypeSpinStarted, i)
	}
	require.Eventually(t, func() bool { return len(slow.EventChannel) == ClientEventBuffer }, time.Second, 5*time.Millisecond)
}

func TestHub_UnregisterAndStop(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	hub := NewHub()
	hub.Start()
	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(c.ID)
	waitForClients(t, hub, 0)
	_, open := <-c.EventChannel
	assert.False(t, open)

	other := hub.Register(nil)
	waitForClients(t, hub, 1)
	hub.Stop()
	hub.Stop()
	_, open = <-other.EventChannel
	assert.False(t, open)

	checker.Check(0)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "spin.started", Timestamp: 7, Payload: map[string]int{"n": 3}})
	require.NoError(t, err)
	assert.Equal(t,
		"id: 1\nevent: spin.started\ndata: {\"id\":\"1\",\"type\":\"spin.started\",\"timestamp\":7,\"payload\":{\"n\":3}}\n\n",
		string(msg))
}

func TestParseTypes(t *testing.T) {
	assert.Nil(t, ParseTypes(""))
	assert.Equal(t, []string{"spin.settled", "history.cleared"}, ParseTypes(" spin.settled,,history.cleared ,"))
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register(nil)
	waitForClients(t, hub, 1)

	require.NoError(t, bus.Publish(context.Background(), event.NewSpinCancelledEvent("spin-9", "options changed")))

	e := receive(t, c)
	assert.Equal(t, domain.EventTypeSpinCancelled, e.Type)
	payload, ok := e.Payload.(domain.SpinCancelledPayload)
	require.True(t, ok)
	assert.Equal(t, "spin-9", payload.SpinID)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=history.cleared", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readData := func() Event {
		t.Helper()
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if data, ok := strings.CutPrefix(line, "data: "); ok {
				var e Event
				require.NoError(t, json.Unmarshal([]byte(data), &e))
				return e
			}
		}
	}

	assert.Equal(t, EventTypeConnected, readData().Type)
	waitForClients(t, hub, 1)

	hub.Broadcast(domain.EventTypeSpinSettled, "filtered out")
	hub.Broadcast(domain.EventTypeHistoryCleared, domain.HistoryClearedPayload{Timestamp: 1})
	assert.Equal(t, domain.EventTypeHistoryCleared, readData().Type)

	cancel()
	waitForClients(t, hub, 0)
}
