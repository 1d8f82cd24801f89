package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEClient_DispatchesEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/events", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "spin.settled,history.cleared", r.URL.Query().Get("types"))

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event: connected\ndata: {\"client_id\":\"c\"}\n\n")
		fmt.Fprint(w, ": comment\n\n")
		fmt.Fprint(w, "id: 7\nevent: spin.settled\ndata: {\"type\":\"spin.settled\",\"timestamp\":1,\"payload\":{\"spin_id\":\"s1\",\"winner\":{\"text\":\"Tacos\"},\"total_options\":3,\"timestamp\":1767225600}}\n\n")
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewSSEClient(srv.URL, "key", []string{SSEEventTypeSpinSettled, SSEEventTypeHistoryCleared})
	received := make(chan SSEEvent, 4)
	client.OnEvent(SSEEventTypeSpinSettled, func(e SSEEvent) error {
		received <- e
		return nil
	})
	client.Start(context.Background())
	defer client.Stop()

	select {
	case e := <-received:
		assert.Equal(t, "7", e.ID)
		assert.JSONEq(t, `{"spin_id":"s1","winner":{"text":"Tacos"},"total_options":3,"timestamp":1767225600}`, string(e.Payload))
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
	assert.Eventually(t, client.IsConnected, time.Second, 10*time.Millisecond)
}

func TestSSEClient_StopIsIdempotent(t *testing.T) {
	client := NewSSEClient("http://127.0.0.1:1", "", nil)
	client.initialBackoff = 10 * time.Millisecond
	client.Start(context.Background())
	time.Sleep(30 * time.Millisecond)

	client.Stop()
	client.Stop()
	assert.False(t, client.IsConnected())
}

func TestSSENotifier(t *testing.T) {
	var mu sync.Mutex
	var sent []*discordgo.MessageEmbed
	n := &SSENotifier{send: func(e *discordgo.MessageEmbed) error {
		mu.Lock()
		defer mu.Unlock()
		sent = append(sent, e)
		return nil
	}}

	err := n.handleSpinSettled(SSEEvent{
		Type:    SSEEventTypeSpinSettled,
		Payload: []byte(`{"spin_id":"s1","winner":{"text":"Tacos","color":"#FF6B6B"},"total_options":3,"timestamp":1767225600}`),
	})
	require.NoError(t, err)
	require.NoError(t, n.handleHistoryCleared(SSEEvent{Type: SSEEventTypeHistoryCleared}))

	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].Description, "**Tacos**")
	assert.Equal(t, 0xFF6B6B, sent[0].Color)
	assert.Equal(t, "2026-01-01T00:00:00Z", sent[0].Timestamp)
	assert.Contains(t, sent[1].Title, "History Cleared")

	assert.Error(t, n.handleSpinSettled(SSEEvent{Payload: []byte(`nope`)}))

	n.send = func(*discordgo.MessageEmbed) error { return ErrNoNotifyChannel }
	assert.True(t, errors.Is(n.handleHistoryCleared(SSEEvent{}), ErrNoNotifyChannel))
}
