package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

var testOptions = []domain.Option{
	{ID: "o1", Text: "Pizza", Color: "#FF6B6B"},
	{ID: "o2", Text: "Tacos", Color: "#4ECDC4"},
	{ID: "o3", Text: "Sushi", Color: "#45B7D1", Weight: 2},
}

func settledEvent(spinID string) Event {
	return NewSpinSettledEvent(domain.SpinResult{
		SpinID:       spinID,
		Winner:       testOptions[2],
		WinnerIndex:  2,
		FinalAngle:   3.5,
		TotalOptions: len(testOptions),
		DurationMS:   4000,
		SettledAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	})
}

func TestMemoryBus_DeliversOptionsChangedInSubscriptionOrder(t *testing.T) {
	bus := NewMemoryBus()
	var order []string

	bus.Subscribe(OptionsChanged, func(ctx context.Context, evt Event) error {
		payload, err := PayloadAs[domain.OptionsChangedPayload](evt)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), payload.Revision)
		order = append(order, "spin")
		return nil
	})
	bus.Subscribe(OptionsChanged, func(ctx context.Context, evt Event) error {
		order = append(order, "analytics")
		return nil
	})
	bus.Subscribe(SpinSettled, func(ctx context.Context, evt Event) error {
		t.Fatal("spin.settled handler must not see options.changed")
		return nil
	})

	err := bus.Publish(context.Background(), NewOptionsChangedEvent(domain.OptionActionAdd, testOptions, 7))

	require.NoError(t, err)
	assert.Equal(t, []string{"spin", "analytics"}, order)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewHistoryClearedEvent()))
}

func TestMemoryBus_AggregatesSubscriberErrors(t *testing.T) {
	bus := NewMemoryBus()
	errDisk := errors.New("disk full")
	errWebhook := errors.New("webhook down")
	reached := false

	bus.Subscribe(SpinSettled, func(ctx context.Context, evt Event) error { return errDisk })
	bus.Subscribe(SpinSettled, func(ctx context.Context, evt Event) error {
		reached = true
		return nil
	})
	bus.Subscribe(SpinSettled, func(ctx context.Context, evt Event) error { return errWebhook })

	err := bus.Publish(context.Background(), settledEvent("spin-1"))

	require.Error(t, err)
	assert.True(t, reached, "a failing subscriber must not stop later ones")
	assert.ErrorIs(t, err, errDisk)
	assert.ErrorIs(t, err, errWebhook)
	assert.Contains(t, err.Error(), "2 of 3 subscribers failed on spin.settled")
}

func TestConstructors_CopyOptionsAndTagSpin(t *testing.T) {
	opts := append([]domain.Option(nil), testOptions...)
	evt := NewOptionsChangedEvent(domain.OptionActionEdit, opts, 3)
	opts[0].Text = "changed after publish"

	payload, err := PayloadAs[domain.OptionsChangedPayload](evt)
	require.NoError(t, err)
	assert.Equal(t, "Pizza", payload.Options[0].Text)
	assert.Equal(t, 3, payload.OptionCount)
	assert.Equal(t, EventSchemaVersion, evt.Version)

	settled := settledEvent("spin-42")
	assert.Equal(t, "spin-42", settled.MetadataString("spin_id"))
	assert.Empty(t, NewHistoryClearedEvent().MetadataString("spin_id"))
}

func TestPayloadAs(t *testing.T) {
	t.Run("value payload", func(t *testing.T) {
		payload, err := PayloadAs[domain.SpinSettledPayload](settledEvent("spin-1"))
		require.NoError(t, err)
		assert.Equal(t, "Sushi", payload.Winner.Text)
		assert.Equal(t, 2, payload.WinnerIndex)
	})

	t.Run("pointer payload", func(t *testing.T) {
		evt := Event{Type: HistoryRecorded, Payload: &domain.HistoryRecordedPayload{Count: 4}}
		payload, err := PayloadAs[domain.HistoryRecordedPayload](evt)
		require.NoError(t, err)
		assert.Equal(t, 4, payload.Count)
	})

	t.Run("payload decoded from json", func(t *testing.T) {
		data, err := json.Marshal(settledEvent("spin-9"))
		require.NoError(t, err)
		var evt Event
		require.NoError(t, json.Unmarshal(data, &evt))
		require.IsType(t, map[string]interface{}{}, evt.Payload)

		payload, err := PayloadAs[domain.SpinSettledPayload](evt)
		require.NoError(t, err)
		assert.Equal(t, "spin-9", payload.SpinID)
		assert.Equal(t, "Sushi", payload.Winner.Text)
	})

	t.Run("missing payload", func(t *testing.T) {
		_, err := PayloadAs[domain.SpinSettledPayload](Event{Type: SpinSettled})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spin.settled event has no payload")

		var nilPtr *domain.SpinSettledPayload
		_, err = PayloadAs[domain.SpinSettledPayload](Event{Type: SpinSettled, Payload: nilPtr})
		assert.Error(t, err)
	})

	t.Run("wrong payload shape", func(t *testing.T) {
		evt := Event{Type: SpinSettled, Payload: "not a payload"}
		_, err := PayloadAs[domain.SpinSettledPayload](evt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spin.settled payload")
	})
}
