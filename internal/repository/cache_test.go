package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/repository"
	"github.com/osse101/DecisionSpinner_Go/internal/storage/memory"
)

// countingState counts loads reaching the wrapped driver
type countingState struct {
	*memory.Store
	optionLoads  int
	historyLoads int
	failSaves    bool
}

func (c *countingState) LoadOptions(ctx context.Context) ([]domain.Option, error) {
	c.optionLoads++
	return c.Store.LoadOptions(ctx)
}

func (c *countingState) LoadHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	c.historyLoads++
	return c.Store.LoadHistory(ctx)
}

func (c *countingState) SaveOptions(ctx context.Context, opts []domain.Option) error {
	if c.failSaves {
		return errors.New("write failed")
	}
	return c.Store.SaveOptions(ctx, opts)
}

func TestCached_ReadThrough(t *testing.T) {
	inner := &countingState{Store: memory.New()}
	cache := repository.NewCached(inner, time.Minute)
	ctx := context.Background()

	_, err := cache.LoadOptions(ctx)
	assert.ErrorIs(t, err, domain.ErrStateNotFound, "misses are not cached")

	opts := []domain.Option{{ID: "a", Text: "A", Weight: 1}, {ID: "b", Text: "B", Weight: 1}}
	require.NoError(t, cache.SaveOptions(ctx, opts))

	for i := 0; i < 3; i++ {
		loaded, err := cache.LoadOptions(ctx)
		require.NoError(t, err)
		assert.Equal(t, opts, loaded)
	}
	assert.Equal(t, 1, inner.optionLoads, "saves populate the cache")
}

func TestCached_ReturnsCopies(t *testing.T) {
	cache := repository.NewCached(memory.New(), time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SaveOptions(ctx, []domain.Option{{ID: "a", Text: "A"}}))
	loaded, err := cache.LoadOptions(ctx)
	require.NoError(t, err)
	loaded[0].Text = "changed"

	again, err := cache.LoadOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].Text)
}

func TestCached_FailedSaveInvalidates(t *testing.T) {
	inner := &countingState{Store: memory.New()}
	cache := repository.NewCached(inner, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SaveOptions(ctx, []domain.Option{{ID: "a", Text: "A"}}))
	inner.failSaves = true
	require.Error(t, cache.SaveOptions(ctx, []domain.Option{{ID: "b", Text: "B"}}))

	loaded, err := cache.LoadOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", loaded[0].Text, "driver state wins after a failed save")
	assert.Equal(t, 1, inner.optionLoads)
}

func TestCached_Expiry(t *testing.T) {
	inner := &countingState{Store: memory.New()}
	cache := repository.NewCached(inner, 20*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, cache.SaveHistory(ctx, []domain.HistoryEntry{{ID: "h"}}))
	_, err := cache.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, inner.historyLoads)

	time.Sleep(60 * time.Millisecond)
	_, err = cache.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.historyLoads)
}

func TestCached_ClearPurges(t *testing.T) {
	inner := &countingState{Store: memory.New()}
	cache := repository.NewCached(inner, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SaveOptions(ctx, []domain.Option{{ID: "a", Text: "A"}}))
	require.NoError(t, cache.Clear(ctx))

	_, err := cache.LoadOptions(ctx)
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}

func TestNoopTxManager(t *testing.T) {
	called := false
	err := repository.NoopTxManager().Do(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
