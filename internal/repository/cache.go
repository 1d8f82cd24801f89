package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

const cacheSize = 4

type cachedEntry struct {
	Version  string
	Options  []domain.Option
	History  []domain.HistoryEntry
	CachedAt time.Time
}

// Cached is a read-through cache in front of a State driver. Saves write
// through to the driver first and only update the cache on success.
type Cached struct {
	State
	lru *expirable.LRU[string, *cachedEntry]
}

// NewCached wraps inner with an expiring LRU cache
func NewCached(inner State, ttl time.Duration) *Cached {
	return &Cached{
		State: inner,
		lru:   expirable.NewLRU[string, *cachedEntry](cacheSize, nil, ttl),
	}
}

func (c *Cached) get(key string) (*cachedEntry, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry, true
}

// LoadOptions serves from cache when possible
func (c *Cached) LoadOptions(ctx context.Context) ([]domain.Option, error) {
	if entry, ok := c.get(domain.StorageKeyOptions); ok {
		return domain.CloneOptions(entry.Options), nil
	}
	opts, err := c.State.LoadOptions(ctx)
	if err != nil {
		return nil, err
	}
	c.lru.Add(domain.StorageKeyOptions, &cachedEntry{
		Version:  CacheSchemaVersion,
		Options:  domain.CloneOptions(opts),
		CachedAt: time.Now(),
	})
	return opts, nil
}

// SaveOptions writes through
func (c *Cached) SaveOptions(ctx context.Context, options []domain.Option) error {
	if err := c.State.SaveOptions(ctx, options); err != nil {
		c.lru.Remove(domain.StorageKeyOptions)
		return err
	}
	c.lru.Add(domain.StorageKeyOptions, &cachedEntry{
		Version:  CacheSchemaVersion,
		Options:  domain.CloneOptions(options),
		CachedAt: time.Now(),
	})
	return nil
}

// LoadHistory serves from cache when possible
func (c *Cached) LoadHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	if entry, ok := c.get(domain.StorageKeyHistory); ok {
		return cloneHistory(entry.History), nil
	}
	entries, err := c.State.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	c.lru.Add(domain.StorageKeyHistory, &cachedEntry{
		Version:  CacheSchemaVersion,
		History:  cloneHistory(entries),
		CachedAt: time.Now(),
	})
	return entries, nil
}

// SaveHistory writes through
func (c *Cached) SaveHistory(ctx context.Context, entries []domain.HistoryEntry) error {
	if err := c.State.SaveHistory(ctx, entries); err != nil {
		c.lru.Remove(domain.StorageKeyHistory)
		return err
	}
	c.lru.Add(domain.StorageKeyHistory, &cachedEntry{
		Version:  CacheSchemaVersion,
		History:  cloneHistory(entries),
		CachedAt: time.Now(),
	})
	return nil
}

// Clear purges the cache along with the driver
func (c *Cached) Clear(ctx context.Context) error {
	c.lru.Purge()
	return c.State.Clear(ctx)
}

func cloneHistory(entries []domain.HistoryEntry) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(entries))
	copy(out, entries)
	return out
}
