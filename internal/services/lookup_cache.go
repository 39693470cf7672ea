package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/petpal-api/internal/logger"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

//go:generate mockgen -source=lookup_cache.go -destination=mock_lookup_cache.go -package=services

// DefaultLookupTTL is how long a memoized upstream response stays valid.
const DefaultLookupTTL = time.Hour

// LookupCacheStore holds memoized upstream responses.
// Get returns nil, nil when the key is absent.
type LookupCacheStore interface {
	Get(ctx context.Context, key string) (*models.LookupCacheEntry, error)
	Upsert(ctx context.Context, entry *models.LookupCacheEntry) error
}

// FetchFunc produces a fresh payload on a cache miss.
type FetchFunc func(ctx context.Context) (json.RawMessage, error)

// LookupCache memoizes external lookups for a fixed TTL.
type LookupCache struct {
	store LookupCacheStore
	ttl   time.Duration
	now   func() time.Time
}

// LookupCacheOption configures a LookupCache.
type LookupCacheOption func(*LookupCache)

// WithTTL overrides the default entry lifetime.
func WithTTL(ttl time.Duration) LookupCacheOption {
	return func(c *LookupCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithCacheClock overrides the time source.
func WithCacheClock(now func() time.Time) LookupCacheOption {
	return func(c *LookupCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewLookupCache creates a new LookupCache over store.
func NewLookupCache(store LookupCacheStore, opts ...LookupCacheOption) *LookupCache {
	c := &LookupCache{
		store: store,
		ttl:   DefaultLookupTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrFetch returns the cached payload for key while it is fresh, otherwise
// calls fetch and stores its result. Fetch failures are returned and never cached.
func (c *LookupCache) GetOrFetch(ctx context.Context, key string, fetch FetchFunc) (json.RawMessage, error) {
	now := c.now()

	entry, err := c.store.Get(ctx, key)
	if err != nil {
		logger.Log.Warnw("lookup cache read failed, fetching", "key", key, "error", err)
	} else if entry != nil && entry.IsFresh(now) {
		logger.Log.Debugw("lookup cache hit", "key", key)
		return entry.Payload, nil
	}

	payload, err := fetch(ctx)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			return nil, err
		}
		return nil, &UpstreamError{Err: err}
	}

	fresh := &models.LookupCacheEntry{
		Key:       key,
		Payload:   payload,
		ExpiresAt: now.Add(c.ttl),
	}
	if err := c.store.Upsert(ctx, fresh); err != nil {
		logger.Log.Errorw("lookup cache write failed", "key", key, "error", err)
	}

	return payload, nil
}

// fetchJSON adapts a typed fetch into a FetchFunc.
func fetchJSON[T any](fetch func(ctx context.Context) (T, error)) FetchFunc {
	return func(ctx context.Context) (json.RawMessage, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		return b, nil
	}
}
