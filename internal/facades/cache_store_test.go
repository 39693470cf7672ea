package facades

import (
	"context"
	"sync"

	"github.com/sbilibin2017/petpal-api/internal/models"
)

type memoryCacheStore struct {
	mu      sync.Mutex
	entries map[string]models.LookupCacheEntry
}

func (m *memoryCacheStore) Get(_ context.Context, key string) (*models.LookupCacheEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *memoryCacheStore) Upsert(_ context.Context, e *models.LookupCacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = map[string]models.LookupCacheEntry{}
	}
	m.entries[e.Key] = *e
	return nil
}
