package models

import (
	"encoding/json"
	"time"
)

// LookupCacheEntry is a memoized upstream response keyed by a normalized query.
type LookupCacheEntry struct {
	Key       string          `json:"key" db:"query_key"`         // Normalized query, e.g. nearby:51.5074:-0.1278:5000
	Payload   json.RawMessage `json:"payload" db:"payload"`       // Curated upstream response
	ExpiresAt time.Time       `json:"expires_at" db:"expires_at"` // Absolute expiry
}

// IsFresh reports whether the entry is still valid at now.
func (e *LookupCacheEntry) IsFresh(now time.Time) bool {
	return e.ExpiresAt.After(now)
}
