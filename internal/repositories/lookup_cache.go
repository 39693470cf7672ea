package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

// LookupCacheRepository keeps memoized upstream responses in Postgres.
type LookupCacheRepository struct {
	db *sqlx.DB
}

func NewLookupCacheRepository(db *sqlx.DB) *LookupCacheRepository {
	return &LookupCacheRepository{db: db}
}

// Get returns nil, nil when the key is absent. Expired rows are returned as is.
func (r *LookupCacheRepository) Get(ctx context.Context, key string) (*models.LookupCacheEntry, error) {
	const query = `
		SELECT query_key, payload::text AS payload, expires_at
		FROM lookup_cache
		WHERE query_key = $1
	`

	var row struct {
		Key       string    `db:"query_key"`
		Payload   string    `db:"payload"`
		ExpiresAt time.Time `db:"expires_at"`
	}
	err := r.db.GetContext(ctx, &row, query, key)
	logQuery(query, []any{key}, row.ExpiresAt, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.LookupCacheEntry{
		Key:       row.Key,
		Payload:   json.RawMessage(row.Payload),
		ExpiresAt: row.ExpiresAt,
	}, nil
}

// Upsert stores the entry, replacing any previous payload for the key.
func (r *LookupCacheRepository) Upsert(ctx context.Context, entry *models.LookupCacheEntry) error {
	const query = `
		INSERT INTO lookup_cache (query_key, payload, expires_at)
		VALUES ($1, $2::jsonb, $3)
		ON CONFLICT (query_key)
		DO UPDATE SET payload = EXCLUDED.payload, expires_at = EXCLUDED.expires_at
	`

	res, err := r.db.ExecContext(ctx, query, entry.Key, string(entry.Payload), entry.ExpiresAt)
	logQuery(query, []any{entry.Key, entry.ExpiresAt}, rowsAffected(res), err)
	return err
}

// DeleteExpired purges entries that expired at or before now.
func (r *LookupCacheRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM lookup_cache WHERE expires_at <= $1`

	res, err := r.db.ExecContext(ctx, query, now)
	n := rowsAffected(res)
	logQuery(query, []any{now}, n, err)
	return n, err
}
