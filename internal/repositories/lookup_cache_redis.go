package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/petpal-api/internal/logger"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

const lookupKeyPrefix = "petpal:lookup:"

// LookupCacheRedisRepository keeps memoized upstream responses in Redis.
// Keys expire natively at the entry's expires_at.
type LookupCacheRedisRepository struct {
	client *redis.Client
}

func NewLookupCacheRedisRepository(client *redis.Client) *LookupCacheRedisRepository {
	return &LookupCacheRedisRepository{client: client}
}

// Get returns nil, nil when the key is absent or already expired.
func (r *LookupCacheRedisRepository) Get(ctx context.Context, key string) (*models.LookupCacheEntry, error) {
	redisKey := lookupKeyPrefix + key

	val, err := r.client.Get(ctx, redisKey).Bytes()
	logger.Log.Infow(
		"redis get",
		"key", redisKey,
		"size", len(val),
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry models.LookupCacheEntry
	if err := json.Unmarshal(val, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Upsert stores the entry until its expiry. Entries that are already expired are skipped.
func (r *LookupCacheRedisRepository) Upsert(ctx context.Context, entry *models.LookupCacheEntry) error {
	redisKey := lookupKeyPrefix + entry.Key

	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, redisKey, data, ttl).Err()
	logger.Log.Infow(
		"redis set",
		"key", redisKey,
		"ttl", ttl,
		"error", err,
	)
	return err
}
