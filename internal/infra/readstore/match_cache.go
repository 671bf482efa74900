package readstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"foodloop-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CachedMatchReadStore puts a short-lived Redis cache in front of the match
// query. Cache failures degrade to a direct read; staleness is bounded by the
// TTL and tolerated, since matching is advisory rather than transactional.
type CachedMatchReadStore struct {
	inner queries.MatchViewRepo
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedMatchReadStore(inner queries.MatchViewRepo, cache *redis.Client, ttl time.Duration) *CachedMatchReadStore {
	return &CachedMatchReadStore{inner: inner, cache: cache, ttl: ttl}
}

func (r *CachedMatchReadStore) FindForWish(ctx context.Context, wishID uuid.UUID, limit, offset int32) ([]*queries.MatchItem, error) {
	key := matchCacheKey(wishID, limit, offset)

	cached, err := r.cache.Get(ctx, key).Bytes()
	if err == nil {
		var items []*queries.MatchItem
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
		slog.Warn("discarding unreadable match cache entry", "key", key)
	} else if err != redis.Nil {
		slog.Warn("match cache read failed", "key", key, "error", err.Error())
	}

	items, err := r.inner.FindForWish(ctx, wishID, limit, offset)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err := r.cache.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			slog.Warn("match cache write failed", "key", key, "error", err.Error())
		}
	}
	return items, nil
}

func matchCacheKey(wishID uuid.UUID, limit, offset int32) string {
	return fmt.Sprintf("match:wish:%s:l%d:o%d", wishID, limit, offset)
}
