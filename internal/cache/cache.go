// Package cache is a thin redis layer for list projections. List
// endpoints are the only hot read path without a primary key, so they
// are the only thing cached; a successful mutation on a catalog drops
// that catalog's entry. The cache is strictly best-effort: a nil
// client or an unreachable server turns every call into a no-op and
// the store answers directly.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "starzz:list:"

// Cache wraps a redis client with the list-key convention. A Cache
// with a nil client is valid and does nothing.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New builds a Cache. rdb may be nil when redis is unavailable.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list payload for an entity and whether it
// was present.
func (c *Cache) GetList(ctx context.Context, entity string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, keyPrefix+entity).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

// SetList stores a list payload for an entity under the configured TTL.
func (c *Cache) SetList(ctx context.Context, entity string, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Set(ctx, keyPrefix+entity, payload, c.ttl).Err()
}

// Invalidate drops the cached list for an entity. Called after every
// successful create, update or delete.
func (c *Cache) Invalidate(ctx context.Context, entity string) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, keyPrefix+entity).Err()
}
