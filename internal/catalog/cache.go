package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	pkgredis "github.com/angelmondragon/storefront-backend/pkg/redis"
)

// ErrCacheMiss is returned when an item is not cached.
var ErrCacheMiss = errors.New("cache miss")

// ItemCache stores item detail lookups.
type ItemCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Item, error)
	Set(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CacheKey(kind, id string) string
}

// RedisItemCache caches items as JSON with a jittered TTL.
type RedisItemCache struct {
	store  cacheStore
	ttl    time.Duration
	jitter time.Duration
}

// NewRedisItemCache wraps the redis client. A non-positive ttl disables caching.
func NewRedisItemCache(store cacheStore, ttl time.Duration) *RedisItemCache {
	return &RedisItemCache{store: store, ttl: ttl, jitter: ttl / 10}
}

func (c *RedisItemCache) key(id uuid.UUID) string {
	return c.store.CacheKey("item", id.String())
}

func (c *RedisItemCache) Get(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if c == nil || c.store == nil || c.ttl <= 0 {
		return nil, ErrCacheMiss
	}
	raw, err := c.store.Get(ctx, c.key(id))
	if err != nil {
		if pkgredis.IsNil(err) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var item models.Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &item, nil
}

func (c *RedisItemCache) Set(ctx context.Context, item *models.Item) error {
	if c == nil || c.store == nil || c.ttl <= 0 || item == nil {
		return nil
	}
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	ttl := c.ttl
	if c.jitter > 0 {
		ttl += rand.N(c.jitter)
	}
	if err := c.store.Set(ctx, c.key(item.ID), payload, ttl); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *RedisItemCache) Delete(ctx context.Context, id uuid.UUID) error {
	if c == nil || c.store == nil {
		return nil
	}
	return c.store.Del(ctx, c.key(id))
}
