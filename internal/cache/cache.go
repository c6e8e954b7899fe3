package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	KeySettings           = "estate:settings"
	KeyFeaturedProperties = "estate:properties:featured"
)

// Cache is an optional redis read-through cache for the hottest public
// reads. A nil *Cache is valid and disables caching, so handlers never
// branch on configuration.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns nil (cache disabled) when url is empty.
func New(url string) (*Cache, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return &Cache{
		rdb: redis.NewClient(opts),
		ttl: time.Minute,
	}, nil
}

// GetJSON reports whether key was present and decoded into dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	if b, err := json.Marshal(v); err == nil {
		c.rdb.Set(ctx, key, b, c.ttl)
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
