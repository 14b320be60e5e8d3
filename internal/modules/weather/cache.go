// README: Reading cache backed by Redis with the freshness window as TTL.
package weather

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "weather:reading:"

// RedisCache stores JSON-encoded readings keyed by lowercased location.
// The TTL doubles as the freshness window, so an expired entry simply
// misses and forces a fresh upstream fetch.
type RedisCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, location string) (Reading, bool, error) {
	val, err := c.redis.Get(ctx, cacheKey(location)).Result()
	if err == redis.Nil {
		return Reading{}, false, nil
	}
	if err != nil {
		return Reading{}, false, err
	}
	var r Reading
	if err := json.Unmarshal([]byte(val), &r); err != nil {
		return Reading{}, false, err
	}
	return r, true, nil
}

func (c *RedisCache) Put(ctx context.Context, location string, r Reading) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, cacheKey(location), b, c.ttl).Err()
}

func cacheKey(location string) string {
	return cacheKeyPrefix + strings.ToLower(strings.TrimSpace(location))
}
