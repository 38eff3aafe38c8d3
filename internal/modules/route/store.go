// README: Route cache backed by Redis.
package route

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sairaj/internal/types"
)

type RedisCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: rdb, ttl: ttl}
}

// cacheKey rounds to five decimals (~1m) so re-picked endpoints share an entry.
func cacheKey(from, to types.Point) string {
	return fmt.Sprintf("route:%.5f,%.5f:%.5f,%.5f", from.Lat, from.Lng, to.Lat, to.Lng)
}

func (c *RedisCache) Get(ctx context.Context, from, to types.Point) (*Route, error) {
	raw, err := c.redis.Get(ctx, cacheKey(from, to)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var r Route
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decoding cached route: %w", err)
	}
	return &r, nil
}

func (c *RedisCache) Set(ctx context.Context, from, to types.Point, r Route) error {
	if r.Fallback {
		return nil
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding route: %w", err)
	}
	if err := c.redis.Set(ctx, cacheKey(from, to), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
