// Package cache provides the query cache used in front of the program store,
// backed by redis when configured and by an in-process freecache otherwise.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is a byte-oriented key/value cache with expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Redis is a Cache on a redis client.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis wraps a redis client.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, nil
}

func (c *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Local is an in-process Cache.
type Local struct {
	cache *freecache.Cache
}

// NewLocal creates a Local cache of sizeBytes. freecache enforces a 512 KiB
// minimum.
func NewLocal(sizeBytes int) *Local {
	return &Local{cache: freecache.NewCache(sizeBytes)}
}

func (c *Local) Get(_ context.Context, key string) ([]byte, error) {
	b, err := c.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, ErrMiss
	}
	return b, err
}

func (c *Local) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	secs := int(ttl / time.Second)
	if ttl > 0 && secs == 0 {
		secs = 1
	}
	return c.cache.Set([]byte(key), value, secs)
}

func (c *Local) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		c.cache.Del([]byte(k))
	}
	return nil
}
