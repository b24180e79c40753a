package cache

import (
	"context"
	"sync/atomic"

	"zephyr/pkg/redis"
)

// redisStore keeps payloads in Redis; expiry is left to the server
type redisStore[T any] struct {
	cache  *redis.Cache[T]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisStore creates a Store over a named Redis cache. The TTL comes from the client config.
func NewRedisStore[T any](client *redis.Client, name string) Store[T] {
	return &redisStore[T]{cache: redis.NewCache[T](client, name)}
}

func (r *redisStore[T]) Name() string {
	return r.cache.Name()
}

func (r *redisStore[T]) Get(ctx context.Context, key string) (T, bool, error) {
	value, found, err := r.cache.Get(ctx, key)
	if err != nil || !found {
		r.misses.Add(1)
		return value, false, err
	}
	r.hits.Add(1)
	return value, true, nil
}

func (r *redisStore[T]) Set(ctx context.Context, key string, value T) error {
	return r.cache.Set(ctx, key, value)
}

// Purge is a no-op: Redis expires keys itself
func (r *redisStore[T]) Purge(context.Context) (int, error) {
	return 0, nil
}

func (r *redisStore[T]) Stats() Stats {
	return Stats{Hits: r.hits.Load(), Misses: r.misses.Load(), Entries: -1}
}
