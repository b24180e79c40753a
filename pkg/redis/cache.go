package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON encoded values of type T under "prefix::CacheName::key"
type Cache[T any] struct {
	client *Client
	name   string
	ttl    time.Duration
}

// NewCache creates a typed cache. The TTL comes from the client configuration for the cache name.
func NewCache[T any](client *Client, cacheName string) *Cache[T] {
	return &Cache[T]{
		client: client,
		name:   cacheName,
		ttl:    client.config.TTLFor(cacheName),
	}
}

// Name returns the cache name
func (c *Cache[T]) Name() string {
	return c.name
}

// TTL returns the time to live applied on Set
func (c *Cache[T]) TTL() time.Duration {
	return c.ttl
}

func (c *Cache[T]) buildCacheKey(key string) string {
	return c.client.key(c.name, key)
}

// Get retrieves and decodes a value. The boolean is false when the key does not exist.
func (c *Cache[T]) Get(ctx context.Context, key string) (T, bool, error) {
	var value T
	data, found, err := c.client.getBytes(ctx, c.buildCacheKey(key))
	if err != nil || !found {
		return value, false, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, false, fmt.Errorf("failed to deserialize value of %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores a value using the cache TTL
func (c *Cache[T]) Set(ctx context.Context, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.set(ctx, c.buildCacheKey(key), data, c.ttl)
}

// Clear removes every key of the cache and returns how many were deleted
func (c *Cache[T]) Clear(ctx context.Context) (int, error) {
	return c.client.deleteByPattern(ctx, c.buildCacheKey("*"))
}
