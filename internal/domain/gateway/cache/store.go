package cache

import (
	"context"
	"time"
)

// Store is a keyed cache of one payload type
type Store[T any] interface {
	// Name identifies the store in logs and health details
	Name() string

	// Get returns the cached value; the boolean is false on a miss or an expired entry
	Get(ctx context.Context, key string) (T, bool, error)

	// Set stores the value under key for the store's TTL
	Set(ctx context.Context, key string, value T) error

	// Purge drops expired entries and returns how many were removed
	Purge(ctx context.Context) (int, error)

	// Stats returns hit and miss counters since creation
	Stats() Stats
}

// Stats holds cache counters
type Stats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}

// Key builds the "endpoint::city" cache key
func Key(endpoint string, city string) string {
	return endpoint + "::" + city
}

// clock is swapped by tests
type clock func() time.Time
