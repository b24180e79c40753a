package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

type memoryEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// memoryStore is an in-process Store guarded by a RWMutex
type memoryStore[T any] struct {
	name    string
	ttl     time.Duration
	now     clock
	mutex   sync.RWMutex
	entries map[string]memoryEntry[T]
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewMemoryStore creates an in-process store whose entries live for ttl
func NewMemoryStore[T any](name string, ttl time.Duration) Store[T] {
	return newMemoryStore[T](name, ttl, time.Now)
}

func newMemoryStore[T any](name string, ttl time.Duration, now clock) *memoryStore[T] {
	return &memoryStore[T]{
		name:    name,
		ttl:     ttl,
		now:     now,
		entries: make(map[string]memoryEntry[T]),
	}
}

func (m *memoryStore[T]) Name() string {
	return m.name
}

func (m *memoryStore[T]) Get(_ context.Context, key string) (T, bool, error) {
	m.mutex.RLock()
	entry, found := m.entries[key]
	m.mutex.RUnlock()

	if !found || !m.now().Before(entry.expiresAt) {
		m.misses.Add(1)
		var zero T
		return zero, false, nil
	}

	m.hits.Add(1)
	return entry.value, true, nil
}

func (m *memoryStore[T]) Set(_ context.Context, key string, value T) error {
	m.mutex.Lock()
	m.entries[key] = memoryEntry[T]{value: value, expiresAt: m.now().Add(m.ttl)}
	m.mutex.Unlock()
	return nil
}

func (m *memoryStore[T]) Purge(_ context.Context) (int, error) {
	now := m.now()
	removed := 0

	m.mutex.Lock()
	defer m.mutex.Unlock()
	for key, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed, nil
}

func (m *memoryStore[T]) Stats() Stats {
	m.mutex.RLock()
	entries := len(m.entries)
	m.mutex.RUnlock()
	return Stats{Hits: m.hits.Load(), Misses: m.misses.Load(), Entries: entries}
}
