package cache

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"zephyr/internal/domain/model"
	"zephyr/pkg/redis"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
	RegisterStore(name string, stats func() Stats)
}

// CacheHealthGateway reports the backend state and the counters of the registered stores
type CacheHealthGateway struct {
	backend string
	checker *redis.HealthChecker
	stores  map[string]func() Stats
	mutex   sync.RWMutex
}

// NewMemoryHealthGateway reports an in-process backend, which is always up
func NewMemoryHealthGateway() *CacheHealthGateway {
	return &CacheHealthGateway{backend: "memory", stores: make(map[string]func() Stats)}
}

// NewRedisHealthGateway reports a Redis backend through a ping
func NewRedisHealthGateway(checker *redis.HealthChecker) *CacheHealthGateway {
	return &CacheHealthGateway{backend: "redis", checker: checker, stores: make(map[string]func() Stats)}
}

func (gateway *CacheHealthGateway) RegisterStore(name string, stats func() Stats) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.stores[name] = stats
}

func (gateway *CacheHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	details := map[string]string{"backend": gateway.backend}
	status := model.StatusUp

	if gateway.checker != nil {
		check := gateway.checker.Check(ctx)
		for k, v := range check.Details {
			details["redis."+k] = v
		}
		if check.Status != redis.StatusUp {
			status = model.StatusDown
		}
	}

	gateway.mutex.RLock()
	names := make([]string, 0, len(gateway.stores))
	for name := range gateway.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		stats := gateway.stores[name]()
		details[name+".hits"] = strconv.FormatInt(stats.Hits, 10)
		details[name+".misses"] = strconv.FormatInt(stats.Misses, 10)
		if stats.Entries >= 0 {
			details[name+".entries"] = strconv.Itoa(stats.Entries)
		}
	}
	gateway.mutex.RUnlock()

	return model.ComponentHealthStatus{Status: status, Details: details}
}
