package dashboard

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"zephyr/internal/domain/usecase/weather"
)

// Registry maps session ids to dashboards
type Registry struct {
	useCase    weather.UseCase
	config     Config
	mu         sync.Mutex
	dashboards map[string]*Dashboard
	now        func() time.Time
}

func NewRegistry(useCase weather.UseCase, config Config) *Registry {
	return &Registry{
		useCase:    useCase,
		config:     config,
		dashboards: make(map[string]*Dashboard),
		now:        time.Now,
	}
}

// Get returns the dashboard of a session, creating one with a fresh id when the id is
// unknown. The returned id is the one the caller should keep.
func (r *Registry) Get(sessionID string) (string, *Dashboard) {
	r.mu.Lock()

	if d, ok := r.dashboards[sessionID]; ok && sessionID != "" {
		d.Touch(r.now())
		r.mu.Unlock()
		return sessionID, d
	}

	var evicted []*Dashboard
	if r.config.MaxSessions > 0 {
		for len(r.dashboards) >= r.config.MaxSessions {
			evicted = append(evicted, r.removeOldestLocked())
		}
	}

	id := uuid.NewString()
	d := New(r.useCase, r.config)
	d.Touch(r.now())
	r.dashboards[id] = d
	r.mu.Unlock()

	for _, old := range evicted {
		old.Close()
	}
	return id, d
}

// removeOldestLocked drops the least recently seen dashboard. r.mu must be held.
func (r *Registry) removeOldestLocked() *Dashboard {
	var (
		oldestID string
		oldest   *Dashboard
	)
	for id, d := range r.dashboards {
		if oldest == nil || d.LastSeen().Before(oldest.LastSeen()) {
			oldestID, oldest = id, d
		}
	}
	delete(r.dashboards, oldestID)
	return oldest
}

// Lookup returns an existing dashboard without creating one
func (r *Registry) Lookup(sessionID string) (*Dashboard, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.dashboards[sessionID]
	if ok {
		d.Touch(r.now())
	}
	return d, ok
}

// EvictIdle closes and removes dashboards unseen for longer than idle
func (r *Registry) EvictIdle(idle time.Duration) int {
	cutoff := r.now().Add(-idle)
	var evicted []*Dashboard

	r.mu.Lock()
	for id, d := range r.dashboards {
		if d.LastSeen().Before(cutoff) {
			evicted = append(evicted, d)
			delete(r.dashboards, id)
		}
	}
	r.mu.Unlock()

	for _, d := range evicted {
		d.Close()
	}
	return len(evicted)
}

// Cities returns the distinct cities currently displayed, sorted
func (r *Registry) Cities() []string {
	r.mu.Lock()
	seen := make(map[string]struct{})
	for _, d := range r.dashboards {
		if city := d.City(); city != "" {
			seen[city] = struct{}{}
		}
	}
	r.mu.Unlock()

	cities := make([]string, 0, len(seen))
	for city := range seen {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.dashboards)
}

// Close closes every dashboard
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.dashboards
	r.dashboards = make(map[string]*Dashboard)
	r.mu.Unlock()

	for _, d := range all {
		d.Close()
	}
}
