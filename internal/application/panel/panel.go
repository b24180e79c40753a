// Package panel holds the dashboard components: one city-keyed fetch each, rendered as
// loading, empty or ready.
package panel

import (
	"context"
	"strings"
	"sync"
	"time"
)

// State is the view a panel is in. Exactly one applies at any time.
type State int

const (
	Empty State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "empty"
	}
}

// Fetcher loads the payload of a city; nil means absent.
type Fetcher[T any] func(ctx context.Context, city string) *T

// Snapshot is a consistent copy of a panel's state.
type Snapshot[T any] struct {
	City  string
	State State
	Data  *T
}

// Panel owns one payload keyed on a city. A city change starts a new generation: the previous
// fetch is cancelled and its result, if it still arrives, is discarded.
type Panel[T any] struct {
	name    string
	fetch   Fetcher[T]
	timeout time.Duration

	mu         sync.Mutex
	city       string
	generation uint64
	cancel     context.CancelFunc
	data       *T
	loading    bool
	idle       chan struct{}
	closed     bool
	wg         sync.WaitGroup
}

// New creates a panel in the empty state. timeout bounds each fetch; zero means no bound.
func New[T any](name string, fetch Fetcher[T], timeout time.Duration) *Panel[T] {
	idle := make(chan struct{})
	close(idle)
	return &Panel[T]{name: name, fetch: fetch, timeout: timeout, idle: idle}
}

func (p *Panel[T]) Name() string {
	return p.name
}

// SetCity moves the panel to a new city. The same city is a no-op; an empty city clears the
// panel without fetching.
func (p *Panel[T]) SetCity(city string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.switchTo(strings.TrimSpace(city), false)
}

// Refresh fetches the current city again.
func (p *Panel[T]) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.switchTo(p.city, true)
}

// switchTo must be called with mu held
func (p *Panel[T]) switchTo(city string, force bool) {
	if p.closed || (city == p.city && !force) {
		return
	}

	p.city = city
	p.generation++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.data = nil

	if city == "" {
		p.setLoading(false)
		return
	}

	var ctx context.Context
	var cancel context.CancelFunc
	if p.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), p.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	p.cancel = cancel
	p.setLoading(true)

	generation := p.generation
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()
		result := p.fetch(ctx, city)
		p.complete(generation, result)
	}()
}

// complete stores a result if its generation is still current
func (p *Panel[T]) complete(generation uint64, result *T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if generation != p.generation {
		return
	}
	p.data = result
	p.cancel = nil
	p.setLoading(false)
}

// setLoading must be called with mu held
func (p *Panel[T]) setLoading(loading bool) {
	if loading == p.loading {
		return
	}
	p.loading = loading
	if loading {
		p.idle = make(chan struct{})
	} else {
		close(p.idle)
	}
}

// Snapshot returns the current city, state and data.
func (p *Panel[T]) Snapshot() Snapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Snapshot[T]{City: p.city, Data: p.data}
	switch {
	case p.loading:
		s.State = Loading
	case p.data != nil:
		s.State = Ready
	default:
		s.State = Empty
	}
	return s
}

// Wait blocks until the panel is not loading or ctx is done.
func (p *Panel[T]) Wait(ctx context.Context) error {
	p.mu.Lock()
	idle := p.idle
	p.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels any fetch in flight and waits for it to return. Later SetCity calls are ignored.
func (p *Panel[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.generation++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.setLoading(false)
	p.mu.Unlock()

	p.wg.Wait()
}
