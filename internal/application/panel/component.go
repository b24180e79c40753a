package panel

import (
	"context"
	"time"
)

// Names of the dashboard panels, also used in the /panels/:name route
const (
	NameCurrent     = "current"
	NameWeekly      = "weekly"
	NameHourlyList  = "hourly"
	NameHourlyChart = "chart"
)

// Options carry per-request rendering parameters
type Options struct {
	// Days selects the weekly tab (7 or 10)
	Days int
	// Now is the fallback clock when the location time is unknown
	Now time.Time
}

// View is what the templates render for one panel
type View struct {
	Name  string
	State State
	City  string
	// Model is the ready-state view model; nil otherwise
	Model any
}

func (v View) Loading() bool { return v.State == Loading }
func (v View) Ready() bool   { return v.State == Ready }
func (v View) Empty() bool   { return v.State == Empty }

// Component is a panel with its view builder
type Component interface {
	Name() string
	SetCity(city string)
	Refresh()
	View(opts Options) View
	Wait(ctx context.Context) error
	Close()
}

type component[T any] struct {
	*Panel[T]
	build func(data *T, opts Options) any
}

func newComponent[T any](name string, fetch Fetcher[T], timeout time.Duration, build func(*T, Options) any) Component {
	return &component[T]{Panel: New(name, fetch, timeout), build: build}
}

func (c *component[T]) View(opts Options) View {
	snapshot := c.Snapshot()
	view := View{Name: c.Name(), State: snapshot.State, City: snapshot.City}
	if snapshot.State == Ready {
		view.Model = c.build(snapshot.Data, opts)
	}
	return view
}
