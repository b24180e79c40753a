// Package dashboard composes the panels of one browser session.
package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"zephyr/internal/application/panel"
	"zephyr/internal/domain/usecase/weather"
)

// Config are the settings shared by every dashboard
type Config struct {
	DefaultCity  string
	HourlyWindow int
	PanelTimeout time.Duration
	// MaxSessions caps the registry; the least recently seen dashboard makes room. 0 means no cap.
	MaxSessions int
}

// Layout is the fixed grid of the page
var Layout = []string{panel.NameCurrent, panel.NameWeekly, panel.NameHourlyList, panel.NameHourlyChart}

// Dashboard holds the selected city and the theme, and fans the city out to its panels
type Dashboard struct {
	mu        sync.RWMutex
	city      string
	darkMode  bool
	lastSeen  time.Time
	panels    map[string]panel.Component
	closeOnce sync.Once
}

// New creates a dashboard showing the configured default city
func New(useCase weather.UseCase, config Config) *Dashboard {
	d := &Dashboard{
		lastSeen: time.Now(),
		panels: map[string]panel.Component{
			panel.NameCurrent:     panel.NewCurrent(useCase, config.PanelTimeout),
			panel.NameWeekly:      panel.NewWeekly(useCase, config.PanelTimeout),
			panel.NameHourlyList:  panel.NewHourlyList(useCase, config.PanelTimeout, config.HourlyWindow),
			panel.NameHourlyChart: panel.NewHourlyChart(useCase, config.PanelTimeout, config.HourlyWindow),
		},
	}
	d.setCity(strings.TrimSpace(config.DefaultCity))
	return d
}

// Search selects a city. Blank input is ignored and reported as false.
func (d *Dashboard) Search(city string) bool {
	city = strings.TrimSpace(city)
	if city == "" {
		return false
	}
	d.setCity(city)
	return true
}

func (d *Dashboard) setCity(city string) {
	d.mu.Lock()
	d.city = city
	d.mu.Unlock()

	for _, name := range Layout {
		d.panels[name].SetCity(city)
	}
}

// Refresh fetches every panel again for the current city
func (d *Dashboard) Refresh() {
	for _, name := range Layout {
		d.panels[name].Refresh()
	}
}

// ToggleTheme flips dark mode and returns the new value
func (d *Dashboard) ToggleTheme() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.darkMode = !d.darkMode
	return d.darkMode
}

func (d *Dashboard) City() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.city
}

func (d *Dashboard) DarkMode() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.darkMode
}

// Touch records activity for idle eviction
func (d *Dashboard) Touch(now time.Time) {
	d.mu.Lock()
	d.lastSeen = now
	d.mu.Unlock()
}

func (d *Dashboard) LastSeen() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastSeen
}

// Page is everything the page template needs
type Page struct {
	City     string
	DarkMode bool
	Panels   []panel.View
}

// View renders the grid in layout order
func (d *Dashboard) View(opts panel.Options) Page {
	d.mu.RLock()
	page := Page{City: d.city, DarkMode: d.darkMode}
	d.mu.RUnlock()

	for _, name := range Layout {
		page.Panels = append(page.Panels, d.panels[name].View(opts))
	}
	return page
}

// Panel renders one panel; false when the name is unknown
func (d *Dashboard) Panel(name string, opts panel.Options) (panel.View, bool) {
	c, ok := d.panels[name]
	if !ok {
		return panel.View{}, false
	}
	return c.View(opts), true
}

// Wait blocks until no panel is loading or ctx is done
func (d *Dashboard) Wait(ctx context.Context) error {
	for _, name := range Layout {
		if err := d.panels[name].Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close cancels the fetches of every panel
func (d *Dashboard) Close() {
	d.closeOnce.Do(func() {
		for _, name := range Layout {
			d.panels[name].Close()
		}
	})
}
