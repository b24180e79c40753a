package view

import (
	"bytes"
	"strings"
	"testing"

	"zephyr/internal/application/dashboard"
	"zephyr/internal/application/panel"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestPageDarkClass(t *testing.T) {
	light := render(t, PageTemplate, PageData{Page: dashboard.Page{City: "Dhaka"}, Days: 7})
	if strings.Contains(light, `class="dark"`) {
		t.Error("light page has dark class")
	}
	dark := render(t, PageTemplate, PageData{Page: dashboard.Page{City: "Dhaka", DarkMode: true}, Days: 7})
	if !strings.Contains(dark, `<html lang="en" class="dark">`) {
		t.Error("dark page missing dark class")
	}
}

func TestPanelStates(t *testing.T) {
	loading := render(t, PanelTemplate, PanelData{View: panel.View{Name: "current", State: panel.Loading}, Days: 7})
	if !strings.Contains(loading, `hx-get="/panels/current?days=7"`) || !strings.Contains(loading, "Loading current data") {
		t.Errorf("loading fragment = %s", loading)
	}

	empty := render(t, PanelTemplate, PanelData{View: panel.View{Name: "weekly", State: panel.Empty}})
	if !strings.Contains(empty, "Enter a city to see weekly data") || strings.Contains(empty, "hx-get") {
		t.Errorf("empty fragment = %s", empty)
	}
}

func TestWeeklyFragment(t *testing.T) {
	model := panel.WeeklyList{
		Tabs: []panel.WeeklyTab{{Label: "7 Days", Days: 7, Active: true}, {Label: "10 Days", Days: 10}},
		Rows: []panel.WeeklyRow{
			{DayName: "Mon", Date: "15 Jan", Max: "27.1°", Min: "15.3°", IconClass: "wi-rain"},
			{DayName: "Tue", Date: "16 Jan", Max: "26°", Min: "14.9°", IconClass: "wi-day-sunny"},
		},
	}
	out := render(t, PanelTemplate, PanelData{View: panel.View{Name: "weekly", State: panel.Ready, Model: model}, Days: 7})

	mon, tue := strings.Index(out, "Mon"), strings.Index(out, "Tue")
	if mon < 0 || tue < 0 || mon > tue {
		t.Errorf("rows out of order: %s", out)
	}
	for _, want := range []string{"27.1°", "15.3°", "26°", "14.9°", `class="active"`} {
		if !strings.Contains(out, want) {
			t.Errorf("fragment missing %q", want)
		}
	}
}

func TestChartFragment(t *testing.T) {
	model := panel.HourlyChart{
		Width: 640, Height: 240, Baseline: 210,
		Polyline: "40,20 60,30",
		Points:   []panel.ChartPoint{{X: 40, Y: 20, Label: "1:00 PM", Temp: "20°C"}},
	}
	out := render(t, PanelTemplate, PanelData{View: panel.View{Name: "chart", State: panel.Ready, Model: model}})
	if !strings.Contains(out, `points="40,20 60,30"`) {
		t.Errorf("polyline missing: %s", out)
	}
}
