package panel

import (
	"strings"
	"time"

	"zephyr/internal/domain/condition"
	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/usecase/weather"
	"zephyr/pkg/util/timeutils"
)

// CurrentCard is the view model of the current conditions panel
type CurrentCard struct {
	Condition  string
	IconURL    string
	IconClass  string
	IsDay      bool
	CloudCover int
	Temp       string
	FeelsLike  string
	Location   string
	LocalTime  string
	Humidity   int
	Wind       string
	PressureMb string
	UV         string
}

// NewCurrent builds the current conditions panel
func NewCurrent(useCase weather.UseCase, timeout time.Duration) Component {
	return newComponent(NameCurrent, useCase.FetchCurrent, timeout, buildCurrentCard)
}

func buildCurrentCard(c *entity.CurrentConditions, _ Options) any {
	wind := formatNumber(c.WindKph) + " km/h"
	if c.WindDir != "" {
		wind += " " + c.WindDir
	}

	return CurrentCard{
		Condition:  c.Condition.Text,
		IconURL:    c.Condition.Icon,
		IconClass:  condition.Icon(c.Condition.Code, c.Condition.Text, c.IsDay),
		IsDay:      c.IsDay,
		CloudCover: c.Cloud,
		Temp:       formatNumber(c.TempC) + "°C",
		FeelsLike:  formatNumber(c.FeelsLikeC) + "°C",
		Location:   joinNonEmpty(", ", c.Location.Name, c.Location.Country),
		LocalTime:  formatLocalTime(c.Location.LocalTime),
		Humidity:   c.Humidity,
		Wind:       wind,
		PressureMb: formatNumber(c.PressureMb) + " mb",
		UV:         formatNumber(c.UV),
	}
}

// formatLocalTime renders "2024-01-15 14:05" as "2024-01-15 2:05 PM"
func formatLocalTime(localTime string) string {
	date, clock, found := strings.Cut(strings.TrimSpace(localTime), " ")
	if !found {
		return localTime
	}
	return date + " " + timeutils.FormatTo12Hour(clock)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
