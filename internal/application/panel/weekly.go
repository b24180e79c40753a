package panel

import (
	"time"

	"zephyr/internal/domain/condition"
	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/usecase/weather"
	"zephyr/pkg/util/timeutils"
)

// WeeklyTabs are the selectable day counts of the weekly panel
var WeeklyTabs = []int{7, 10}

type WeeklyTab struct {
	Label  string
	Days   int
	Active bool
}

type WeeklyRow struct {
	DayName      string
	Date         string
	Condition    string
	IconClass    string
	Max          string
	Min          string
	Humidity     string
	ChanceOfRain int
}

// WeeklyList is the view model of the weekly panel; rows keep provider order
type WeeklyList struct {
	Tabs []WeeklyTab
	Rows []WeeklyRow
}

// NewWeekly builds the multi-day forecast panel
func NewWeekly(useCase weather.UseCase, timeout time.Duration) Component {
	return newComponent(NameWeekly, useCase.FetchForecast, timeout, buildWeeklyList)
}

// normalizeDays maps any request to one of the tabs, defaulting to the first
func normalizeDays(days int) int {
	for _, tab := range WeeklyTabs {
		if tab == days {
			return days
		}
	}
	return WeeklyTabs[0]
}

func buildWeeklyList(f *entity.WeeklyForecast, opts Options) any {
	days := normalizeDays(opts.Days)

	list := WeeklyList{}
	for _, tab := range WeeklyTabs {
		list.Tabs = append(list.Tabs, WeeklyTab{Label: itoa(tab) + " Days", Days: tab, Active: tab == days})
	}

	shown := f.Days
	if len(shown) > days {
		shown = shown[:days]
	}
	for _, d := range shown {
		dayName, date, ok := timeutils.DayLabel(d.Date)
		if !ok {
			dayName, date = d.Date, ""
		}
		list.Rows = append(list.Rows, WeeklyRow{
			DayName:   dayName,
			Date:      date,
			Condition: d.Condition.Text,
			// daily conditions carry no day/night flag, the day variant is used
			IconClass:    condition.Icon(d.Condition.Code, d.Condition.Text, true),
			Max:          formatNumber(d.MaxTempC) + "°",
			Min:          formatNumber(d.MinTempC) + "°",
			Humidity:     formatNumber(d.AvgHumidity) + "%",
			ChanceOfRain: d.ChanceOfRain,
		})
	}
	return list
}
