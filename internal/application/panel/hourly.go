package panel

import (
	"time"

	"zephyr/internal/domain/condition"
	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/usecase/weather"
	"zephyr/pkg/util/timeutils"
)

type HourlyItem struct {
	Time         string
	Temp         string
	ChanceOfRain int
	Wind         string
	Condition    string
	IconClass    string
}

// HourlyList is the view model of the hourly scroller
type HourlyList struct {
	Items []HourlyItem
}

// NewHourlyList builds the hourly scroller showing the next window hours of the day
func NewHourlyList(useCase weather.UseCase, timeout time.Duration, window int) Component {
	return newComponent(NameHourlyList, useCase.FetchHourly, timeout, func(f *entity.HourlyForecast, opts Options) any {
		return buildHourlyList(f, window, opts)
	})
}

func buildHourlyList(f *entity.HourlyForecast, window int, opts Options) HourlyList {
	list := HourlyList{Items: []HourlyItem{}}
	for _, h := range weather.Upcoming(f, window, now(opts)) {
		list.Items = append(list.Items, HourlyItem{
			Time:         timeutils.FormatTo12Hour(timeutils.ClockOf(h.Time)),
			Temp:         formatNumber(h.TempC) + "°C",
			ChanceOfRain: h.ChanceOfRain,
			Wind:         formatNumber(h.WindKph) + " km/h",
			Condition:    h.Condition.Text,
			IconClass:    condition.Icon(h.Condition.Code, h.Condition.Text, h.IsDay),
		})
	}
	return list
}

func now(opts Options) time.Time {
	if opts.Now.IsZero() {
		return time.Now()
	}
	return opts.Now
}
