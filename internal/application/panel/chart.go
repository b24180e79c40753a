package panel

import (
	"math"
	"strconv"
	"strings"
	"time"

	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/usecase/weather"
	"zephyr/pkg/util/timeutils"
)

// Chart geometry in SVG user units
const (
	chartWidth   = 640
	chartHeight  = 240
	chartPadLeft = 40
	chartPadX    = 20
	chartPadTop  = 20
	chartPadBot  = 30
)

type ChartPoint struct {
	X, Y  float64
	Label string
	Temp  string
}

type ChartTick struct {
	Y     float64
	Label string
}

// HourlyChart is an SVG line chart of temperatures
type HourlyChart struct {
	Width, Height int
	Polyline      string
	Points        []ChartPoint
	Ticks         []ChartTick
	Baseline      float64
}

// NewHourlyChart builds the temperature chart of the next window hours
func NewHourlyChart(useCase weather.UseCase, timeout time.Duration, window int) Component {
	return newComponent(NameHourlyChart, useCase.FetchHourly, timeout, func(f *entity.HourlyForecast, opts Options) any {
		return buildHourlyChart(weather.Upcoming(f, window, now(opts)))
	})
}

func buildHourlyChart(hours []entity.HourlyEntry) HourlyChart {
	chart := HourlyChart{Width: chartWidth, Height: chartHeight, Baseline: chartHeight - chartPadBot}
	if len(hours) == 0 {
		return chart
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, h := range hours {
		lo = math.Min(lo, h.TempC)
		hi = math.Max(hi, h.TempC)
	}
	lo, hi = math.Floor(lo)-1, math.Ceil(hi)+1

	plotW := float64(chartWidth - chartPadLeft - chartPadX)
	plotH := float64(chartHeight - chartPadTop - chartPadBot)
	step := 0.0
	if len(hours) > 1 {
		step = plotW / float64(len(hours)-1)
	}
	y := func(temp float64) float64 {
		return round1(chartPadTop + (hi-temp)/(hi-lo)*plotH)
	}

	coords := make([]string, 0, len(hours))
	for i, h := range hours {
		p := ChartPoint{
			X:     round1(chartPadLeft + float64(i)*step),
			Y:     y(h.TempC),
			Label: timeutils.FormatTo12Hour(timeutils.ClockOf(h.Time)),
			Temp:  formatNumber(h.TempC) + "°C",
		}
		chart.Points = append(chart.Points, p)
		coords = append(coords, formatNumber(p.X)+","+formatNumber(p.Y))
	}
	chart.Polyline = strings.Join(coords, " ")

	for _, t := range []float64{hi, (hi + lo) / 2, lo} {
		chart.Ticks = append(chart.Ticks, ChartTick{Y: y(t), Label: formatNumber(round1(t)) + "°C"})
	}
	return chart
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// formatNumber prints provider numbers without trailing zeros ("27.1", "15")
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
