package weather

import (
	"time"

	"zephyr/internal/domain/entity"
	"zephyr/pkg/util/timeutils"
)

// DefaultHourlyWindow is the number of upcoming hours shown by the hourly panels
const DefaultHourlyWindow = 12

// SliceFromHour returns the entries starting at the first one whose hour is at or after hour,
// at most window long. It never wraps into the next day, so late hours yield fewer entries.
func SliceFromHour(hours []entity.HourlyEntry, hour int, window int) []entity.HourlyEntry {
	if window <= 0 {
		window = DefaultHourlyWindow
	}

	start := len(hours)
	for i, h := range hours {
		if entryHour, ok := timeutils.HourOf(h.Time); ok && entryHour >= hour {
			start = i
			break
		}
	}

	end := start + window
	if end > len(hours) {
		end = len(hours)
	}
	return hours[start:end]
}

// CurrentHour returns the hour at the location now. The IANA zone is preferred; the payload's
// local time (fixed at fetch time) and then the wall clock are fallbacks.
func CurrentHour(location entity.Location, now time.Time) int {
	if location.TimeZone != "" {
		if zone, err := time.LoadLocation(location.TimeZone); err == nil {
			return now.In(zone).Hour()
		}
	}
	if hour, ok := timeutils.HourOf(location.LocalTime); ok {
		return hour
	}
	return now.Hour()
}

// Upcoming slices an hourly forecast from the location's current hour
func Upcoming(forecast *entity.HourlyForecast, window int, now time.Time) []entity.HourlyEntry {
	if forecast == nil {
		return nil
	}
	return SliceFromHour(forecast.Hours, CurrentHour(forecast.Location, now), window)
}
