package timeutils

import (
	"strconv"
	"strings"
	"time"
)

// ProviderLayout is the local date-time layout used by the weather provider ("2024-01-15 13:00").
const ProviderLayout = "2006-01-02 15:04"

// DateLayout is the provider's calendar date layout.
const DateLayout = "2006-01-02"

// FormatTo12Hour converts a 24-hour "HH:MM" string to "H:MM AM|PM".
// Hour 0 renders as 12. Input that is not a valid clock time is returned unchanged.
func FormatTo12Hour(clock string) string {
	hourPart, minutePart, found := strings.Cut(strings.TrimSpace(clock), ":")
	if !found || len(minutePart) != 2 {
		return clock
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return clock
	}
	if minute, err := strconv.Atoi(minutePart); err != nil || minute < 0 || minute > 59 {
		return clock
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return strconv.Itoa(hour12) + ":" + minutePart + " " + suffix
}

// ClockOf returns the "HH:MM" part of a provider time string ("2024-01-15 13:00").
func ClockOf(providerTime string) string {
	if _, clock, found := strings.Cut(strings.TrimSpace(providerTime), " "); found {
		return clock
	}
	return providerTime
}

// HourOf returns the hour of a provider time string, or false when it cannot be parsed.
func HourOf(providerTime string) (int, bool) {
	t, err := time.Parse(ProviderLayout, strings.TrimSpace(providerTime))
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}

// DayLabel returns the short weekday ("Mon") and the short date ("15 Jan") of a provider date.
func DayLabel(date string) (weekday string, short string, ok bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", "", false
	}
	return t.Format("Mon"), t.Format("2 Jan"), true
}
