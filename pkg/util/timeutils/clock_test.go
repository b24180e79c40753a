package timeutils

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormatTo12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:15", "12:15 AM"},
		{"01:00", "1:00 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"23:59", "11:59 PM"},
		{"7:30", "7:30 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatTo12Hour(tt.in); got != tt.want {
				t.Errorf("FormatTo12Hour(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatTo12HourAllClockTimes(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			in := fmt.Sprintf("%02d:%02d", hour, minute)
			got := FormatTo12Hour(in)

			if !strings.HasSuffix(got, " AM") && !strings.HasSuffix(got, " PM") {
				t.Fatalf("FormatTo12Hour(%q) = %q, missing AM/PM", in, got)
			}
			var h, m int
			var suffix string
			if _, err := fmt.Sscanf(got, "%d:%d %s", &h, &m, &suffix); err != nil {
				t.Fatalf("FormatTo12Hour(%q) = %q, unparsable: %v", in, got, err)
			}
			if h < 1 || h > 12 {
				t.Fatalf("FormatTo12Hour(%q) hour %d out of [1,12]", in, h)
			}
			if m != minute {
				t.Fatalf("FormatTo12Hour(%q) minute %d, want %d", in, m, minute)
			}
		}
	}
}

func TestFormatTo12HourInvalidInput(t *testing.T) {
	for _, in := range []string{"", "noon", "24:00", "12:5", "ab:cd", "12:60"} {
		if got := FormatTo12Hour(in); got != in {
			t.Errorf("FormatTo12Hour(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestClockOfAndHourOf(t *testing.T) {
	if got := ClockOf("2024-01-15 22:00"); got != "22:00" {
		t.Errorf("ClockOf() = %q", got)
	}
	hour, ok := HourOf("2024-01-15 22:00")
	if !ok || hour != 22 {
		t.Errorf("HourOf() = (%d, %v), want (22, true)", hour, ok)
	}
	if _, ok := HourOf("garbage"); ok {
		t.Error("HourOf(garbage) should fail")
	}
}

func TestDayLabel(t *testing.T) {
	weekday, short, ok := DayLabel("2024-01-15")
	if !ok {
		t.Fatal("DayLabel() failed")
	}
	if weekday != "Mon" || short != "15 Jan" {
		t.Errorf("DayLabel() = (%q, %q), want (Mon, 15 Jan)", weekday, short)
	}
}
