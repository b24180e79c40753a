package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return i
	}
	return defaultVal
}

// ToIntInRange converts s like ToIntWithDefault, and also falls back to defaultVal when the
// value lies outside [min, max].
func ToIntInRange(s string, defaultVal, min, max int) int {
	i := ToIntWithDefault(s, defaultVal)
	if i < min || i > max {
		return defaultVal
	}
	return i
}

// ClampInt bounds num to [min, max].
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}
