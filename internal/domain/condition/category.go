// Package condition maps provider weather conditions to display categories and icons.
package condition

// Category is the display family of a weather condition.
type Category int

const (
	Unknown Category = iota
	Clear
	PartlyCloudy
	Cloudy
	Rain
	Snow
	Thunder
	Fog
	Windy
)

var categoryNames = map[Category]string{
	Unknown:      "unknown",
	Clear:        "clear",
	PartlyCloudy: "partly-cloudy",
	Cloudy:       "cloudy",
	Rain:         "rain",
	Snow:         "snow",
	Thunder:      "thunder",
	Fog:          "fog",
	Windy:        "windy",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[Unknown]
}

// Classify resolves the category from the provider condition code, falling back to the text
// rules when the code is missing or not part of the provider table.
func Classify(code int, text string) Category {
	if category, ok := byCode[code]; ok {
		return category
	}
	return ByText(text)
}

// Icon returns the icon class for a provider condition.
func Icon(code int, text string, isDay bool) string {
	return IconFor(Classify(code, text), isDay)
}
