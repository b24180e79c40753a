package entity

type HourlyEntry struct {
	Time         string    `json:"time"`
	TempC        float64   `json:"tempC"`
	ChanceOfRain int       `json:"chanceOfRain"`
	WindKph      float64   `json:"windKph"`
	IsDay        bool      `json:"isDay"`
	Condition    Condition `json:"condition"`
}

// HourlyForecast holds the hours of the first forecast day of a location.
type HourlyForecast struct {
	Location Location      `json:"location"`
	Hours    []HourlyEntry `json:"hours"`
}
