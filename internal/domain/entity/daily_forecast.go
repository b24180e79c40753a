package entity

type DailyForecast struct {
	Date         string    `json:"date"`
	MaxTempC     float64   `json:"maxTempC"`
	MinTempC     float64   `json:"minTempC"`
	AvgHumidity  float64   `json:"avgHumidity"`
	ChanceOfRain int       `json:"chanceOfRain"`
	Condition    Condition `json:"condition"`
}

// WeeklyForecast keeps the days in provider order (ascending date).
type WeeklyForecast struct {
	Location Location        `json:"location"`
	Days     []DailyForecast `json:"days"`
}
