package entity

type CurrentConditions struct {
	Location    Location  `json:"location"`
	LastUpdated string    `json:"lastUpdated"`
	TempC       float64   `json:"tempC"`
	FeelsLikeC  float64   `json:"feelsLikeC"`
	Humidity    int       `json:"humidity"`
	WindKph     float64   `json:"windKph"`
	WindDegree  int       `json:"windDegree"`
	WindDir     string    `json:"windDir"`
	PressureMb  float64   `json:"pressureMb"`
	UV          float64   `json:"uv"`
	Cloud       int       `json:"cloud"`
	IsDay       bool      `json:"isDay"`
	Condition   Condition `json:"condition"`
}
