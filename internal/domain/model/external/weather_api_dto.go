package external

// LocationDTO is the "location" object shared by the current and forecast endpoints
type LocationDTO struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocalTimeEpoch int64   `json:"localtime_epoch"`
	LocalTime      string  `json:"localtime"`
}

// ConditionDTO is the provider's condition text, icon URL and enumerated code
type ConditionDTO struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// CurrentDTO represents the "current" object of current.json and forecast.json
type CurrentDTO struct {
	LastUpdated string       `json:"last_updated"`
	TempC       float64      `json:"temp_c"`
	FeelsLikeC  float64      `json:"feelslike_c"`
	IsDay       int          `json:"is_day"`
	Condition   ConditionDTO `json:"condition"`
	WindKph     float64      `json:"wind_kph"`
	WindDegree  int          `json:"wind_degree"`
	WindDir     string       `json:"wind_dir"`
	PressureMb  float64      `json:"pressure_mb"`
	Humidity    int          `json:"humidity"`
	Cloud       int          `json:"cloud"`
	UV          float64      `json:"uv"`
}

// DayDTO represents the daily aggregate of a forecast day
type DayDTO struct {
	MaxTempC          float64      `json:"maxtemp_c"`
	MinTempC          float64      `json:"mintemp_c"`
	AvgTempC          float64      `json:"avgtemp_c"`
	MaxWindKph        float64      `json:"maxwind_kph"`
	AvgHumidity       float64      `json:"avghumidity"`
	DailyChanceOfRain int          `json:"daily_chance_of_rain"`
	Condition         ConditionDTO `json:"condition"`
}

// HourDTO represents one hourly slot of a forecast day
type HourDTO struct {
	TimeEpoch    int64        `json:"time_epoch"`
	Time         string       `json:"time"`
	TempC        float64      `json:"temp_c"`
	IsDay        int          `json:"is_day"`
	Condition    ConditionDTO `json:"condition"`
	WindKph      float64      `json:"wind_kph"`
	Humidity     int          `json:"humidity"`
	ChanceOfRain int          `json:"chance_of_rain"`
}

// ForecastDayDTO represents one entry of forecast.forecastday
type ForecastDayDTO struct {
	Date      string    `json:"date"`
	DateEpoch int64     `json:"date_epoch"`
	Day       DayDTO    `json:"day"`
	Hour      []HourDTO `json:"hour"`
}

// APIErrorDTO is the body of the provider's "error" field
type APIErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// APIErrorResponse represents error responses from WeatherAPI.com
type APIErrorResponse struct {
	Error *APIErrorDTO `json:"error"`
}

// CurrentResponse represents the response of current.json
type CurrentResponse struct {
	Location LocationDTO  `json:"location"`
	Current  CurrentDTO   `json:"current"`
	Error    *APIErrorDTO `json:"error,omitempty"`
}

// ForecastResponse represents the response of forecast.json
type ForecastResponse struct {
	Location LocationDTO `json:"location"`
	Current  CurrentDTO  `json:"current"`
	Forecast struct {
		ForecastDay []ForecastDayDTO `json:"forecastday"`
	} `json:"forecast"`
	Error *APIErrorDTO `json:"error,omitempty"`
}
