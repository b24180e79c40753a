package entity

// Location identifies the place a payload belongs to, as resolved by the provider.
type Location struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	TimeZone  string `json:"timeZone"`
	LocalTime string `json:"localTime"`
}

// Condition is the provider's weather description for a moment or a day.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}
