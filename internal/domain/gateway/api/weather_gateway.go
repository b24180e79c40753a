package api

import (
	"context"

	"zephyr/internal/domain/model/external"
)

// WeatherGateway defines the interface for WeatherAPI.com calls
type WeatherGateway interface {
	// GetCurrent gets the current conditions of a city
	GetCurrent(ctx context.Context, city string) (*external.CurrentResponse, error)

	// GetForecast gets the forecast of a city
	// days: number of forecast days requested from the provider
	GetForecast(ctx context.Context, city string, days int) (*external.ForecastResponse, error)

	// GetHourly gets the one-day forecast of a city, whose first forecast day carries the hourly slots
	GetHourly(ctx context.Context, city string) (*external.ForecastResponse, error)
}
