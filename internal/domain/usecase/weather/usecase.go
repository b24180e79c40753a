package weather

import (
	"context"

	"zephyr/internal/domain/entity"
)

// UseCase is the weather data contract used by the dashboard panels and the JSON API.
// Fetch methods never return errors: every failure is logged and reported as nil.
type UseCase interface {
	// FetchCurrent returns the current conditions of a city or nil
	FetchCurrent(ctx context.Context, city string) *entity.CurrentConditions

	// FetchForecast returns the configured number of forecast days of a city or nil
	FetchForecast(ctx context.Context, city string) *entity.WeeklyForecast

	// FetchHourly returns the hours of the city's current day or nil
	FetchHourly(ctx context.Context, city string) *entity.HourlyForecast

	// WarmUp refreshes the three cached payloads of a city, bypassing cache reads
	WarmUp(ctx context.Context, city string) error
}
