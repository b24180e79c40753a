package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/gateway/api"
	"zephyr/internal/domain/gateway/cache"
	"zephyr/pkg/log"
	"zephyr/pkg/metrics"
	"zephyr/pkg/msg"
	"zephyr/pkg/util/numberutils"
)

const (
	endpointCurrent  = "current"
	endpointForecast = "forecast"
	endpointHourly   = "hourly"
)

// Config tunes the upstream calls of the use case
type Config struct {
	// ForecastDays is the number of days requested for the weekly panel
	ForecastDays int
	// CallTimeout bounds one shared upstream call, independent of the callers' contexts
	CallTimeout time.Duration
	// RatePerSecond limits upstream calls; zero or less disables the limiter
	RatePerSecond float64
	// Burst is the limiter's bucket size
	Burst int
}

// Stores groups the caches of the three payload kinds
type Stores struct {
	Current  cache.Store[entity.CurrentConditions]
	Forecast cache.Store[entity.WeeklyForecast]
	Hourly   cache.Store[entity.HourlyForecast]
}

type weatherUseCase struct {
	gateway api.WeatherGateway
	stores  Stores
	limiter *rate.Limiter
	group   singleflight.Group
	config  Config
}

// NewWeatherUseCase creates the weather use case over a gateway and its caches
func NewWeatherUseCase(gateway api.WeatherGateway, stores Stores, config Config) UseCase {
	if config.ForecastDays <= 0 {
		config.ForecastDays = 8
	}
	config.ForecastDays = numberutils.ClampInt(config.ForecastDays, 1, 14)
	if config.CallTimeout <= 0 {
		config.CallTimeout = 10 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if config.RatePerSecond > 0 {
		burst := config.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.RatePerSecond), burst)
	}

	return &weatherUseCase{
		gateway: gateway,
		stores:  stores,
		limiter: limiter,
		config:  config,
	}
}

// FetchCurrent returns the current conditions of a city or nil
func (uc *weatherUseCase) FetchCurrent(ctx context.Context, city string) *entity.CurrentConditions {
	result, err := load(ctx, uc, uc.stores.Current, endpointCurrent, city, false, uc.fetchCurrent)
	return absentOnError(endpointCurrent, city, result, err)
}

// FetchForecast returns the forecast days of a city or nil
func (uc *weatherUseCase) FetchForecast(ctx context.Context, city string) *entity.WeeklyForecast {
	result, err := load(ctx, uc, uc.stores.Forecast, uc.forecastEndpoint(), city, false, uc.fetchForecast)
	return absentOnError(endpointForecast, city, result, err)
}

// FetchHourly returns the hours of the city's current day or nil
func (uc *weatherUseCase) FetchHourly(ctx context.Context, city string) *entity.HourlyForecast {
	result, err := load(ctx, uc, uc.stores.Hourly, endpointHourly, city, false, uc.fetchHourly)
	return absentOnError(endpointHourly, city, result, err)
}

// WarmUp refreshes the three payloads of a city
func (uc *weatherUseCase) WarmUp(ctx context.Context, city string) error {
	_, currentErr := load(ctx, uc, uc.stores.Current, endpointCurrent, city, true, uc.fetchCurrent)
	_, forecastErr := load(ctx, uc, uc.stores.Forecast, uc.forecastEndpoint(), city, true, uc.fetchForecast)
	_, hourlyErr := load(ctx, uc, uc.stores.Hourly, endpointHourly, city, true, uc.fetchHourly)

	return errors.Join(currentErr, forecastErr, hourlyErr)
}

func (uc *weatherUseCase) forecastEndpoint() string {
	return fmt.Sprintf("%s:%d", endpointForecast, uc.config.ForecastDays)
}

func (uc *weatherUseCase) fetchCurrent(ctx context.Context, city string) (*entity.CurrentConditions, error) {
	resp, err := uc.gateway.GetCurrent(ctx, city)
	if err != nil {
		return nil, err
	}
	return toCurrentConditions(resp), nil
}

func (uc *weatherUseCase) fetchForecast(ctx context.Context, city string) (*entity.WeeklyForecast, error) {
	resp, err := uc.gateway.GetForecast(ctx, city, uc.config.ForecastDays)
	if err != nil {
		return nil, err
	}
	return toWeeklyForecast(resp), nil
}

func (uc *weatherUseCase) fetchHourly(ctx context.Context, city string) (*entity.HourlyForecast, error) {
	resp, err := uc.gateway.GetHourly(ctx, city)
	if err != nil {
		return nil, err
	}
	return toHourlyForecast(resp), nil
}

// absentOnError logs the failure and collapses it to nil
func absentOnError[T any](endpoint, city string, result *T, err error) *T {
	if err == nil {
		return result
	}

	var apiErr *api.APIError
	switch {
	case errors.Is(err, api.ErrEmptyCity):
		log.Debug(msg.GetMessage("weather.fetch.empty-city", endpoint))
	case errors.Is(err, context.Canceled):
		log.Debug(msg.GetMessage("weather.fetch.cancelled", endpoint, city))
	case errors.As(err, &apiErr):
		log.Warn(msg.GetMessage("weather.fetch.api-error", endpoint, city, apiErr.Code, apiErr.Message),
			zap.String("endpoint", endpoint),
			zap.String("city", city),
			zap.Int("status", apiErr.Status),
			zap.Int("code", apiErr.Code))
	default:
		log.Error(msg.GetMessage("weather.fetch.failed", endpoint, city, err),
			zap.String("endpoint", endpoint),
			zap.String("city", city),
			zap.Error(err))
	}
	return nil
}

// endpointLabel drops the day count from "forecast:N"
func endpointLabel(endpoint string) string {
	name, _, _ := strings.Cut(endpoint, ":")
	return name
}

func outcome(err error) string {
	var apiErr *api.APIError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &apiErr):
		return "api_error"
	default:
		return "error"
	}
}

// normalizeCity is the cache and dedup identity of a city
func normalizeCity(city string) string {
	return strings.ToLower(strings.Join(strings.Fields(city), " "))
}

// load serves a payload from cache or from one shared upstream call per key.
// The shared call runs on a context detached from the callers, so a caller giving up
// stops waiting without failing the others. Failures are never cached.
func load[T any](ctx context.Context, uc *weatherUseCase, store cache.Store[T], endpoint, city string, refresh bool,
	fetch func(ctx context.Context, city string) (*T, error)) (*T, error) {

	city = strings.TrimSpace(city)
	if city == "" {
		return nil, api.ErrEmptyCity
	}
	key := cache.Key(endpoint, normalizeCity(city))

	if !refresh {
		cached, found, err := store.Get(ctx, key)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues(store.Name(), "error").Inc()
			log.Warn(msg.GetMessage("weather.cache.read-failed", store.Name(), key), zap.Error(err))
		case found:
			metrics.CacheLookups.WithLabelValues(store.Name(), "hit").Inc()
			return &cached, nil
		default:
			metrics.CacheLookups.WithLabelValues(store.Name(), "miss").Inc()
		}
	}

	flightKey := key
	if refresh {
		flightKey = "refresh::" + key
	}
	ch := uc.group.DoChan(flightKey, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.config.CallTimeout)
		defer cancel()

		if err := uc.limiter.Wait(callCtx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		value, err := fetch(callCtx, city)
		metrics.UpstreamCalls.WithLabelValues(endpointLabel(endpoint), outcome(err)).Inc()
		if err != nil {
			return nil, err
		}
		if err := store.Set(callCtx, key, *value); err != nil {
			log.Warn(msg.GetMessage("weather.cache.write-failed", store.Name(), key), zap.Error(err))
		}
		return value, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*T), nil
	}
}
