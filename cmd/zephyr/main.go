package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"zephyr/configs"
	_ "zephyr/docs"
	"zephyr/internal/application/controller"
	"zephyr/internal/application/dashboard"
	"zephyr/internal/application/middleware"
	"zephyr/internal/application/schedule"
	"zephyr/internal/application/view"
	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/gateway/api"
	"zephyr/internal/domain/gateway/cache"
	"zephyr/internal/domain/usecase/health"
	"zephyr/internal/domain/usecase/weather"
	httpclient "zephyr/pkg/http"
	"zephyr/pkg/log"
	"zephyr/pkg/msg"
	"zephyr/pkg/redis"
	"zephyr/pkg/resource"
)

// @title Zephyr API
// @version 1.0
// @description Weather data behind the Zephyr dashboard, backed by WeatherAPI.com
// @BasePath /api
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	if resource.GetBool("app.metrics.enabled") {
		middleware.SetupMetrics(e)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "renderer", err))
	}
	e.Renderer = renderer

	apiGroup := e.Group(resource.GetStringOrDefault("app.server.context-path", configs.Env.ContextPath))
	web := e.Group("")
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	var redisClient *redis.Client
	if resource.GetBool("app.redis.enabled") || configs.Env.RedisEnabled {
		redisClient, err = newRedisClient()
		if err != nil {
			log.Fatal(msg.GetMessage("app.init-failed", "redis", err))
		}
		defer func() { _ = redisClient.Close() }()
	}

	// Init Gateways
	apiKey := resource.GetStringOrDefault("app.weather-api.key", configs.Env.WeatherAPIKey)
	baseURL := resource.GetString("app.weather-api.base-url")
	weatherGateway := api.NewWeatherGateway(baseURL, apiKey, httpclient.ClientOptions{
		ReadTimeout: resource.GetDurationOrDefault("app.weather-api.timeout", 10*time.Second),
		Logger:      httpclient.NewZapHTTPLogger("key"),
		Backoff: &httpclient.BackoffConfig{
			MaxRetries:      resource.GetInt("app.weather-api.max-retries"),
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2,
		},
	})
	apiHealthGateway := api.NewConfigHealthGateway(baseURL, apiKey)

	stores, cacheHealthGateway := newStores(redisClient)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, stores, weather.Config{
		ForecastDays:  resource.GetIntOrDefault("app.weather-api.forecast-days", 8),
		CallTimeout:   resource.GetDurationOrDefault("app.weather-api.timeout", 10*time.Second),
		RatePerSecond: resource.GetFloat64("app.weather-api.rate-limit.rps"),
		Burst:         resource.GetInt("app.weather-api.rate-limit.burst"),
	})
	healthUseCase := health.NewHealthUseCase(cacheHealthGateway, apiHealthGateway)

	registry := dashboard.NewRegistry(weatherUseCase, dashboard.Config{
		DefaultCity:  resource.GetStringOrDefault("app.dashboard.default-city", "Dhaka"),
		HourlyWindow: resource.GetIntOrDefault("app.dashboard.hourly-window", weather.DefaultHourlyWindow),
		PanelTimeout: resource.GetDurationOrDefault("app.dashboard.panel-timeout", 15*time.Second),
		MaxSessions:  resource.GetIntOrDefault("app.dashboard.max-sessions", 10000),
	})
	defer registry.Close()

	// Init Controller
	dashboardController := controller.NewDashboardController(web, registry)
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase)
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init Routes
	dashboardController.InitDashboardRoutes()
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	janitorScheduler, err := schedule.NewJanitorScheduler(registry, schedule.JanitorConfig{
		Interval:       resource.GetDuration("app.dashboard.janitor-interval"),
		SessionIdleTTL: resource.GetDuration("app.dashboard.session-idle-ttl"),
	}, stores.Current, stores.Forecast, stores.Hourly)
	if err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "janitor", err))
	}
	if err := janitorScheduler.InitJanitorScheduleTasks(); err != nil {
		log.Fatal(msg.GetMessage("app.init-failed", "janitor", err))
	}
	defer func() { _ = janitorScheduler.Stop() }()

	if resource.GetBool("app.warmup.enabled") {
		warmUpScheduler := schedule.NewWarmUpScheduler(weatherUseCase, redisClient, registry.Cities, schedule.WarmUpSchedulerConfig{
			CronExpression: resource.GetString("app.warmup.cron"),
			Cities:         strings.Split(resource.GetString("app.warmup.cities"), ","),
			LockTTL:        resource.GetDuration("app.warmup.lock-ttl"),
			Timeout:        resource.GetDuration("app.warmup.timeout"),
		})
		if err := warmUpScheduler.InitWarmUpScheduleTasks(); err != nil {
			log.Fatal(msg.GetMessage("app.init-failed", "warm-up", err))
		}
		defer warmUpScheduler.Stop()
	}

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(msg.GetMessage("app.init-failed", "server", err))
		}
	}()
	log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName, port))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.init-failed", "shutdown", err))
	}
	log.Info(msg.GetMessage("app.stopped", configs.Env.ApplicationName))
}

func newRedisClient() (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithAddress(resource.GetStringOrDefault("app.redis.host", "localhost"), resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithKeyPrefix(resource.GetStringOrDefault("app.redis.key-prefix", "zephyr")).
		WithDefaultCacheTTL(resource.GetDurationOrDefault("app.cache.ttl", 10*time.Minute)).
		WithCacheTTL(hourlyCache, hourlyTTL())
	return redis.NewClient(config)
}

const hourlyCache = "weather-hourly"

// hourlyTTL keeps hourly forecasts fresher than the default cache TTL
func hourlyTTL() time.Duration {
	return resource.GetDurationOrDefault("app.cache.hourly-ttl", 5*time.Minute)
}

// newStores picks Redis caches when a client is configured, in-process caches otherwise
func newStores(client *redis.Client) (weather.Stores, cache.HealthGateway) {
	if client != nil {
		stores := weather.Stores{
			Current:  cache.NewRedisStore[entity.CurrentConditions](client, "weather-current"),
			Forecast: cache.NewRedisStore[entity.WeeklyForecast](client, "weather-forecast"),
			Hourly:   cache.NewRedisStore[entity.HourlyForecast](client, hourlyCache),
		}
		gateway := cache.NewRedisHealthGateway(redis.NewHealthChecker(client))
		registerStores(gateway, stores)
		return stores, gateway
	}

	ttl := resource.GetDurationOrDefault("app.cache.ttl", 10*time.Minute)
	stores := weather.Stores{
		Current:  cache.NewMemoryStore[entity.CurrentConditions]("weather-current", ttl),
		Forecast: cache.NewMemoryStore[entity.WeeklyForecast]("weather-forecast", ttl),
		Hourly:   cache.NewMemoryStore[entity.HourlyForecast](hourlyCache, hourlyTTL()),
	}
	gateway := cache.NewMemoryHealthGateway()
	registerStores(gateway, stores)
	return stores, gateway
}

func registerStores(gateway cache.HealthGateway, stores weather.Stores) {
	gateway.RegisterStore(stores.Current.Name(), stores.Current.Stats)
	gateway.RegisterStore(stores.Forecast.Name(), stores.Forecast.Stats)
	gateway.RegisterStore(stores.Hourly.Name(), stores.Hourly.Stats)
}
