package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/usecase/weather"
	"zephyr/pkg/msg"
	"zephyr/pkg/util/numberutils"
)

// maxForecastDays is the longest forecast WeatherAPI.com serves
const maxForecastDays = 14

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
	now     func() time.Time
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, now: time.Now}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/current", controller.FindCurrent)
	controller.api.GET("/weather/forecast", controller.FindForecast)
	controller.api.GET("/weather/hourly", controller.FindHourly)
}

// FindCurrent godoc
// @Summary Current conditions
// @Description Current weather of a city as resolved by the provider
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} entity.CurrentConditions "Current conditions"
// @Failure 400 {object} map[string]string "Missing city"
// @Failure 502 {object} map[string]string "Provider failed or city not found"
// @Router /weather/current [get]
func (controller *WeatherController) FindCurrent(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("weather.http.city-required")})
	}

	current := controller.useCase.FetchCurrent(c.Request().Context(), city)
	if current == nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": msg.GetMessage("weather.http.unavailable", city)})
	}
	return c.JSON(http.StatusOK, current)
}

// FindForecast godoc
// @Summary Daily forecast
// @Description Daily forecast of a city in ascending date order
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Param days query int false "Keep only the first N days"
// @Success 200 {object} entity.WeeklyForecast "Daily forecast"
// @Failure 400 {object} map[string]string "Missing city"
// @Failure 502 {object} map[string]string "Provider failed or city not found"
// @Router /weather/forecast [get]
func (controller *WeatherController) FindForecast(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("weather.http.city-required")})
	}
	days := numberutils.ToIntInRange(c.QueryParam("days"), 0, 1, maxForecastDays)

	forecast := controller.useCase.FetchForecast(c.Request().Context(), city)
	if forecast == nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": msg.GetMessage("weather.http.unavailable", city)})
	}

	if days > 0 && days < len(forecast.Days) {
		trimmed := *forecast
		trimmed.Days = forecast.Days[:days]
		return c.JSON(http.StatusOK, trimmed)
	}
	return c.JSON(http.StatusOK, forecast)
}

// FindHourly godoc
// @Summary Hourly forecast
// @Description Hours of the current day; with window, only the next N hours from the local time
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Param window query int false "Number of upcoming hours"
// @Success 200 {object} entity.HourlyForecast "Hourly forecast"
// @Failure 400 {object} map[string]string "Missing city"
// @Failure 502 {object} map[string]string "Provider failed or city not found"
// @Router /weather/hourly [get]
func (controller *WeatherController) FindHourly(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("weather.http.city-required")})
	}
	window := numberutils.ToIntInRange(c.QueryParam("window"), 0, 1, 24)

	hourly := controller.useCase.FetchHourly(c.Request().Context(), city)
	if hourly == nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": msg.GetMessage("weather.http.unavailable", city)})
	}

	if window > 0 {
		return c.JSON(http.StatusOK, entity.HourlyForecast{
			Location: hourly.Location,
			Hours:    weather.Upcoming(hourly, window, controller.now()),
		})
	}
	return c.JSON(http.StatusOK, hourly)
}
