package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"zephyr/internal/domain/model/external"
	"zephyr/pkg/http"
)

const (
	currentPath  = "/current.json"
	forecastPath = "/forecast.json"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// The API key is sent as the "key" query parameter of every request.
func NewWeatherGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	params := map[string]string{}
	for k, v := range clientOptions.DefaultQueryParams {
		params[k] = v
	}
	params["key"] = apiKey
	clientOptions.DefaultQueryParams = params

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GetCurrent gets the current conditions of a city
func (w *weatherGatewayImpl) GetCurrent(ctx context.Context, city string) (*external.CurrentResponse, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithPath(currentPath).
		WithQueryParams(map[string]string{"q": city}).
		WithSuccessResp(&external.CurrentResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, toError(status, errResp, err)
	}

	response := successResp.(*external.CurrentResponse)
	if response.Error != nil {
		return nil, &APIError{Status: status, Code: response.Error.Code, Message: response.Error.Message}
	}
	return response, nil
}

// GetForecast gets the forecast of a city
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, city string, days int) (*external.ForecastResponse, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}
	if days < 1 {
		days = 1
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithPath(forecastPath).
		WithQueryParams(map[string]string{"q": city, "days": strconv.Itoa(days)}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, toError(status, errResp, err)
	}

	response := successResp.(*external.ForecastResponse)
	if response.Error != nil {
		return nil, &APIError{Status: status, Code: response.Error.Code, Message: response.Error.Message}
	}
	return response, nil
}

// GetHourly gets the one-day forecast of a city
func (w *weatherGatewayImpl) GetHourly(ctx context.Context, city string) (*external.ForecastResponse, error) {
	return w.GetForecast(ctx, city, 1)
}

// toError prefers the provider's error envelope over the bare transport error
func toError(status int, errResp any, err error) error {
	if errResp != nil {
		if envelope, ok := errResp.(*external.APIErrorResponse); ok && envelope.Error != nil {
			return &APIError{Status: status, Code: envelope.Error.Code, Message: envelope.Error.Message}
		}
	}
	return fmt.Errorf("weather api request failed: %w", err)
}
