package api

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"zephyr/pkg/http"
)

const forecastBody = `{
  "location": {"name": "Dhaka", "country": "Bangladesh", "tz_id": "Asia/Dhaka", "localtime": "2024-01-15 14:05"},
  "current": {"temp_c": 24.0, "is_day": 1, "condition": {"text": "Sunny", "code": 1000}},
  "forecast": {"forecastday": [
    {"date": "2024-01-15", "day": {"maxtemp_c": 27.1, "mintemp_c": 15.3, "avghumidity": 60}},
    {"date": "2024-01-16", "day": {"maxtemp_c": 26.0, "mintemp_c": 14.9, "avghumidity": 58}}
  ]}
}`

func newTestGateway(t *testing.T, handler nethttp.HandlerFunc) WeatherGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewWeatherGateway(server.URL+"/v1", "test-key", http.ClientOptions{})
}

func TestGetForecastSendsKeyCityAndDays(t *testing.T) {
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/v1/forecast.json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("key") != "test-key" || q.Get("q") != "Dhaka" || q.Get("days") != "8" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody))
	})

	resp, err := gateway.GetForecast(context.Background(), "Dhaka", 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Forecast.ForecastDay) != 2 {
		t.Fatalf("days = %d, want 2", len(resp.Forecast.ForecastDay))
	}
	if resp.Forecast.ForecastDay[0].Day.MaxTempC != 27.1 {
		t.Errorf("max = %v", resp.Forecast.ForecastDay[0].Day.MaxTempC)
	}
}

func TestGetHourlyRequestsOneDay(t *testing.T) {
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if got := r.URL.Query().Get("days"); got != "1" {
			t.Errorf("days = %q, want 1", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody))
	})

	if _, err := gateway.GetHourly(context.Background(), "Dhaka"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetCurrentEncodesCity(t *testing.T) {
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if got := r.URL.Query().Get("q"); got != "São Paulo" {
			t.Errorf("q = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"location":{"name":"São Paulo"},"current":{"temp_c":21.5}}`))
	})

	resp, err := gateway.GetCurrent(context.Background(), "  São Paulo ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Current.TempC != 21.5 {
		t.Errorf("temp = %v", resp.Current.TempC)
	}
}

func TestProviderErrorEnvelope(t *testing.T) {
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	})

	_, err := gateway.GetCurrent(context.Background(), "Atlantis")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Code != 1006 || apiErr.Status != nethttp.StatusBadRequest {
		t.Errorf("unexpected error %+v", apiErr)
	}
}

func TestErrorFieldOnSuccessfulStatus(t *testing.T) {
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"code":2006,"message":"API key is invalid."}}`))
	})

	_, err := gateway.GetForecast(context.Background(), "Dhaka", 7)

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != 2006 {
		t.Fatalf("expected APIError 2006, got %v", err)
	}
}

func TestEmptyCityMakesNoCall(t *testing.T) {
	var calls int32
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		atomic.AddInt32(&calls, 1)
	})

	if _, err := gateway.GetCurrent(context.Background(), "   "); !errors.Is(err, ErrEmptyCity) {
		t.Errorf("expected ErrEmptyCity, got %v", err)
	}
	if _, err := gateway.GetHourly(context.Background(), ""); !errors.Is(err, ErrEmptyCity) {
		t.Errorf("expected ErrEmptyCity, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("calls = %d, want 0", got)
	}
}

func TestTransportErrorIsWrapped(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(nethttp.ResponseWriter, *nethttp.Request) {}))
	url := server.URL
	server.Close()

	gateway := NewWeatherGateway(url, "k", http.ClientOptions{})
	_, err := gateway.GetCurrent(context.Background(), "Dhaka")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure reported as provider error: %v", err)
	}
}
