package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"zephyr/internal/application/dashboard"
	"zephyr/internal/application/view"
	"zephyr/internal/domain/entity"
	"zephyr/internal/domain/model"
)

type fakeWeather struct {
	calls atomic.Int32
}

func (f *fakeWeather) FetchCurrent(_ context.Context, city string) *entity.CurrentConditions {
	f.calls.Add(1)
	if city == "Nowhere" {
		return nil
	}
	return &entity.CurrentConditions{
		Location:  entity.Location{Name: city, Country: "Testland", LocalTime: "2024-01-15 14:05"},
		TempC:     21.5,
		Condition: entity.Condition{Text: "Sunny", Code: 1000},
		IsDay:     true,
	}
}

func (f *fakeWeather) FetchForecast(_ context.Context, city string) *entity.WeeklyForecast {
	f.calls.Add(1)
	if city == "Nowhere" {
		return nil
	}
	return &entity.WeeklyForecast{
		Location: entity.Location{Name: city},
		Days: []entity.DailyForecast{
			{Date: "2024-01-15", MaxTempC: 27.1, MinTempC: 15.3},
			{Date: "2024-01-16", MaxTempC: 26, MinTempC: 14.9},
			{Date: "2024-01-17", MaxTempC: 25, MinTempC: 14},
		},
	}
}

func (f *fakeWeather) FetchHourly(_ context.Context, city string) *entity.HourlyForecast {
	f.calls.Add(1)
	if city == "Nowhere" {
		return nil
	}
	hours := make([]entity.HourlyEntry, 24)
	for i := range hours {
		hours[i] = entity.HourlyEntry{Time: fmt.Sprintf("2024-01-15 %02d:00", i), TempC: float64(10 + i)}
	}
	return &entity.HourlyForecast{Location: entity.Location{Name: city, LocalTime: "2024-01-15 20:10"}, Hours: hours}
}

func (f *fakeWeather) WarmUp(context.Context, string) error { return nil }

type fakeHealth struct {
	status model.HealthStatus
}

func (f fakeHealth) CheckHealth(context.Context) model.HealthResponse {
	return model.HealthResponse{Status: f.status}
}

func newTestServer(t *testing.T) (*echo.Echo, *fakeWeather, *dashboard.Registry) {
	t.Helper()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	e := echo.New()
	e.Renderer = renderer
	uc := &fakeWeather{}
	registry := dashboard.NewRegistry(uc, dashboard.Config{DefaultCity: "Dhaka", HourlyWindow: 12, PanelTimeout: time.Second})
	t.Cleanup(registry.Close)

	NewDashboardController(e.Group(""), registry).InitDashboardRoutes()
	api := e.Group("/api")
	NewWeatherController(api, uc).InitWeatherRoutes()
	NewHealthController(api, fakeHealth{status: model.StatusUp}).InitHealthRoutes()
	return e, uc, registry
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func waitSession(t *testing.T, registry *dashboard.Registry, id string) {
	t.Helper()
	d, ok := registry.Lookup(id)
	if !ok {
		t.Fatalf("session %s not found", id)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}

func TestPageIssuesSessionAndRendersPanels(t *testing.T) {
	e, _, registry := newTestServer(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	cookie := sessionCookie(t, rec)
	waitSession(t, registry, cookie.Value)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = serve(e, req)
	body := rec.Body.String()
	for _, want := range []string{"panel-current", "panel-weekly", "panel-hourly", "panel-chart", "Dhaka, Testland"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("known session got a new cookie")
	}
}

func TestSearchAndThemeRedirect(t *testing.T) {
	e, _, registry := newTestServer(t)
	cookie := sessionCookie(t, serve(e, httptest.NewRequest(http.MethodGet, "/", nil)))

	form := url.Values{"city": {"  Paris "}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(cookie)
	rec := serve(e, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("search status = %d", rec.Code)
	}
	waitSession(t, registry, cookie.Value)

	req = httptest.NewRequest(http.MethodGet, "/panels/current", nil)
	req.AddCookie(cookie)
	if body := serve(e, req).Body.String(); !strings.Contains(body, "Paris, Testland") {
		t.Errorf("current panel = %s", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.AddCookie(cookie)
	serve(e, req)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	if body := serve(e, req).Body.String(); !strings.Contains(body, `class="dark"`) {
		t.Error("dark mode not rendered after toggle")
	}
}

func TestBlankSearchKeepsCity(t *testing.T) {
	e, _, registry := newTestServer(t)
	cookie := sessionCookie(t, serve(e, httptest.NewRequest(http.MethodGet, "/", nil)))

	form := url.Values{"city": {"   "}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(cookie)
	serve(e, req)

	d, _ := registry.Lookup(cookie.Value)
	if d.City() != "Dhaka" {
		t.Errorf("city = %q, want Dhaka", d.City())
	}
}

func TestUnknownPanel(t *testing.T) {
	e, _, _ := newTestServer(t)
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/panels/radar", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestOnlyPageCreatesSessions(t *testing.T) {
	e, _, registry := newTestServer(t)

	for i := 0; i < 50; i++ {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/panels/current", nil))
		if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/" {
			t.Fatalf("status = %d location = %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
		}
		if len(rec.Result().Cookies()) != 0 {
			t.Fatal("fragment request issued a cookie")
		}
	}
	for _, target := range []string{"/search", "/theme", "/refresh"} {
		rec := serve(e, httptest.NewRequest(http.MethodPost, target, nil))
		if rec.Code != http.StatusSeeOther {
			t.Errorf("%s status = %d", target, rec.Code)
		}
	}
	if n := registry.Len(); n != 0 {
		t.Errorf("sessions = %d, want 0", n)
	}

	req := httptest.NewRequest(http.MethodGet, "/panels/weekly", nil)
	req.Header.Set("HX-Request", "true")
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "expired"})
	rec := serve(e, req)
	if rec.Code != http.StatusNoContent || rec.Header().Get("HX-Redirect") != "/" {
		t.Errorf("htmx status = %d redirect = %q", rec.Code, rec.Header().Get("HX-Redirect"))
	}

	serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	if n := registry.Len(); n != 1 {
		t.Errorf("sessions after page = %d, want 1", n)
	}
}

func TestWeatherEndpoints(t *testing.T) {
	e, _, _ := newTestServer(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"current", "/api/weather/current?city=Dhaka", http.StatusOK},
		{"current missing city", "/api/weather/current?city=%20", http.StatusBadRequest},
		{"current unavailable", "/api/weather/current?city=Nowhere", http.StatusBadGateway},
		{"forecast", "/api/weather/forecast?city=Dhaka&days=2", http.StatusOK},
		{"forecast unavailable", "/api/weather/forecast?city=Nowhere", http.StatusBadGateway},
		{"hourly", "/api/weather/hourly?city=Dhaka&window=12", http.StatusOK},
		{"hourly missing city", "/api/weather/hourly", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestForecastDaysTrimmed(t *testing.T) {
	e, _, _ := newTestServer(t)
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/weather/forecast?city=Dhaka&days=2", nil))

	var forecast entity.WeeklyForecast
	if err := json.Unmarshal(rec.Body.Bytes(), &forecast); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(forecast.Days) != 2 || forecast.Days[0].Date != "2024-01-15" {
		t.Errorf("days = %+v", forecast.Days)
	}
}

func TestHourlyWindowFromLocalTime(t *testing.T) {
	e, _, _ := newTestServer(t)
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/weather/hourly?city=Dhaka&window=12", nil))

	var hourly entity.HourlyForecast
	if err := json.Unmarshal(rec.Body.Bytes(), &hourly); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(hourly.Hours) != 4 || hourly.Hours[0].Time != "2024-01-15 20:00" {
		t.Errorf("hours = %+v", hourly.Hours)
	}
}

func TestHealthStatusCode(t *testing.T) {
	e := echo.New()
	NewHealthController(e.Group("/api"), fakeHealth{status: model.StatusDown}).InitHealthRoutes()
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", rec.Code)
	}
}
