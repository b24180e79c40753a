package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSetupMetricsExposesRequestCounter(t *testing.T) {
	e := echo.New()
	SetupMetrics(e)
	e.GET("/weather/:city", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/weather/dhaka", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	want := `zephyr_http_requests_total{method="GET",route="/weather/:city",status="204"}`
	if !strings.Contains(body, want) {
		t.Errorf("metrics output missing %s", want)
	}
}
