package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"zephyr/pkg/metrics"
)

// SetupMetrics counts and times every request by route template and serves /metrics
func SetupMetrics(e *echo.Echo) {
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := c.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			method := c.Request().Method
			metrics.RequestCounter.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
			metrics.RequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
			return err
		}
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}
