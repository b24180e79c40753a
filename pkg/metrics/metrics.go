// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zephyr_http_requests_total",
			Help: "Total requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zephyr_http_request_duration_seconds",
			Help:    "Request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// UpstreamCalls counts WeatherAPI.com calls; outcome is ok, api_error or error
	UpstreamCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zephyr_weather_upstream_calls_total",
			Help: "Weather provider calls by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	// CacheLookups counts cache reads; result is hit, miss or error
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zephyr_weather_cache_lookups_total",
			Help: "Weather cache lookups by store and result.",
		},
		[]string{"store", "result"},
	)
)

func init() {
	prometheus.MustRegister(RequestCounter, RequestDuration, UpstreamCalls, CacheLookups)
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
