package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus is the state reported by HealthChecker
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker pings Redis and reports pool statistics
type HealthChecker struct {
	client  *Client
	timeout time.Duration
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client, timeout: 2 * time.Second}
}

// Check performs a ping with a short timeout
func (h *HealthChecker) Check(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	err := h.client.Ping(ctx)
	latency := time.Since(start)

	stats := h.client.rdb.PoolStats()
	details := map[string]string{
		"address":     h.client.config.Address(),
		"database":    strconv.Itoa(h.client.config.Database),
		"latency":     latency.String(),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
	}

	if err != nil {
		details["error"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}
	return HealthCheck{Status: StatusUp, Details: details}
}
