package api

import (
	"context"

	"zephyr/internal/domain/model"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// ConfigHealthGateway checks that the provider is configured. It never calls the provider,
// health checks would otherwise consume the API quota.
type ConfigHealthGateway struct {
	baseURL string
	apiKey  string
}

func NewConfigHealthGateway(baseURL, apiKey string) *ConfigHealthGateway {
	return &ConfigHealthGateway{baseURL: baseURL, apiKey: apiKey}
}

func (gateway *ConfigHealthGateway) Health(context.Context) model.ComponentHealthStatus {
	details := map[string]string{"base_url": gateway.baseURL}

	if gateway.apiKey == "" {
		details["message"] = "API key is not configured"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	details["api_key"] = "configured"
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
