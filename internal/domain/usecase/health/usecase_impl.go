package health

import (
	"context"

	"zephyr/internal/domain/gateway/api"
	"zephyr/internal/domain/gateway/cache"
	"zephyr/internal/domain/model"
)

type healthUseCase struct {
	cacheGateway cache.HealthGateway
	apiGateway   api.HealthGateway
}

func NewHealthUseCase(cacheGateway cache.HealthGateway, apiGateway api.HealthGateway) UseCase {
	return &healthUseCase{
		cacheGateway: cacheGateway,
		apiGateway:   apiGateway,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	cacheHealth := useCase.cacheGateway.Health(ctx)
	apiHealth := useCase.apiGateway.Health(ctx)

	overallStatus := model.StatusUp
	if cacheHealth.Status != model.StatusUp || apiHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:     overallStatus,
		Cache:      cacheHealth,
		WeatherAPI: apiHealth,
	}
}
