package repo

import "context"

type Metrics struct {
	TotalProducts int `json:"total_products"`
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}

// GatewayMetricsRepository derives dashboard metrics from a ProductGateway.
type GatewayMetricsRepository struct {
	gateway ProductGateway
}

func NewGatewayMetricsRepository(gateway ProductGateway) *GatewayMetricsRepository {
	return &GatewayMetricsRepository{gateway: gateway}
}

// GetDashboardMetrics implements MetricsRepository.
func (r *GatewayMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	count, err := r.gateway.GetProductCount(ctx)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{TotalProducts: count}, nil
}
