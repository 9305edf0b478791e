package dashboard

import (
	"context"

	"bizops/backend/internal/repository/postgres/dashboard"
)

type Dashboard interface {
	GetMetrics(ctx context.Context, month, year int) (dashboard.Metrics, error)
	GetCharts(ctx context.Context, month, year int) (dashboard.Charts, error)
}
