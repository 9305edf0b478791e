package cashflow

import (
	"context"

	"bizops/backend/internal/entity"
	"bizops/backend/internal/repository/postgres/cashflow"
)

type Cashflow interface {
	GetList(ctx context.Context, filter cashflow.Filter) ([]cashflow.GetListResponse, int, error)
	GetTotals(ctx context.Context, filter cashflow.Filter) (cashflow.Totals, error)
	GetById(ctx context.Context, id int) (entity.Cashflow, error)
	Create(ctx context.Context, request cashflow.CreateRequest) (entity.Cashflow, error)
	UpdateColumns(ctx context.Context, request cashflow.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
