package commission

import (
	"context"

	"bizops/backend/internal/entity"
	"bizops/backend/internal/repository/postgres/commission"
	"bizops/backend/internal/service/summary"
)

type Commission interface {
	GetList(ctx context.Context, filter commission.Filter) ([]commission.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (entity.Commission, error)
	Create(ctx context.Context, request commission.CreateRequest) (entity.Commission, error)
	UpdateColumns(ctx context.Context, request commission.UpdateRequest) error
	Delete(ctx context.Context, id int) error
	MonthSummary(ctx context.Context, month, year int) (summary.CommissionSummary, error)
	GetExportRows(ctx context.Context, month, year int) ([]commission.ExportRow, error)
	GetStatementRows(ctx context.Context, employeeID, month, year int) (string, []commission.StatementRow, error)
}
