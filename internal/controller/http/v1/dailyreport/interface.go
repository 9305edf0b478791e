package dailyreport

import (
	"context"
	"time"

	"bizops/backend/internal/entity"
	"bizops/backend/internal/repository/postgres/dailyreport"
)

type DailyReport interface {
	Submit(ctx context.Context, request dailyreport.SubmitRequest) (dailyreport.SubmitResponse, error)
	PreviousClosing(ctx context.Context, request dailyreport.PreviousClosingRequest) (dailyreport.PreviousClosingResponse, error)
	GetList(ctx context.Context, filter dailyreport.Filter) ([]dailyreport.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (entity.DailyReport, error)
	SalesTrend(ctx context.Context, start, end time.Time) ([]dailyreport.SalesTrendRow, error)
}
