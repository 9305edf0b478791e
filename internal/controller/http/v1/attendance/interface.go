package attendance

import (
	"context"
	"time"

	"bizops/backend/internal/entity"
	"bizops/backend/internal/repository/postgres/attendance"
)

type Attendance interface {
	Today(ctx context.Context) (attendance.TodayResponse, error)
	ClockIn(ctx context.Context) (attendance.ClockInResponse, error)
	ClockOut(ctx context.Context) (attendance.ClockOutResponse, error)
	UpdateStatus(ctx context.Context, request attendance.UpdateStatusRequest) error
	GetList(ctx context.Context, filter attendance.Filter) ([]attendance.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (entity.Attendance, error)
	GetMonthRows(ctx context.Context, year int, month time.Month) ([]attendance.MonthExportRow, error)
	Delete(ctx context.Context, id int) error
}
