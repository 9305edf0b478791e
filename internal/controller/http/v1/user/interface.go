package user

import (
	"context"

	"bizops/backend/internal/entity"
	"bizops/backend/internal/repository/postgres/user"
)

type User interface {
	GetList(ctx context.Context, filter user.Filter) ([]user.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (entity.User, error)
	Create(ctx context.Context, request user.CreateRequest) (user.CreateResponse, error)
	UpdateColumns(ctx context.Context, request user.UpdateRequest) error
	Resign(ctx context.Context, id int) error
	GetExportRows(ctx context.Context) ([]user.ExportRow, error)
}
