package device

import (
	"context"

	"bizops/backend/internal/entity"
	"bizops/backend/internal/repository/postgres/device"
)

type Device interface {
	GetList(ctx context.Context, filter device.Filter) ([]device.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (entity.Device, error)
	Create(ctx context.Context, request device.CreateRequest) (entity.Device, error)
	UpdateColumns(ctx context.Context, request device.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
