package asset

import (
	"context"

	"bizops/backend/internal/entity"
	"bizops/backend/internal/repository/postgres/asset"
)

type Asset interface {
	GetList(ctx context.Context, filter asset.Filter) ([]asset.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (entity.Asset, error)
	Create(ctx context.Context, request asset.CreateRequest) (entity.Asset, error)
	UpdateColumns(ctx context.Context, request asset.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
