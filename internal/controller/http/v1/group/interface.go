package group

import (
	"context"

	"bizops/backend/internal/entity"
	"bizops/backend/internal/repository/postgres/group"
)

type Group interface {
	GetList(ctx context.Context, filter group.Filter) ([]group.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (entity.Group, error)
	Create(ctx context.Context, request group.CreateRequest) (entity.Group, error)
	UpdateColumns(ctx context.Context, request group.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
