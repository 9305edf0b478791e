package account

import (
	"context"

	"bizops/backend/internal/entity"
	"bizops/backend/internal/repository/postgres/account"
)

type Account interface {
	GetList(ctx context.Context, filter account.Filter) ([]account.GetListResponse, int, error)
	GetById(ctx context.Context, id int) (entity.Account, error)
	Create(ctx context.Context, request account.CreateRequest) (entity.Account, error)
	UpdateColumns(ctx context.Context, request account.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}
