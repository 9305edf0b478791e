package auth

import (
	"context"

	"bizops/backend/internal/entity"
)

type User interface {
	GetByEmail(ctx context.Context, email string) (entity.User, error)
}
