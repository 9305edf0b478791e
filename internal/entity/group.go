package entity

import (
	"github.com/uptrace/bun"
)

type Group struct {
	bun.BaseModel `bun:"table:groups"`

	BasicEntity
	Name        *string `json:"name"        bun:"name"`
	Description *string `json:"description" bun:"description"`
}
