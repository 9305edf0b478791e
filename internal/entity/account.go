package entity

import (
	"github.com/uptrace/bun"
)

// Account is a third-party affiliate platform identity.
type Account struct {
	bun.BaseModel `bun:"table:accounts"`

	BasicEntity
	Platform    *string `json:"platform"     bun:"platform"`
	Username    *string `json:"username"     bun:"username"`
	Email       *string `json:"email"        bun:"email"`
	PhoneNumber *string `json:"phone_number" bun:"phone_number"`
	GroupID     *int    `json:"group_id"     bun:"group_id"`
	Status      *string `json:"status"       bun:"status"`
	ProfileLink *string `json:"profile_link" bun:"profile_link"`
	Notes       *string `json:"notes"        bun:"notes"`
}
