package entity

import (
	"github.com/uptrace/bun"
)

// User is an employee profile paired with its sign-in credentials. Employment
// status moves active -> inactive -> resigned; rows are never hard-deleted.
type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Email         *string `json:"email"        bun:"email"`
	Password      *string `json:"-"            bun:"password"`
	FullName      *string `json:"full_name"    bun:"full_name"`
	Role          *string `json:"role"         bun:"role"`
	JobPosition   *string `json:"job_position" bun:"job_position"`
	Status        *string `json:"status"       bun:"status"`
	GroupID       *int    `json:"group_id"     bun:"group_id"`
	PhoneNumber   *string `json:"phone_number" bun:"phone_number"`
	Address       *string `json:"address"      bun:"address"`
	AvatarUrl     *string `json:"avatar_url"   bun:"avatar_url"`
	DateOfBirth   *string `json:"date_of_birth"   bun:"date_of_birth"`
	StartWorkDate *string `json:"start_work_date" bun:"start_work_date"`
}
