package attendance

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit   *int
	Offset  *int
	Page    *int
	Search  *string
	GroupID *int
	Status  *string
	Date    *string
}

type GetListResponse struct {
	ID              int        `json:"id"`
	EmployeeID      *int       `json:"employee_id"`
	FullName        *string    `json:"full_name"`
	GroupID         *int       `json:"group_id"`
	Group           *string    `json:"group"`
	WorkDay         *date.Date `json:"work_day"`
	ClockIn         *time.Time `json:"clock_in"`
	ClockOut        *time.Time `json:"clock_out,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Status          *string    `json:"status"`
	Notes           *string    `json:"notes,omitempty"`
}

type TodayResponse struct {
	bun.BaseModel `bun:"table:attendance"`

	ID              int        `json:"id" bun:"id"`
	EmployeeID      *int       `json:"employee_id" bun:"employee_id"`
	WorkDay         string     `json:"work_day" bun:"work_day"`
	ClockIn         *time.Time `json:"clock_in" bun:"clock_in"`
	ClockOut        *time.Time `json:"clock_out" bun:"clock_out"`
	DurationMinutes *int       `json:"duration_minutes" bun:"duration_minutes"`
	Status          *string    `json:"status" bun:"status"`
	Notes           *string    `json:"notes" bun:"notes"`
}

type ClockInResponse struct {
	bun.BaseModel `bun:"table:attendance"`

	ID         int       `json:"id" bun:"-"`
	EmployeeID int       `json:"employee_id" bun:"employee_id"`
	WorkDay    string    `json:"work_day" bun:"work_day"`
	ClockIn    time.Time `json:"clock_in" bun:"clock_in"`
	Status     string    `json:"status" bun:"status"`
	CreatedAt  time.Time `json:"-" bun:"created_at"`
	CreatedBy  int       `json:"-" bun:"created_by"`

	// AlreadyClockedIn marks an idempotent repeat of an earlier clock-in.
	AlreadyClockedIn bool `json:"already_clocked_in" bun:"-"`
}

type ClockOutResponse struct {
	ID              int        `json:"id"`
	EmployeeID      int        `json:"employee_id"`
	WorkDay         string     `json:"work_day"`
	ClockIn         *time.Time `json:"clock_in"`
	ClockOut        *time.Time `json:"clock_out"`
	DurationMinutes int        `json:"duration_minutes"`

	// AlreadyClockedOut marks an idempotent repeat of an earlier clock-out.
	AlreadyClockedOut bool `json:"already_clocked_out"`
}

type UpdateStatusRequest struct {
	ID     int     `json:"id"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type MonthExportRow struct {
	EmployeeID      int
	FullName        string
	WorkDay         string
	ClockIn         *time.Time
	ClockOut        *time.Time
	DurationMinutes *int
	Status          string
}
