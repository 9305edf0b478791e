package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Attendance statuses. A record exists at most once per employee per work day.
const (
	AttendancePresent    = "present"
	AttendancePermission = "permission"
	AttendanceSick       = "sick"
	AttendanceAbsent     = "absent"
)

func ValidAttendanceStatus(status string) bool {
	switch status {
	case AttendancePresent, AttendancePermission, AttendanceSick, AttendanceAbsent:
		return true
	}
	return false
}

type Attendance struct {
	bun.BaseModel `bun:"table:attendance"`

	BasicEntity
	EmployeeID      *int       `json:"employee_id" bun:"employee_id"`
	WorkDay         *string    `json:"work_day"    bun:"work_day"`
	ClockIn         *time.Time `json:"clock_in"    bun:"clock_in"`
	ClockOut        *time.Time `json:"clock_out"   bun:"clock_out"`
	DurationMinutes *int       `json:"duration_minutes" bun:"duration_minutes"`
	Status          *string    `json:"status" bun:"status"`
	Notes           *string    `json:"notes"  bun:"notes"`
}
