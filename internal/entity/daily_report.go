package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Live statuses gate the opening-balance carry-forward: only a "normal" shift
// inherits the previous shift's closing balance.
const (
	LiveStatusNormal = "normal"
	LiveStatusDown   = "down"
	LiveStatusRelive = "relive"
)

func ValidLiveStatus(status string) bool {
	switch status {
	case LiveStatusNormal, LiveStatusDown, LiveStatusRelive:
		return true
	}
	return false
}

// DailyReport is one shift report, unique per (employee, report_date, shift).
// Reports are immutable once written.
type DailyReport struct {
	bun.BaseModel `bun:"table:daily_reports"`

	BasicEntity
	EmployeeID      *int             `json:"employee_id" bun:"employee_id"`
	ReportDate      *string          `json:"report_date" bun:"report_date"`
	Shift           *int             `json:"shift"       bun:"shift"`
	GroupID         *int             `json:"group_id"    bun:"group_id"`
	DeviceID        *int             `json:"device_id"   bun:"device_id"`
	AccountID       *int             `json:"account_id"  bun:"account_id"`
	ProductCategory *string          `json:"product_category" bun:"product_category"`
	LiveStatus      *string          `json:"live_status" bun:"live_status"`
	StartingSales   *decimal.Decimal `json:"starting_sales"  bun:"starting_sales"`
	EndingSales     *decimal.Decimal `json:"ending_sales"    bun:"ending_sales"`
	TotalSales      *decimal.Decimal `json:"total_sales"     bun:"total_sales"`
	OpeningBalance  *decimal.Decimal `json:"opening_balance" bun:"opening_balance"`
	ClosingBalance  *decimal.Decimal `json:"closing_balance" bun:"closing_balance"`
	TotalRevenue    *decimal.Decimal `json:"total_revenue"   bun:"total_revenue"`
	GrossCommission *decimal.Decimal `json:"gross_commission" bun:"gross_commission"`
	Notes           *string          `json:"notes" bun:"notes"`
}
