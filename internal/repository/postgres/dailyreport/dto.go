package dailyreport

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/shopspring/decimal"
)

type Filter struct {
	Limit      *int
	Offset     *int
	Page       *int
	GroupID    *int
	EmployeeID *int
	DateFrom   *string
	DateTo     *string
	Shift      *int
}

type SubmitRequest struct {
	ReportDate      *string          `json:"report_date"`
	Shift           *int             `json:"shift"`
	GroupID         *int             `json:"group_id"`
	DeviceID        *int             `json:"device_id"`
	AccountID       *int             `json:"account_id"`
	ProductCategory *string          `json:"product_category"`
	LiveStatus      *string          `json:"live_status"`
	StartingSales   *decimal.Decimal `json:"starting_sales"`
	EndingSales     *decimal.Decimal `json:"ending_sales"`
	OpeningBalance  *decimal.Decimal `json:"opening_balance"`
	ClosingBalance  *decimal.Decimal `json:"closing_balance"`
	TotalRevenue    *decimal.Decimal `json:"total_revenue"`
	GrossCommission *decimal.Decimal `json:"gross_commission"`
	Notes           *string          `json:"notes"`
}

type SubmitResponse struct {
	ID              int             `json:"id"`
	EmployeeID      int             `json:"employee_id"`
	ReportDate      string          `json:"report_date"`
	Shift           int             `json:"shift"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	OpeningBalance  decimal.Decimal `json:"opening_balance"`
	ClosingBalance  decimal.Decimal `json:"closing_balance"`
	AttendanceClose *AttendanceClose `json:"attendance_close,omitempty"`
}

// AttendanceClose reports the automatic clock-out performed alongside the
// report write.
type AttendanceClose struct {
	AttendanceID    int       `json:"attendance_id"`
	ClockOut        time.Time `json:"clock_out"`
	DurationMinutes int       `json:"duration_minutes"`
}

type PreviousClosingRequest struct {
	GroupID    int
	ReportDate string
	Shift      int
}

type PreviousClosingResponse struct {
	GroupID        int             `json:"group_id"`
	PrevReportDate string          `json:"prev_report_date"`
	PrevShift      int             `json:"prev_shift"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	Found          bool            `json:"found"`
}

type GetListResponse struct {
	ID              int              `json:"id"`
	EmployeeID      *int             `json:"employee_id"`
	FullName        *string          `json:"full_name"`
	ReportDate      *date.Date       `json:"report_date"`
	Shift           *int             `json:"shift"`
	GroupID         *int             `json:"group_id"`
	Group           *string          `json:"group"`
	AccountID       *int             `json:"account_id"`
	Account         *string          `json:"account"`
	DeviceID        *int             `json:"device_id"`
	ProductCategory *string          `json:"product_category"`
	LiveStatus      *string          `json:"live_status"`
	StartingSales   *decimal.Decimal `json:"starting_sales"`
	EndingSales     *decimal.Decimal `json:"ending_sales"`
	TotalSales      *decimal.Decimal `json:"total_sales"`
	OpeningBalance  *decimal.Decimal `json:"opening_balance"`
	ClosingBalance  *decimal.Decimal `json:"closing_balance"`
	TotalRevenue    *decimal.Decimal `json:"total_revenue"`
	GrossCommission *decimal.Decimal `json:"gross_commission"`
	Notes           *string          `json:"notes"`
}

type SalesTrendRow struct {
	ReportDate string          `json:"date"`
	TotalSales decimal.Decimal `json:"sales"`
}
