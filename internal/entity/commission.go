package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Commission invariants: net <= gross, disbursed <= net.
type Commission struct {
	bun.BaseModel `bun:"table:commissions"`

	BasicEntity
	AccountID           *int             `json:"account_id"  bun:"account_id"`
	EmployeeID          *int             `json:"employee_id" bun:"employee_id"`
	GroupID             *int             `json:"group_id"    bun:"group_id"`
	CommissionDate      *string          `json:"commission_date" bun:"commission_date"`
	PeriodWeek          *string          `json:"period_week"  bun:"period_week"`
	PeriodMonth         *int             `json:"period_month" bun:"period_month"`
	PeriodYear          *int             `json:"period_year"  bun:"period_year"`
	GrossCommission     *decimal.Decimal `json:"gross_commission"     bun:"gross_commission"`
	NetCommission       *decimal.Decimal `json:"net_commission"       bun:"net_commission"`
	DisbursedCommission *decimal.Decimal `json:"disbursed_commission" bun:"disbursed_commission"`
	DisbursementDate    *string          `json:"disbursement_date" bun:"disbursement_date"`
	CommissionRate      *decimal.Decimal `json:"commission_rate"   bun:"commission_rate"`
	Notes               *string          `json:"notes" bun:"notes"`
}
