package commission

import "github.com/shopspring/decimal"

type Filter struct {
	Limit       *int
	Offset      *int
	Page        *int
	EmployeeID  *int
	GroupID     *int
	AccountID   *int
	PeriodWeek  *string
	PeriodMonth *int
	PeriodYear  *int
}

type GetListResponse struct {
	ID                  int              `json:"id"`
	AccountID           *int             `json:"account_id"`
	AccountUsername     *string          `json:"account_username"`
	EmployeeID          *int             `json:"employee_id"`
	Employee            *string          `json:"employee"`
	GroupID             *int             `json:"group_id"`
	Group               *string          `json:"group"`
	CommissionDate      *string          `json:"commission_date"`
	PeriodWeek          *string          `json:"period_week"`
	PeriodMonth         *int             `json:"period_month"`
	PeriodYear          *int             `json:"period_year"`
	GrossCommission     *decimal.Decimal `json:"gross_commission"`
	NetCommission       *decimal.Decimal `json:"net_commission"`
	DisbursedCommission *decimal.Decimal `json:"disbursed_commission"`
	DisbursementDate    *string          `json:"disbursement_date"`
}

type CreateRequest struct {
	AccountID           *int             `json:"account_id"`
	EmployeeID          *int             `json:"employee_id"`
	GroupID             *int             `json:"group_id"`
	CommissionDate      *string          `json:"commission_date"`
	PeriodWeek          *string          `json:"period_week"`
	GrossCommission     *decimal.Decimal `json:"gross_commission"`
	NetCommission       *decimal.Decimal `json:"net_commission"`
	DisbursedCommission *decimal.Decimal `json:"disbursed_commission"`
	DisbursementDate    *string          `json:"disbursement_date"`
	CommissionRate      *decimal.Decimal `json:"commission_rate"`
	Notes               *string          `json:"notes"`
}

type UpdateRequest struct {
	ID                  int              `json:"id"`
	AccountID           *int             `json:"account_id"`
	GroupID             *int             `json:"group_id"`
	GrossCommission     *decimal.Decimal `json:"gross_commission"`
	NetCommission       *decimal.Decimal `json:"net_commission"`
	DisbursedCommission *decimal.Decimal `json:"disbursed_commission"`
	DisbursementDate    *string          `json:"disbursement_date"`
	CommissionRate      *decimal.Decimal `json:"commission_rate"`
	Notes               *string          `json:"notes"`
}

// ExportRow feeds the commission excel export.
type ExportRow struct {
	Employee        string
	Group           string
	AccountUsername string
	CommissionDate  string
	PeriodWeek      string
	Gross           decimal.Decimal
	Net             decimal.Decimal
	Disbursed       decimal.Decimal
}

// StatementRow feeds the per-employee monthly pdf statement.
type StatementRow struct {
	CommissionDate  string
	PeriodWeek      string
	AccountUsername string
	Gross           decimal.Decimal
	Net             decimal.Decimal
	Disbursed       decimal.Decimal
}
