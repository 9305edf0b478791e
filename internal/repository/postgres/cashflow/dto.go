package cashflow

import "github.com/shopspring/decimal"

type Filter struct {
	Limit    *int
	Offset   *int
	Page     *int
	Type     *string
	Category *string
	GroupID  *int
	DateFrom *string
	DateTo   *string
}

type GetListResponse struct {
	ID              int              `json:"id"`
	TransactionDate *string          `json:"transaction_date"`
	Type            *string          `json:"type"`
	Category        *string          `json:"category"`
	Amount          *decimal.Decimal `json:"amount"`
	Description     *string          `json:"description"`
	GroupID         *int             `json:"group_id"`
	Group           *string          `json:"group"`
	ProofLink       *string          `json:"proof_link"`
}

type CreateRequest struct {
	TransactionDate *string          `json:"transaction_date"`
	Type            *string          `json:"type"`
	Category        *string          `json:"category"`
	Amount          *decimal.Decimal `json:"amount"`
	Description     *string          `json:"description"`
	GroupID         *int             `json:"group_id"`
	ProofLink       *string          `json:"proof_link"`
}

type UpdateRequest struct {
	ID              int              `json:"id"`
	TransactionDate *string          `json:"transaction_date"`
	Type            *string          `json:"type"`
	Category        *string          `json:"category"`
	Amount          *decimal.Decimal `json:"amount"`
	Description     *string          `json:"description"`
	GroupID         *int             `json:"group_id"`
	ProofLink       *string          `json:"proof_link"`
}

// Totals is income and expense over the filtered window.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}
