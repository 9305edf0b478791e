package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

const (
	CashflowIncome  = "income"
	CashflowExpense = "expense"
)

func ValidCashflowType(t string) bool {
	return t == CashflowIncome || t == CashflowExpense
}

type Cashflow struct {
	bun.BaseModel `bun:"table:cashflow"`

	BasicEntity
	TransactionDate *string          `json:"transaction_date" bun:"transaction_date"`
	Type            *string          `json:"type"        bun:"type"`
	Category        *string          `json:"category"    bun:"category"`
	Amount          *decimal.Decimal `json:"amount"      bun:"amount"`
	Description     *string          `json:"description" bun:"description"`
	GroupID         *int             `json:"group_id"    bun:"group_id"`
	ProofLink       *string          `json:"proof_link"  bun:"proof_link"`
}
