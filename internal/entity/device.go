package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Device is a physical asset identified by its inventory code (imei).
type Device struct {
	bun.BaseModel `bun:"table:devices"`

	BasicEntity
	DeviceID      *string          `json:"device_id" bun:"device_id"`
	Imei          *string          `json:"imei"      bun:"imei"`
	Brand         *string          `json:"brand"     bun:"brand"`
	Model         *string          `json:"model"     bun:"model"`
	GroupID       *int             `json:"group_id"  bun:"group_id"`
	GoogleAccount *string          `json:"google_account" bun:"google_account"`
	Status        *string          `json:"status"    bun:"status"`
	PhotoUrl      *string          `json:"photo_url" bun:"photo_url"`
	PurchaseDate  *string          `json:"purchase_date"  bun:"purchase_date"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" bun:"purchase_price"`
}
