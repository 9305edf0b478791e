package entity

import (
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Asset struct {
	bun.BaseModel `bun:"table:assets"`

	BasicEntity
	AssetName     *string          `json:"asset_name"  bun:"asset_name"`
	Category      *string          `json:"category"    bun:"category"`
	Condition     *string          `json:"condition"   bun:"condition"`
	Quantity      *int             `json:"quantity"    bun:"quantity"`
	PurchaseDate  *string          `json:"purchase_date"  bun:"purchase_date"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" bun:"purchase_price"`
	TotalValue    *decimal.Decimal `json:"total_value" bun:"total_value"`
	PhotoUrl      *string          `json:"photo_url"   bun:"photo_url"`
	Description   *string          `json:"description" bun:"description"`
}
