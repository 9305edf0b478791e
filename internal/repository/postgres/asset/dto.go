package asset

import "github.com/shopspring/decimal"

type Filter struct {
	Limit    *int
	Offset   *int
	Page     *int
	Search   *string
	Category *string
}

type GetListResponse struct {
	ID            int              `json:"id"`
	AssetName     *string          `json:"asset_name"`
	Category      *string          `json:"category"`
	Condition     *string          `json:"condition"`
	Quantity      *int             `json:"quantity"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	TotalValue    *decimal.Decimal `json:"total_value"`
	PhotoUrl      *string          `json:"photo_url"`
}

type CreateRequest struct {
	AssetName     *string          `json:"asset_name"`
	Category      *string          `json:"category"`
	Condition     *string          `json:"condition"`
	Quantity      *int             `json:"quantity"`
	PurchaseDate  *string          `json:"purchase_date"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	TotalValue    *decimal.Decimal `json:"total_value"`
	Description   *string          `json:"description"`
}

type UpdateRequest struct {
	ID            int              `json:"id"`
	AssetName     *string          `json:"asset_name"`
	Category      *string          `json:"category"`
	Condition     *string          `json:"condition"`
	Quantity      *int             `json:"quantity"`
	PurchaseDate  *string          `json:"purchase_date"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	TotalValue    *decimal.Decimal `json:"total_value"`
	PhotoUrl      *string          `json:"photo_url"`
	Description   *string          `json:"description"`
}
