package device

import "github.com/shopspring/decimal"

type Filter struct {
	Limit   *int
	Offset  *int
	Page    *int
	Search  *string
	GroupID *int
	Status  *string
}

type GetListResponse struct {
	ID       int     `json:"id"`
	DeviceID *string `json:"device_id"`
	Imei     *string `json:"imei"`
	Brand    *string `json:"brand"`
	Model    *string `json:"model"`
	GroupID  *int    `json:"group_id"`
	Group    *string `json:"group"`
	Status   *string `json:"status"`
	PhotoUrl *string `json:"photo_url"`
}

type CreateRequest struct {
	DeviceID      *string          `json:"device_id"`
	Imei          *string          `json:"imei"`
	Brand         *string          `json:"brand"`
	Model         *string          `json:"model"`
	GroupID       *int             `json:"group_id"`
	GoogleAccount *string          `json:"google_account"`
	Status        *string          `json:"status"`
	PurchaseDate  *string          `json:"purchase_date"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
}

type UpdateRequest struct {
	ID            int              `json:"id"`
	DeviceID      *string          `json:"device_id"`
	Imei          *string          `json:"imei"`
	Brand         *string          `json:"brand"`
	Model         *string          `json:"model"`
	GroupID       *int             `json:"group_id"`
	GoogleAccount *string          `json:"google_account"`
	Status        *string          `json:"status"`
	PhotoUrl      *string          `json:"photo_url"`
	PurchaseDate  *string          `json:"purchase_date"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
}
