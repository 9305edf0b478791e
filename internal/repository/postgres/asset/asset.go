package asset

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bizops/backend/foundation/web"
	"bizops/backend/internal/auth"
	"bizops/backend/internal/entity"
	"bizops/backend/internal/pkg/repository/postgresql"
	"bizops/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE a.deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND a.asset_name ilike '%s'`, "%"+search+"%")
	}
	if filter.Category != nil {
		category := strings.Replace(*filter.Category, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND a.category = '%s'`, category)
	}

	var limitQuery, offsetQuery string
	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery = fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery = fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			a.id,
			a.asset_name,
			a.category,
			a.condition,
			a.quantity,
			a.purchase_price,
			a.total_value,
			a.photo_url
		FROM assets a
		%s
		ORDER BY a.created_at desc
		%s %s
	`, whereQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting assets"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.AssetName,
			&detail.Category,
			&detail.Condition,
			&detail.Quantity,
			&detail.PurchasePrice,
			&detail.TotalValue,
			&detail.PhotoUrl,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning asset list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(a.id) FROM assets a %s`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting assets"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Asset, error) {
	if _, err := r.CheckClaims(ctx); err != nil {
		return entity.Asset{}, err
	}

	var detail entity.Asset
	err := r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Asset{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Asset{}, web.NewRequestError(errors.Wrap(err, "selecting asset"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.Asset, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return entity.Asset{}, err
	}

	if err := r.ValidateStruct(&request, "AssetName"); err != nil {
		return entity.Asset{}, err
	}

	totalValue := request.TotalValue
	if totalValue == nil && request.Quantity != nil && request.PurchasePrice != nil {
		v := request.PurchasePrice.Mul(decimal.NewFromInt(int64(*request.Quantity)))
		totalValue = &v
	}

	asset := entity.Asset{
		AssetName:     request.AssetName,
		Category:      request.Category,
		Condition:     request.Condition,
		Quantity:      request.Quantity,
		PurchaseDate:  request.PurchaseDate,
		PurchasePrice: request.PurchasePrice,
		TotalValue:    totalValue,
		Description:   request.Description,
	}
	asset.CreatedAt = time.Now()
	asset.CreatedBy = &claims.UserId

	if _, err = r.NewInsert().Model(&asset).Returning("id").Exec(ctx, &asset.ID); err != nil {
		return entity.Asset{}, web.NewRequestError(errors.Wrap(err, "creating asset"), http.StatusBadRequest)
	}

	return asset, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("assets").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.AssetName != nil {
		q.Set("asset_name = ?", *request.AssetName)
	}
	if request.Category != nil {
		q.Set("category = ?", *request.Category)
	}
	if request.Condition != nil {
		q.Set("condition = ?", *request.Condition)
	}
	if request.Quantity != nil {
		q.Set("quantity = ?", *request.Quantity)
	}
	if request.PurchaseDate != nil {
		q.Set("purchase_date = ?", *request.PurchaseDate)
	}
	if request.PurchasePrice != nil {
		q.Set("purchase_price = ?", *request.PurchasePrice)
	}
	if request.TotalValue != nil {
		q.Set("total_value = ?", *request.TotalValue)
	}
	if request.PhotoUrl != nil {
		q.Set("photo_url = ?", *request.PhotoUrl)
	}
	if request.Description != nil {
		q.Set("description = ?", *request.Description)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating asset"), http.StatusBadRequest)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading rows affected"), http.StatusInternalServerError)
	}
	if affected == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "assets", id)
}
