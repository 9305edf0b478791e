package device

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

	whereQuery := `WHERE d.deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (d.device_id ilike '%s' OR d.imei ilike '%s')`,
			"%"+search+"%", "%"+search+"%")
	}
	if filter.GroupID != nil {
		whereQuery += fmt.Sprintf(` AND d.group_id = %d`, *filter.GroupID)
	}
	if filter.Status != nil {
		status := strings.Replace(*filter.Status, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND d.status = '%s'`, status)
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
			d.id,
			d.device_id,
			d.imei,
			d.brand,
			d.model,
			d.group_id,
			g.name,
			d.status,
			d.photo_url
		FROM devices d
		LEFT JOIN groups g ON d.group_id = g.id
		%s
		ORDER BY d.created_at desc
		%s %s
	`, whereQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting devices"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.DeviceID,
			&detail.Imei,
			&detail.Brand,
			&detail.Model,
			&detail.GroupID,
			&detail.Group,
			&detail.Status,
			&detail.PhotoUrl,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning device list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT count(d.id)
		FROM devices d
		LEFT JOIN groups g ON d.group_id = g.id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting devices"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Device, error) {
	if _, err := r.CheckClaims(ctx); err != nil {
		return entity.Device{}, err
	}

	var detail entity.Device
	err := r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Device{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Device{}, web.NewRequestError(errors.Wrap(err, "selecting device"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.Device, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return entity.Device{}, err
	}

	if err := r.ValidateStruct(&request, "DeviceID", "Imei"); err != nil {
		return entity.Device{}, err
	}

	device := entity.Device{
		DeviceID:      request.DeviceID,
		Imei:          request.Imei,
		Brand:         request.Brand,
		Model:         request.Model,
		GroupID:       request.GroupID,
		GoogleAccount: request.GoogleAccount,
		Status:        request.Status,
		PurchaseDate:  request.PurchaseDate,
		PurchasePrice: request.PurchasePrice,
	}
	device.CreatedAt = time.Now()
	device.CreatedBy = &claims.UserId

	if _, err = r.NewInsert().Model(&device).Returning("id").Exec(ctx, &device.ID); err != nil {
		return entity.Device{}, web.NewRequestError(errors.Wrap(err, "creating device"), http.StatusBadRequest)
	}

	return device, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("devices").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.DeviceID != nil {
		q.Set("device_id = ?", *request.DeviceID)
	}
	if request.Imei != nil {
		q.Set("imei = ?", *request.Imei)
	}
	if request.Brand != nil {
		q.Set("brand = ?", *request.Brand)
	}
	if request.Model != nil {
		q.Set("model = ?", *request.Model)
	}
	if request.GroupID != nil {
		q.Set("group_id = ?", *request.GroupID)
	}
	if request.GoogleAccount != nil {
		q.Set("google_account = ?", *request.GoogleAccount)
	}
	if request.Status != nil {
		q.Set("status = ?", *request.Status)
	}
	if request.PhotoUrl != nil {
		q.Set("photo_url = ?", *request.PhotoUrl)
	}
	if request.PurchaseDate != nil {
		q.Set("purchase_date = ?", *request.PurchaseDate)
	}
	if request.PurchasePrice != nil {
		q.Set("purchase_price = ?", *request.PurchasePrice)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating device"), http.StatusBadRequest)
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
	return r.DeleteRow(ctx, "devices", id)
}
