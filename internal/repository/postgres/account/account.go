package account

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

	whereQuery := `WHERE a.deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (a.username ilike '%s' OR a.email ilike '%s')`,
			"%"+search+"%", "%"+search+"%")
	}
	if filter.Platform != nil {
		platform := strings.Replace(*filter.Platform, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND a.platform = '%s'`, platform)
	}
	if filter.GroupID != nil {
		whereQuery += fmt.Sprintf(` AND a.group_id = %d`, *filter.GroupID)
	}
	if filter.Status != nil {
		status := strings.Replace(*filter.Status, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND a.status = '%s'`, status)
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
			a.platform,
			a.username,
			a.email,
			a.group_id,
			g.name,
			a.status,
			a.profile_link
		FROM accounts a
		LEFT JOIN groups g ON a.group_id = g.id
		%s
		ORDER BY a.created_at desc
		%s %s
	`, whereQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting accounts"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Platform,
			&detail.Username,
			&detail.Email,
			&detail.GroupID,
			&detail.Group,
			&detail.Status,
			&detail.ProfileLink,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning account list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT count(a.id)
		FROM accounts a
		LEFT JOIN groups g ON a.group_id = g.id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting accounts"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Account, error) {
	if _, err := r.CheckClaims(ctx); err != nil {
		return entity.Account{}, err
	}

	var detail entity.Account
	err := r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Account{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Account{}, web.NewRequestError(errors.Wrap(err, "selecting account"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.Account, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return entity.Account{}, err
	}

	if err := r.ValidateStruct(&request, "Platform", "Username"); err != nil {
		return entity.Account{}, err
	}

	account := entity.Account{
		Platform:    request.Platform,
		Username:    request.Username,
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
		GroupID:     request.GroupID,
		Status:      request.Status,
		ProfileLink: request.ProfileLink,
		Notes:       request.Notes,
	}
	account.CreatedAt = time.Now()
	account.CreatedBy = &claims.UserId

	if _, err = r.NewInsert().Model(&account).Returning("id").Exec(ctx, &account.ID); err != nil {
		return entity.Account{}, web.NewRequestError(errors.Wrap(err, "creating account"), http.StatusBadRequest)
	}

	return account, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("accounts").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Platform != nil {
		q.Set("platform = ?", *request.Platform)
	}
	if request.Username != nil {
		q.Set("username = ?", *request.Username)
	}
	if request.Email != nil {
		q.Set("email = ?", *request.Email)
	}
	if request.PhoneNumber != nil {
		q.Set("phone_number = ?", *request.PhoneNumber)
	}
	if request.GroupID != nil {
		q.Set("group_id = ?", *request.GroupID)
	}
	if request.Status != nil {
		q.Set("status = ?", *request.Status)
	}
	if request.ProfileLink != nil {
		q.Set("profile_link = ?", *request.ProfileLink)
	}
	if request.Notes != nil {
		q.Set("notes = ?", *request.Notes)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating account"), http.StatusBadRequest)
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
	return r.DeleteRow(ctx, "accounts", id)
}
