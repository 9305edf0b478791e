package cashflow

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

func (r Repository) buildWhere(filter Filter) string {
	whereQuery := `WHERE c.deleted_at IS NULL`

	if filter.Type != nil {
		t := strings.Replace(*filter.Type, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND c.type = '%s'`, t)
	}
	if filter.Category != nil {
		category := strings.Replace(*filter.Category, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND c.category = '%s'`, category)
	}
	if filter.GroupID != nil {
		whereQuery += fmt.Sprintf(` AND c.group_id = %d`, *filter.GroupID)
	}
	if filter.DateFrom != nil {
		from := strings.Replace(*filter.DateFrom, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND c.transaction_date >= '%s'`, from)
	}
	if filter.DateTo != nil {
		to := strings.Replace(*filter.DateTo, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND c.transaction_date <= '%s'`, to)
	}

	return whereQuery
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := r.buildWhere(filter)

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
			c.id,
			c.transaction_date,
			c.type,
			c.category,
			c.amount,
			c.description,
			c.group_id,
			g.name,
			c.proof_link
		FROM cashflow c
		LEFT JOIN groups g ON c.group_id = g.id
		%s
		ORDER BY c.transaction_date desc, c.id desc
		%s %s
	`, whereQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting cashflow"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.TransactionDate,
			&detail.Type,
			&detail.Category,
			&detail.Amount,
			&detail.Description,
			&detail.GroupID,
			&detail.Group,
			&detail.ProofLink,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning cashflow list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT count(c.id)
		FROM cashflow c
		LEFT JOIN groups g ON c.group_id = g.id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting cashflow"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// GetTotals sums income and expense over the same filter as GetList.
func (r Repository) GetTotals(ctx context.Context, filter Filter) (Totals, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return Totals{}, err
	}

	whereQuery := r.buildWhere(filter)

	query := fmt.Sprintf(`
		SELECT
			coalesce(sum(c.amount) FILTER (WHERE c.type = 'income'), 0),
			coalesce(sum(c.amount) FILTER (WHERE c.type = 'expense'), 0)
		FROM cashflow c
		%s
	`, whereQuery)

	var totals Totals
	if err = r.QueryRowContext(ctx, query).Scan(&totals.Income, &totals.Expense); err != nil {
		return Totals{}, web.NewRequestError(errors.Wrap(err, "summing cashflow"), http.StatusInternalServerError)
	}
	totals.Net = totals.Income.Sub(totals.Expense)

	return totals, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Cashflow, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader); err != nil {
		return entity.Cashflow{}, err
	}

	var detail entity.Cashflow
	err := r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Cashflow{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Cashflow{}, web.NewRequestError(errors.Wrap(err, "selecting cashflow row"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.Cashflow, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return entity.Cashflow{}, err
	}

	if err := r.ValidateStruct(&request, "TransactionDate", "Type", "Amount"); err != nil {
		return entity.Cashflow{}, err
	}

	if !entity.ValidCashflowType(*request.Type) {
		return entity.Cashflow{}, web.NewValidationError(
			errors.New("type must be income or expense"), http.StatusBadRequest,
			map[string]string{"type": "invalid value"})
	}
	if request.Amount.IsNegative() {
		return entity.Cashflow{}, web.NewValidationError(
			errors.New("amount must not be negative"), http.StatusBadRequest,
			map[string]string{"amount": "must not be negative"})
	}

	row := entity.Cashflow{
		TransactionDate: request.TransactionDate,
		Type:            request.Type,
		Category:        request.Category,
		Amount:          request.Amount,
		Description:     request.Description,
		GroupID:         request.GroupID,
		ProofLink:       request.ProofLink,
	}
	row.CreatedAt = time.Now()
	row.CreatedBy = &claims.UserId

	if _, err = r.NewInsert().Model(&row).Returning("id").Exec(ctx, &row.ID); err != nil {
		return entity.Cashflow{}, web.NewRequestError(errors.Wrap(err, "creating cashflow row"), http.StatusBadRequest)
	}

	return row, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	if request.Type != nil && !entity.ValidCashflowType(*request.Type) {
		return web.NewValidationError(
			errors.New("type must be income or expense"), http.StatusBadRequest,
			map[string]string{"type": "invalid value"})
	}
	if request.Amount != nil && request.Amount.IsNegative() {
		return web.NewValidationError(
			errors.New("amount must not be negative"), http.StatusBadRequest,
			map[string]string{"amount": "must not be negative"})
	}

	q := r.NewUpdate().Table("cashflow").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.TransactionDate != nil {
		q.Set("transaction_date = ?", *request.TransactionDate)
	}
	if request.Type != nil {
		q.Set("type = ?", *request.Type)
	}
	if request.Category != nil {
		q.Set("category = ?", *request.Category)
	}
	if request.Amount != nil {
		q.Set("amount = ?", *request.Amount)
	}
	if request.Description != nil {
		q.Set("description = ?", *request.Description)
	}
	if request.GroupID != nil {
		q.Set("group_id = ?", *request.GroupID)
	}
	if request.ProofLink != nil {
		q.Set("proof_link = ?", *request.ProofLink)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating cashflow row"), http.StatusBadRequest)
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
	return r.DeleteRow(ctx, "cashflow", id)
}
