package commission

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
	"bizops/backend/internal/service/period"
	"bizops/backend/internal/service/summary"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// ValidateAmounts enforces the ordering gross >= net >= disbursed. A nil
// amount is treated as zero. Returns field errors keyed for the client.
func ValidateAmounts(gross, net, disbursed *decimal.Decimal) map[string]string {
	z := decimal.Zero
	g, n, d := &z, &z, &z
	if gross != nil {
		g = gross
	}
	if net != nil {
		n = net
	}
	if disbursed != nil {
		d = disbursed
	}

	fields := map[string]string{}
	if g.IsNegative() {
		fields["gross_commission"] = "must not be negative"
	}
	if n.IsNegative() {
		fields["net_commission"] = "must not be negative"
	}
	if d.IsNegative() {
		fields["disbursed_commission"] = "must not be negative"
	}
	if n.GreaterThan(*g) {
		fields["net_commission"] = "must not exceed gross_commission"
	}
	if d.GreaterThan(*n) {
		fields["disbursed_commission"] = "must not exceed net_commission"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE c.deleted_at IS NULL`

	// Staff only ever see their own commissions.
	if !auth.CanAccess(claims.Role, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer) {
		whereQuery += fmt.Sprintf(` AND c.employee_id = %d`, claims.UserId)
	} else if filter.EmployeeID != nil {
		whereQuery += fmt.Sprintf(` AND c.employee_id = %d`, *filter.EmployeeID)
	}
	if filter.GroupID != nil {
		whereQuery += fmt.Sprintf(` AND c.group_id = %d`, *filter.GroupID)
	}
	if filter.AccountID != nil {
		whereQuery += fmt.Sprintf(` AND c.account_id = %d`, *filter.AccountID)
	}
	if filter.PeriodWeek != nil {
		week := strings.Replace(*filter.PeriodWeek, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND c.period_week = '%s'`, week)
	}
	if filter.PeriodMonth != nil {
		whereQuery += fmt.Sprintf(` AND c.period_month = %d`, *filter.PeriodMonth)
	}
	if filter.PeriodYear != nil {
		whereQuery += fmt.Sprintf(` AND c.period_year = %d`, *filter.PeriodYear)
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
			c.id,
			c.account_id,
			a.username,
			c.employee_id,
			u.full_name,
			c.group_id,
			g.name,
			c.commission_date,
			c.period_week,
			c.period_month,
			c.period_year,
			c.gross_commission,
			c.net_commission,
			c.disbursed_commission,
			c.disbursement_date
		FROM commissions c
		LEFT JOIN accounts a ON c.account_id = a.id
		LEFT JOIN users u ON c.employee_id = u.id
		LEFT JOIN groups g ON c.group_id = g.id
		%s
		ORDER BY c.commission_date desc, c.id desc
		%s %s
	`, whereQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting commissions"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.AccountID,
			&detail.AccountUsername,
			&detail.EmployeeID,
			&detail.Employee,
			&detail.GroupID,
			&detail.Group,
			&detail.CommissionDate,
			&detail.PeriodWeek,
			&detail.PeriodMonth,
			&detail.PeriodYear,
			&detail.GrossCommission,
			&detail.NetCommission,
			&detail.DisbursedCommission,
			&detail.DisbursementDate,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning commission list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT count(c.id)
		FROM commissions c
		LEFT JOIN accounts a ON c.account_id = a.id
		LEFT JOIN users u ON c.employee_id = u.id
		LEFT JOIN groups g ON c.group_id = g.id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting commissions"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Commission, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.Commission{}, err
	}

	var detail entity.Commission
	err = r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Commission{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Commission{}, web.NewRequestError(errors.Wrap(err, "selecting commission"), http.StatusInternalServerError)
	}

	if !auth.CanAccess(claims.Role, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer) {
		if detail.EmployeeID == nil || *detail.EmployeeID != claims.UserId {
			return entity.Commission{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
		}
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.Commission, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return entity.Commission{}, err
	}

	if err := r.ValidateStruct(&request, "EmployeeID", "CommissionDate", "GrossCommission"); err != nil {
		return entity.Commission{}, err
	}

	commissionDate, err := time.Parse("2006-01-02", *request.CommissionDate)
	if err != nil {
		return entity.Commission{}, web.NewValidationError(
			errors.New("commission_date must be YYYY-MM-DD"), http.StatusBadRequest,
			map[string]string{"commission_date": "invalid date"})
	}

	if fields := ValidateAmounts(request.GrossCommission, request.NetCommission, request.DisbursedCommission); fields != nil {
		return entity.Commission{}, web.NewValidationError(errors.New("invalid commission amounts"), http.StatusBadRequest, fields)
	}

	// Period buckets derive from the commission date unless the caller pins
	// the week explicitly.
	week := period.WeekBucket(commissionDate)
	if request.PeriodWeek != nil {
		week = *request.PeriodWeek
	}
	month := int(commissionDate.Month())
	year := commissionDate.Year()

	commission := entity.Commission{
		AccountID:           request.AccountID,
		EmployeeID:          request.EmployeeID,
		GroupID:             request.GroupID,
		CommissionDate:      request.CommissionDate,
		PeriodWeek:          &week,
		PeriodMonth:         &month,
		PeriodYear:          &year,
		GrossCommission:     request.GrossCommission,
		NetCommission:       request.NetCommission,
		DisbursedCommission: request.DisbursedCommission,
		DisbursementDate:    request.DisbursementDate,
		CommissionRate:      request.CommissionRate,
		Notes:               request.Notes,
	}
	commission.CreatedAt = time.Now()
	commission.CreatedBy = &claims.UserId

	if _, err = r.NewInsert().Model(&commission).Returning("id").Exec(ctx, &commission.ID); err != nil {
		return entity.Commission{}, web.NewRequestError(errors.Wrap(err, "creating commission"), http.StatusBadRequest)
	}

	return commission, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	var existing entity.Commission
	err = r.NewSelect().Model(&existing).Where("deleted_at IS NULL AND id = ?", request.ID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting commission"), http.StatusInternalServerError)
	}

	// Ordering is checked against the merged row so a partial update cannot
	// break gross >= net >= disbursed.
	gross := existing.GrossCommission
	if request.GrossCommission != nil {
		gross = request.GrossCommission
	}
	net := existing.NetCommission
	if request.NetCommission != nil {
		net = request.NetCommission
	}
	disbursed := existing.DisbursedCommission
	if request.DisbursedCommission != nil {
		disbursed = request.DisbursedCommission
	}
	if fields := ValidateAmounts(gross, net, disbursed); fields != nil {
		return web.NewValidationError(errors.New("invalid commission amounts"), http.StatusBadRequest, fields)
	}

	q := r.NewUpdate().Table("commissions").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.AccountID != nil {
		q.Set("account_id = ?", *request.AccountID)
	}
	if request.GroupID != nil {
		q.Set("group_id = ?", *request.GroupID)
	}
	if request.GrossCommission != nil {
		q.Set("gross_commission = ?", *request.GrossCommission)
	}
	if request.NetCommission != nil {
		q.Set("net_commission = ?", *request.NetCommission)
	}
	if request.DisbursedCommission != nil {
		q.Set("disbursed_commission = ?", *request.DisbursedCommission)
	}
	if request.DisbursementDate != nil {
		q.Set("disbursement_date = ?", *request.DisbursementDate)
	}
	if request.CommissionRate != nil {
		q.Set("commission_rate = ?", *request.CommissionRate)
	}
	if request.Notes != nil {
		q.Set("notes = ?", *request.Notes)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating commission"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "commissions", id)
}

// MonthSummary folds a month's commissions into totals.
func (r Repository) MonthSummary(ctx context.Context, month, year int) (summary.CommissionSummary, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer); err != nil {
		return summary.CommissionSummary{}, err
	}

	rows, err := r.monthRows(ctx, month, year)
	if err != nil {
		return summary.CommissionSummary{}, err
	}
	return summary.Summarize(rows), nil
}

func (r Repository) monthRows(ctx context.Context, month, year int) ([]summary.CommissionRow, error) {
	query := fmt.Sprintf(`
		SELECT
			coalesce(c.gross_commission, 0),
			coalesce(c.net_commission, 0),
			coalesce(c.disbursed_commission, 0)
		FROM commissions c
		WHERE c.deleted_at IS NULL AND c.period_month = %d AND c.period_year = %d
	`, month, year)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting month commissions"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []summary.CommissionRow
	for rows.Next() {
		var row summary.CommissionRow
		if err = rows.Scan(&row.Gross, &row.Net, &row.Disbursed); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning month commissions"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}

// GetExportRows pulls a month's commissions for the excel export.
func (r Repository) GetExportRows(ctx context.Context, month, year int) ([]ExportRow, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			coalesce(u.full_name, ''),
			coalesce(g.name, ''),
			coalesce(a.username, ''),
			coalesce(c.commission_date::text, ''),
			coalesce(c.period_week, ''),
			coalesce(c.gross_commission, 0),
			coalesce(c.net_commission, 0),
			coalesce(c.disbursed_commission, 0)
		FROM commissions c
		LEFT JOIN users u ON c.employee_id = u.id
		LEFT JOIN groups g ON c.group_id = g.id
		LEFT JOIN accounts a ON c.account_id = a.id
		WHERE c.deleted_at IS NULL AND c.period_month = %d AND c.period_year = %d
		ORDER BY u.full_name, c.commission_date
	`, month, year)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting commission export"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []ExportRow
	for rows.Next() {
		var row ExportRow
		if err = rows.Scan(
			&row.Employee,
			&row.Group,
			&row.AccountUsername,
			&row.CommissionDate,
			&row.PeriodWeek,
			&row.Gross,
			&row.Net,
			&row.Disbursed,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning commission export"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}

// GetStatementRows pulls one employee's commissions for the monthly pdf
// statement. Staff may only request their own statement.
func (r Repository) GetStatementRows(ctx context.Context, employeeID, month, year int) (string, []StatementRow, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return "", nil, err
	}
	if !auth.CanAccess(claims.Role, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer) && claims.UserId != employeeID {
		return "", nil, web.NewRequestError(errors.New("forbidden"), http.StatusForbidden)
	}

	fullName := ""
	nameQuery := fmt.Sprintf(`SELECT coalesce(full_name, '') FROM users WHERE deleted_at IS NULL AND id = %d`, employeeID)
	if err = r.QueryRowContext(ctx, nameQuery).Scan(&fullName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
		}
		return "", nil, web.NewRequestError(errors.Wrap(err, "selecting employee"), http.StatusInternalServerError)
	}

	query := fmt.Sprintf(`
		SELECT
			coalesce(c.commission_date::text, ''),
			coalesce(c.period_week, ''),
			coalesce(a.username, ''),
			coalesce(c.gross_commission, 0),
			coalesce(c.net_commission, 0),
			coalesce(c.disbursed_commission, 0)
		FROM commissions c
		LEFT JOIN accounts a ON c.account_id = a.id
		WHERE c.deleted_at IS NULL AND c.employee_id = %d AND c.period_month = %d AND c.period_year = %d
		ORDER BY c.commission_date
	`, employeeID, month, year)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return "", nil, web.NewRequestError(errors.Wrap(err, "selecting commission statement"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []StatementRow
	for rows.Next() {
		var row StatementRow
		if err = rows.Scan(
			&row.CommissionDate,
			&row.PeriodWeek,
			&row.AccountUsername,
			&row.Gross,
			&row.Net,
			&row.Disbursed,
		); err != nil {
			return "", nil, web.NewRequestError(errors.Wrap(err, "scanning commission statement"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return fullName, list, nil
}
