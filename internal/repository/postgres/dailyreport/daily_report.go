package dailyreport

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"bizops/backend/foundation/web"
	"bizops/backend/internal/auth"
	"bizops/backend/internal/entity"
	"bizops/backend/internal/pkg/repository/postgresql"
	"bizops/backend/internal/repository/postgres"
	"bizops/backend/internal/repository/postgres/attendance"
	"bizops/backend/internal/service/period"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// DefaultOpeningBalance applies the carry-forward policy: a normal shift
// inherits the previous shift's closing balance, a down or relive shift
// starts from zero. The caller may still override the default.
func DefaultOpeningBalance(liveStatus string, prevClosing decimal.Decimal) decimal.Decimal {
	if liveStatus == entity.LiveStatusNormal {
		return prevClosing
	}
	return decimal.Zero
}

// DeriveClosing is the default closing balance when the submitter leaves it
// blank.
func DeriveClosing(opening, totalSales decimal.Decimal) decimal.Decimal {
	return opening.Add(totalSales)
}

// ValidateSales rejects a shift where the counter went backwards.
func ValidateSales(starting, ending decimal.Decimal) error {
	if ending.LessThan(starting) {
		return web.NewValidationError(errors.New("ending sales lower than starting sales"), http.StatusBadRequest, map[string]string{
			"ending_sales": "must be greater than or equal to starting_sales",
		})
	}
	return nil
}

// PreviousClosing resolves the prefill for the opening balance: the closing
// balance of the previous shift for the same group, zero when that shift was
// never reported.
func (r Repository) PreviousClosing(ctx context.Context, request PreviousClosingRequest) (PreviousClosingResponse, error) {
	if _, err := r.CheckClaims(ctx); err != nil {
		return PreviousClosingResponse{}, err
	}

	if !period.ValidShift(request.Shift) {
		return PreviousClosingResponse{}, web.NewRequestError(errors.New("shift must be 1, 2 or 3"), http.StatusBadRequest)
	}

	reportDate, err := time.Parse("2006-01-02", request.ReportDate)
	if err != nil {
		return PreviousClosingResponse{}, web.NewRequestError(errors.Wrap(err, "parsing report_date"), http.StatusBadRequest)
	}

	prevDate, prevShift := period.PreviousShift(reportDate, request.Shift)

	response := PreviousClosingResponse{
		GroupID:        request.GroupID,
		PrevReportDate: prevDate.Format("2006-01-02"),
		PrevShift:      prevShift,
		ClosingBalance: decimal.Zero,
	}

	var closing decimal.Decimal
	err = r.NewSelect().
		Table("daily_reports").
		Column("closing_balance").
		Where("deleted_at IS NULL AND group_id = ? AND report_date = ? AND shift = ?",
			request.GroupID, response.PrevReportDate, prevShift).
		OrderExpr("created_at desc").
		Limit(1).
		Scan(ctx, &closing)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return PreviousClosingResponse{}, web.NewRequestError(errors.Wrap(err, "selecting previous closing balance"), http.StatusInternalServerError)
	}

	response.ClosingBalance = closing
	response.Found = true
	return response, nil
}

// Submit runs the shift reconciliation workflow: validate the sales figures,
// derive totals and balance defaults, then write the report row and close the
// submitter's open attendance record for the day in one transaction.
func (r Repository) Submit(ctx context.Context, request SubmitRequest) (SubmitResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return SubmitResponse{}, err
	}

	if err := r.ValidateStruct(&request,
		"ReportDate", "Shift", "GroupID", "DeviceID", "AccountID", "LiveStatus", "StartingSales", "EndingSales"); err != nil {
		return SubmitResponse{}, err
	}

	reportDate, err := time.Parse("2006-01-02", *request.ReportDate)
	if err != nil {
		return SubmitResponse{}, web.NewRequestError(errors.Wrap(err, "parsing report_date"), http.StatusBadRequest)
	}
	if !period.ValidShift(*request.Shift) {
		return SubmitResponse{}, web.NewValidationError(errors.New("invalid shift"), http.StatusBadRequest, map[string]string{
			"shift": "must be 1, 2 or 3",
		})
	}
	if !entity.ValidLiveStatus(*request.LiveStatus) {
		return SubmitResponse{}, web.NewValidationError(errors.New("invalid live status"), http.StatusBadRequest, map[string]string{
			"live_status": "must be one of normal, down, relive",
		})
	}

	if err := ValidateSales(*request.StartingSales, *request.EndingSales); err != nil {
		return SubmitResponse{}, err
	}

	totalSales := request.EndingSales.Sub(*request.StartingSales)

	opening := decimal.Zero
	if request.OpeningBalance != nil {
		opening = *request.OpeningBalance
	} else {
		prev, err := r.PreviousClosing(ctx, PreviousClosingRequest{
			GroupID:    *request.GroupID,
			ReportDate: *request.ReportDate,
			Shift:      *request.Shift,
		})
		if err != nil {
			return SubmitResponse{}, err
		}
		opening = DefaultOpeningBalance(*request.LiveStatus, prev.ClosingBalance)
	}

	closing := DeriveClosing(opening, totalSales)
	if request.ClosingBalance != nil {
		closing = *request.ClosingBalance
	}

	now := time.Now()
	report := entity.DailyReport{
		EmployeeID:      &claims.UserId,
		ReportDate:      request.ReportDate,
		Shift:           request.Shift,
		GroupID:         request.GroupID,
		DeviceID:        request.DeviceID,
		AccountID:       request.AccountID,
		ProductCategory: request.ProductCategory,
		LiveStatus:      request.LiveStatus,
		StartingSales:   request.StartingSales,
		EndingSales:     request.EndingSales,
		TotalSales:      &totalSales,
		OpeningBalance:  &opening,
		ClosingBalance:  &closing,
		TotalRevenue:    request.TotalRevenue,
		GrossCommission: request.GrossCommission,
		Notes:           request.Notes,
	}
	report.CreatedAt = now
	report.CreatedBy = &claims.UserId

	response := SubmitResponse{
		EmployeeID:     claims.UserId,
		ReportDate:     reportDate.Format("2006-01-02"),
		Shift:          *request.Shift,
		TotalSales:     totalSales,
		OpeningBalance: opening,
		ClosingBalance: closing,
	}

	// The report row and the attendance clock-out land together or not at
	// all. The unique (employee_id, report_date, shift) index rejects a
	// duplicate submission inside the same transaction.
	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&report).Returning("id").Exec(ctx, &report.ID); err != nil {
			return web.NewRequestError(errors.Wrap(err, "inserting daily report"), http.StatusBadRequest)
		}
		response.ID = report.ID

		var attend entity.Attendance
		err := tx.NewSelect().Model(&attend).
			Where("deleted_at IS NULL AND employee_id = ? AND work_day = ?",
				claims.UserId, reportDate.Format("2006-01-02")).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			// No clock-in that day: nothing to reconcile.
			return nil
		}
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "selecting attendance for reconciliation"), http.StatusInternalServerError)
		}

		if attend.ClockOut != nil || attend.ClockIn == nil {
			// An existing clock-out is never overwritten.
			return nil
		}

		duration := attendance.DurationMinutes(*attend.ClockIn, now)

		if _, err := tx.NewUpdate().Table("attendance").
			Where("deleted_at IS NULL AND id = ? AND clock_out IS NULL", attend.ID).
			Set("clock_out = ?", now).
			Set("duration_minutes = ?", duration).
			Set("updated_at = ?", now).
			Set("updated_by = ?", claims.UserId).
			Exec(ctx); err != nil {
			return web.NewRequestError(errors.Wrap(err, "closing attendance with report"), http.StatusInternalServerError)
		}

		response.AttendanceClose = &AttendanceClose{
			AttendanceID:    attend.ID,
			ClockOut:        now,
			DurationMinutes: duration,
		}
		return nil
	})
	if err != nil {
		return SubmitResponse{}, err
	}

	return response, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE r.deleted_at IS NULL`

	// Staff only see their own reports; privileged roles see everything.
	if !auth.CanAccess(claims.Role, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer) {
		whereQuery += fmt.Sprintf(` AND r.employee_id = %d`, claims.UserId)
	} else if filter.EmployeeID != nil {
		whereQuery += fmt.Sprintf(` AND r.employee_id = %d`, *filter.EmployeeID)
	}
	if filter.GroupID != nil {
		whereQuery += fmt.Sprintf(` AND r.group_id = %d`, *filter.GroupID)
	}
	if filter.Shift != nil {
		whereQuery += fmt.Sprintf(` AND r.shift = %d`, *filter.Shift)
	}
	if filter.DateFrom != nil {
		from, err := time.Parse("2006-01-02", *filter.DateFrom)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "parsing date_from"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND r.report_date >= '%s'`, from.Format("2006-01-02"))
	}
	if filter.DateTo != nil {
		to, err := time.Parse("2006-01-02", *filter.DateTo)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "parsing date_to"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND r.report_date <= '%s'`, to.Format("2006-01-02"))
	}

	orderQuery := "ORDER BY r.report_date desc, r.shift desc"

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
			r.id,
			r.employee_id,
			u.full_name,
			r.report_date,
			r.shift,
			r.group_id,
			g.name,
			r.account_id,
			a.username,
			r.device_id,
			r.product_category,
			r.live_status,
			r.starting_sales,
			r.ending_sales,
			r.total_sales,
			r.opening_balance,
			r.closing_balance,
			r.total_revenue,
			r.gross_commission,
			r.notes
		FROM daily_reports r
		LEFT JOIN users u ON r.employee_id = u.id
		LEFT JOIN groups g ON r.group_id = g.id
		LEFT JOIN accounts a ON r.account_id = a.id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting daily reports"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		var reportDateString string

		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.FullName,
			&reportDateString,
			&detail.Shift,
			&detail.GroupID,
			&detail.Group,
			&detail.AccountID,
			&detail.Account,
			&detail.DeviceID,
			&detail.ProductCategory,
			&detail.LiveStatus,
			&detail.StartingSales,
			&detail.EndingSales,
			&detail.TotalSales,
			&detail.OpeningBalance,
			&detail.ClosingBalance,
			&detail.TotalRevenue,
			&detail.GrossCommission,
			&detail.Notes,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning daily report list"), http.StatusInternalServerError)
		}

		reportDate, err := date.ParseDate(reportDateString)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "parsing report_date"), http.StatusInternalServerError)
		}
		detail.ReportDate = &reportDate

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT count(r.id)
		FROM daily_reports r
		LEFT JOIN users u ON r.employee_id = u.id
		LEFT JOIN groups g ON r.group_id = g.id
		LEFT JOIN accounts a ON r.account_id = a.id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting daily reports"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.DailyReport, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.DailyReport{}, err
	}

	var detail entity.DailyReport
	err = r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.DailyReport{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.DailyReport{}, web.NewRequestError(errors.Wrap(err, "selecting daily report"), http.StatusInternalServerError)
	}

	if !auth.CanAccess(claims.Role, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer) {
		if detail.EmployeeID == nil || *detail.EmployeeID != claims.UserId {
			return entity.DailyReport{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
		}
	}

	return detail, nil
}

// SalesTrend returns per-day sales totals for a month, feeding the dashboard
// chart.
func (r Repository) SalesTrend(ctx context.Context, start, end time.Time) ([]SalesTrendRow, error) {
	if _, err := r.CheckClaims(ctx); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT report_date, COALESCE(SUM(total_sales), 0)
		FROM daily_reports
		WHERE deleted_at IS NULL AND report_date BETWEEN '%s' AND '%s'
		GROUP BY report_date
		ORDER BY report_date
	`, start.Format("2006-01-02"), end.Format("2006-01-02"))

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting sales trend"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []SalesTrendRow
	for rows.Next() {
		var row SalesTrendRow
		if err = rows.Scan(&row.ReportDate, &row.TotalSales); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning sales trend"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}
