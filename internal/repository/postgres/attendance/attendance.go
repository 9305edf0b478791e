package attendance

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

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// DurationMinutes is the clocked duration between in and out, rounded to the
// nearest minute and never negative.
func DurationMinutes(clockIn, clockOut time.Time) int {
	minutes := int(clockOut.Sub(clockIn).Round(time.Minute) / time.Minute)
	if minutes < 0 {
		return 0
	}
	return minutes
}

// Today returns the caller's attendance record for the current day, or
// ErrNotFound when none exists yet.
func (r Repository) Today(ctx context.Context) (TodayResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return TodayResponse{}, err
	}

	var detail TodayResponse
	today := time.Now().Format("2006-01-02")

	err = r.NewSelect().Model(&detail).
		Where("deleted_at IS NULL AND employee_id = ? AND work_day = ?", claims.UserId, today).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return TodayResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return TodayResponse{}, web.NewRequestError(errors.Wrap(err, "selecting today attendance"), http.StatusInternalServerError)
	}

	return detail, nil
}

// ClockIn is idempotent per (employee, day): a second call on the same day
// returns the existing record untouched.
func (r Repository) ClockIn(ctx context.Context) (ClockInResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return ClockInResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	var existing entity.Attendance
	err = r.NewSelect().Model(&existing).
		Where("deleted_at IS NULL AND employee_id = ? AND work_day = ?", claims.UserId, today).
		Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "checking existing attendance"), http.StatusInternalServerError)
	}
	if err == nil {
		response := ClockInResponse{
			ID:               existing.ID,
			EmployeeID:       claims.UserId,
			WorkDay:          today,
			Status:           entity.AttendancePresent,
			AlreadyClockedIn: true,
		}
		if existing.ClockIn != nil {
			response.ClockIn = *existing.ClockIn
		}
		if existing.Status != nil {
			response.Status = *existing.Status
		}
		return response, nil
	}

	response := ClockInResponse{
		EmployeeID: claims.UserId,
		WorkDay:    today,
		ClockIn:    now,
		Status:     entity.AttendancePresent,
		CreatedAt:  now,
		CreatedBy:  claims.UserId,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return ClockInResponse{}, web.NewRequestError(errors.Wrap(err, "creating attendance"), http.StatusBadRequest)
	}

	return response, nil
}

// ClockOut closes the caller's open attendance record for today. Calling it
// again after the record is closed returns the stored values unchanged.
func (r Repository) ClockOut(ctx context.Context) (ClockOutResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return ClockOutResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	var existing entity.Attendance
	err = r.NewSelect().Model(&existing).
		Where("deleted_at IS NULL AND employee_id = ? AND work_day = ?", claims.UserId, today).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return ClockOutResponse{}, web.NewRequestError(errors.New("no clock-in found for today"), http.StatusBadRequest)
	}
	if err != nil {
		return ClockOutResponse{}, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}

	if existing.ClockOut != nil {
		duration := 0
		if existing.DurationMinutes != nil {
			duration = *existing.DurationMinutes
		}
		return ClockOutResponse{
			ID:                existing.ID,
			EmployeeID:        claims.UserId,
			WorkDay:           today,
			ClockIn:           existing.ClockIn,
			ClockOut:          existing.ClockOut,
			DurationMinutes:   duration,
			AlreadyClockedOut: true,
		}, nil
	}

	if existing.ClockIn == nil {
		return ClockOutResponse{}, web.NewRequestError(errors.New("attendance record has no clock-in"), http.StatusBadRequest)
	}

	duration := DurationMinutes(*existing.ClockIn, now)

	_, err = r.NewUpdate().Table("attendance").
		Where("deleted_at IS NULL AND id = ?", existing.ID).
		Set("clock_out = ?", now).
		Set("duration_minutes = ?", duration).
		Set("updated_at = ?", now).
		Set("updated_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return ClockOutResponse{}, web.NewRequestError(errors.Wrap(err, "updating attendance clock-out"), http.StatusBadRequest)
	}

	return ClockOutResponse{
		ID:              existing.ID,
		EmployeeID:      claims.UserId,
		WorkDay:         today,
		ClockIn:         existing.ClockIn,
		ClockOut:        &now,
		DurationMinutes: duration,
	}, nil
}

// UpdateStatus tags an attendance record present/permission/sick/absent.
func (r Repository) UpdateStatus(ctx context.Context, request UpdateStatusRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID", "Status"); err != nil {
		return err
	}

	if !entity.ValidAttendanceStatus(*request.Status) {
		return web.NewValidationError(errors.New("invalid attendance status"), http.StatusBadRequest, map[string]string{
			"status": "must be one of present, permission, sick, absent",
		})
	}

	q := r.NewUpdate().Table("attendance").
		Where("deleted_at IS NULL AND id = ?", request.ID).
		Set("status = ?", *request.Status).
		Set("updated_at = ?", time.Now()).
		Set("updated_by = ?", claims.UserId)

	if request.Notes != nil {
		q.Set("notes = ?", *request.Notes)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating attendance status"), http.StatusBadRequest)
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

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE a.deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND u.full_name ilike '%s'`, "%"+search+"%")
	}
	if filter.GroupID != nil {
		whereQuery += fmt.Sprintf(` AND u.group_id = %d`, *filter.GroupID)
	}
	if filter.Status != nil {
		status := strings.Replace(*filter.Status, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND a.status = '%s'`, status)
	}
	if filter.Date != nil {
		workDay, err := time.Parse("2006-01-02", *filter.Date)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(` AND a.work_day = '%s'`, workDay.Format("2006-01-02"))
	} else {
		whereQuery += fmt.Sprintf(` AND a.work_day = '%s'`, time.Now().Format("2006-01-02"))
	}

	orderQuery := "ORDER BY a.clock_in desc"

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
			a.employee_id,
			u.full_name,
			u.group_id,
			g.name,
			a.work_day,
			a.clock_in,
			a.clock_out,
			a.duration_minutes,
			a.status,
			a.notes
		FROM attendance a
		LEFT JOIN users u ON a.employee_id = u.id
		LEFT JOIN groups g ON u.group_id = g.id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		var workDayString string

		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.FullName,
			&detail.GroupID,
			&detail.Group,
			&workDayString,
			&detail.ClockIn,
			&detail.ClockOut,
			&detail.DurationMinutes,
			&detail.Status,
			&detail.Notes,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning attendance list"), http.StatusInternalServerError)
		}

		workDay, err := date.ParseDate(workDayString)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "parsing work_day"), http.StatusInternalServerError)
		}
		detail.WorkDay = &workDay

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT count(a.id)
		FROM attendance a
		LEFT JOIN users u ON a.employee_id = u.id
		LEFT JOIN groups g ON u.group_id = g.id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting attendance"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.Attendance, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return entity.Attendance{}, err
	}

	var detail entity.Attendance
	err = r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Attendance{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Attendance{}, web.NewRequestError(errors.Wrap(err, "selecting attendance"), http.StatusInternalServerError)
	}

	return detail, nil
}

// GetMonthRows feeds the excel export with one month of attendance.
func (r Repository) GetMonthRows(ctx context.Context, year int, month time.Month) ([]MonthExportRow, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return nil, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	query := fmt.Sprintf(`
		SELECT
			a.employee_id,
			u.full_name,
			a.work_day,
			a.clock_in,
			a.clock_out,
			a.duration_minutes,
			a.status
		FROM attendance a
		LEFT JOIN users u ON a.employee_id = u.id
		WHERE a.deleted_at IS NULL AND a.work_day BETWEEN '%s' AND '%s'
		ORDER BY a.work_day, u.full_name
	`, start.Format("2006-01-02"), end.Format("2006-01-02"))

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting month attendance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []MonthExportRow
	for rows.Next() {
		var row MonthExportRow
		var fullName sql.NullString
		var status sql.NullString

		if err = rows.Scan(
			&row.EmployeeID,
			&fullName,
			&row.WorkDay,
			&row.ClockIn,
			&row.ClockOut,
			&row.DurationMinutes,
			&status,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning month attendance"), http.StatusInternalServerError)
		}
		row.FullName = fullName.String
		row.Status = status.String
		list = append(list, row)
	}

	return list, nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "attendance", id)
}
