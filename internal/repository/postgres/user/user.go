package user

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
	"golang.org/x/crypto/bcrypt"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusResigned = "resigned"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByEmail is the sign-in lookup. The distinct message for an unknown
// account is mapped by the auth controller, raw db errors never reach the
// client.
func (r Repository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).
		Where("deleted_at IS NULL AND lower(email) = lower(?)", email).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, &web.Error{
			Err:    errors.New("account not found"),
			Status: http.StatusUnauthorized,
		}
	}
	if err != nil {
		return entity.User{}, web.NewRequestError(errors.Wrap(err, "selecting user by email"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.User, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return entity.User{}, err
	}

	// Staff may read their own profile, everything else needs a privileged
	// role.
	if id != claims.UserId && !auth.CanAccess(claims.Role, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer) {
		return entity.User{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
	}

	var detail entity.User
	err = r.NewSelect().Model(&detail).Where("deleted_at IS NULL AND id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.User{}, web.NewRequestError(errors.Wrap(err, "selecting user"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE u.deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (u.full_name ilike '%s' OR u.email ilike '%s')`,
			"%"+search+"%", "%"+search+"%")
	}
	if filter.Role != nil {
		role := strings.Replace(*filter.Role, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND u.role = '%s'`, role)
	}
	if filter.Status != nil {
		status := strings.Replace(*filter.Status, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND u.status = '%s'`, status)
	}
	if filter.GroupID != nil {
		whereQuery += fmt.Sprintf(` AND u.group_id = %d`, *filter.GroupID)
	}

	orderQuery := "ORDER BY u.created_at desc"

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
			u.id,
			u.email,
			u.full_name,
			u.role,
			u.job_position,
			u.status,
			u.group_id,
			g.name,
			u.phone_number
		FROM users u
		LEFT JOIN groups g ON u.group_id = g.id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Email,
			&detail.FullName,
			&detail.Role,
			&detail.JobPosition,
			&detail.Status,
			&detail.GroupID,
			&detail.Group,
			&detail.PhoneNumber,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT count(u.id)
		FROM users u
		LEFT JOIN groups g ON u.group_id = g.id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting users"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Email", "Password", "FullName", "Role"); err != nil {
		return CreateResponse{}, err
	}

	role := strings.ToUpper(*request.Role)
	if !auth.ValidRole(role) {
		return CreateResponse{}, web.NewValidationError(errors.New("invalid role"), http.StatusBadRequest, map[string]string{
			"role": "must be one of SUPERADMIN, LEADER, ADMIN, STAFF, VIEWER",
		})
	}

	emailTaken := false
	if err := r.NewSelect().Table("users").
		ColumnExpr("count(id) > 0").
		Where("deleted_at IS NULL AND lower(email) = lower(?)", *request.Email).
		Scan(ctx, &emailTaken); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "checking email"), http.StatusInternalServerError)
	}
	if emailTaken {
		return CreateResponse{}, web.NewRequestError(errors.New("email is already used"), http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashedPassword := string(hash)
	status := StatusActive
	now := time.Now()

	user := entity.User{
		Email:       request.Email,
		Password:    &hashedPassword,
		FullName:    request.FullName,
		Role:        &role,
		JobPosition: request.JobPosition,
		Status:      &status,
		GroupID:     request.GroupID,
		PhoneNumber: request.PhoneNumber,
		Address:     request.Address,
	}
	user.CreatedAt = now
	user.CreatedBy = &claims.UserId

	if _, err = r.NewInsert().Model(&user).Returning("id").Exec(ctx, &user.ID); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusBadRequest)
	}

	return CreateResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        user.Role,
		JobPosition: user.JobPosition,
		GroupID:     user.GroupID,
		CreatedAt:   now,
	}, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	selfEdit := request.ID == claims.UserId
	if !selfEdit && !auth.CanAccess(claims.Role, auth.RoleAdmin, auth.RoleLeader) {
		return web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
	}

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Email != nil {
		q.Set("email = ?", *request.Email)
	}
	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", string(hash))
	}
	if request.FullName != nil {
		q.Set("full_name = ?", *request.FullName)
	}
	if request.JobPosition != nil {
		q.Set("job_position = ?", *request.JobPosition)
	}
	if request.PhoneNumber != nil {
		q.Set("phone_number = ?", *request.PhoneNumber)
	}
	if request.Address != nil {
		q.Set("address = ?", *request.Address)
	}
	if request.AvatarUrl != nil {
		q.Set("avatar_url = ?", *request.AvatarUrl)
	}

	// Role and status changes are never a self-service operation.
	if request.Role != nil {
		if selfEdit && !auth.CanAccess(claims.Role, auth.RoleAdmin) {
			return web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
		}
		role := strings.ToUpper(*request.Role)
		if !auth.ValidRole(role) {
			return web.NewValidationError(errors.New("invalid role"), http.StatusBadRequest, map[string]string{
				"role": "must be one of SUPERADMIN, LEADER, ADMIN, STAFF, VIEWER",
			})
		}
		q.Set("role = ?", role)
	}
	if request.Status != nil {
		if *request.Status != StatusActive && *request.Status != StatusInactive && *request.Status != StatusResigned {
			return web.NewValidationError(errors.New("invalid status"), http.StatusBadRequest, map[string]string{
				"status": "must be one of active, inactive, resigned",
			})
		}
		if !auth.CanAccess(claims.Role, auth.RoleAdmin, auth.RoleLeader) {
			return web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
		}
		q.Set("status = ?", *request.Status)
	}
	if request.GroupID != nil {
		q.Set("group_id = ?", *request.GroupID)
	}

	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusBadRequest)
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

// Resign marks the employee resigned. Profiles are never hard-deleted.
func (r Repository) Resign(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	res, err := r.NewUpdate().Table("users").
		Where("deleted_at IS NULL AND id = ?", id).
		Set("status = ?", StatusResigned).
		Set("updated_at = ?", time.Now()).
		Set("updated_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "resigning user"), http.StatusBadRequest)
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

// GetExportRows feeds the employee excel export.
func (r Repository) GetExportRows(ctx context.Context) ([]ExportRow, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			u.id,
			u.email,
			u.full_name,
			u.role,
			COALESCE(u.job_position, ''),
			COALESCE(u.status, ''),
			COALESCE(g.name, ''),
			COALESCE(u.phone_number, '')
		FROM users u
		LEFT JOIN groups g ON u.group_id = g.id
		WHERE u.deleted_at IS NULL
		ORDER BY u.full_name
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting export users"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []ExportRow
	for rows.Next() {
		var row ExportRow
		if err = rows.Scan(
			&row.ID,
			&row.Email,
			&row.FullName,
			&row.Role,
			&row.JobPosition,
			&row.Status,
			&row.Group,
			&row.PhoneNumber,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning export users"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}
