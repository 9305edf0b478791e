package postgresql

import (
	"context"
	"database/sql"
	"net/http"
	"reflect"
	"time"

	"bizops/backend/foundation/web"
	"bizops/backend/internal/auth"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

// Database wraps bun with the claim and validation helpers every repository
// embeds.
type Database struct {
	*bun.DB
}

func NewDB(dbURL string, verbose bool) *Database {
	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dbURL)))

	db := bun.NewDB(sqlDB, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(verbose)))

	return &Database{DB: db}
}

// CheckClaims reads the authenticated claims from ctx and, when roles are
// given, requires one of them. Role checks always go through auth.CanAccess.
func (d Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	claims, err := auth.GetClaims(ctx)
	if err != nil {
		return auth.Claims{}, err
	}

	if !claims.Authorized(roles...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
	}

	return claims, nil
}

// ValidateStruct checks the named fields of s are present before any query is
// issued. Pointer fields must be non-nil, value fields non-zero.
func (d Database) ValidateStruct(s interface{}, requiredFields ...string) error {
	v := reflect.ValueOf(s)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	fields := map[string]string{}
	for _, name := range requiredFields {
		f := v.FieldByName(name)
		if !f.IsValid() {
			continue
		}
		if f.Kind() == reflect.Ptr && f.IsNil() || f.Kind() != reflect.Ptr && f.IsZero() {
			fields[name] = "required field"
		}
	}
	if len(fields) > 0 {
		return web.NewValidationError(errors.New("required fields are missing"), http.StatusBadRequest, fields)
	}

	return nil
}

// DeleteRow soft-deletes one row by id, stamping who deleted it. Rows are
// never removed physically.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx)
	if err != nil {
		return err
	}

	res, err := d.NewUpdate().
		Table(table).
		Where("deleted_at IS NULL AND id = ?", id).
		Set("deleted_at = ?", time.Now()).
		Set("deleted_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusInternalServerError)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading rows affected"), http.StatusInternalServerError)
	}
	if affected == 0 {
		return web.NewRequestError(errors.Errorf("row not found in %s", table), http.StatusNotFound)
	}

	return nil
}
