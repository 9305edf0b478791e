package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bizops/backend/foundation/web"
	"bizops/backend/internal/auth"
	"bizops/backend/internal/pkg/repository/postgresql"
	"bizops/backend/internal/service/summary"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// cacheTTL keeps dashboard reads off postgres between refreshes.
const cacheTTL = 5 * time.Minute

type Repository struct {
	*postgresql.Database
	cache *redis.Client
}

func NewRepository(database *postgresql.Database, cache *redis.Client) *Repository {
	return &Repository{Database: database, cache: cache}
}

// fromCache fills dest from redis and reports a hit. Cache failures are
// treated as misses so the dashboard still renders when redis is down.
func (r Repository) fromCache(ctx context.Context, key string, dest interface{}) bool {
	if r.cache == nil {
		return false
	}
	raw, err := r.cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (r Repository) toCache(ctx context.Context, key string, value interface{}) {
	if r.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	r.cache.Set(ctx, key, raw, cacheTTL)
}

func (r Repository) GetMetrics(ctx context.Context, month, year int) (Metrics, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer); err != nil {
		return Metrics{}, err
	}

	key := fmt.Sprintf("dashboard:metrics:%d-%02d", year, month)
	var cached Metrics
	if r.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	prevMonth, prevYear := month-1, year
	if prevMonth == 0 {
		prevMonth, prevYear = 12, year-1
	}

	metrics := Metrics{Month: month, Year: year}

	currentSales, err := r.monthSales(ctx, month, year)
	if err != nil {
		return Metrics{}, err
	}
	previousSales, err := r.monthSales(ctx, prevMonth, prevYear)
	if err != nil {
		return Metrics{}, err
	}
	metrics.TotalSales = currentSales
	metrics.SalesChangePercent = summary.PercentChange(currentSales, previousSales)
	metrics.SalesDelta = summary.Delta(currentSales, previousSales)

	currentCommission, err := r.monthCommission(ctx, month, year)
	if err != nil {
		return Metrics{}, err
	}
	previousCommission, err := r.monthCommission(ctx, prevMonth, prevYear)
	if err != nil {
		return Metrics{}, err
	}
	metrics.Commission = currentCommission
	metrics.CommissionChangePercent = summary.PercentChange(currentCommission.TotalNet, previousCommission.TotalNet)

	currentExpenses, err := r.monthExpenses(ctx, month, year)
	if err != nil {
		return Metrics{}, err
	}
	previousExpenses, err := r.monthExpenses(ctx, prevMonth, prevYear)
	if err != nil {
		return Metrics{}, err
	}
	metrics.Expenses = currentExpenses
	metrics.ExpensesChangePercent = summary.PercentChange(currentExpenses, previousExpenses)

	countsQuery := fmt.Sprintf(`
		SELECT
			(SELECT count(id) FROM users WHERE deleted_at IS NULL AND status = 'active'),
			(SELECT count(id) FROM groups WHERE deleted_at IS NULL),
			(SELECT count(id) FROM attendance WHERE deleted_at IS NULL AND work_day = current_date AND status = 'present'),
			(SELECT count(id) FROM daily_reports
				WHERE deleted_at IS NULL
				AND extract(month FROM report_date) = %d AND extract(year FROM report_date) = %d),
			(SELECT count(id) FROM daily_reports
				WHERE deleted_at IS NULL AND live_status = 'down'
				AND extract(month FROM report_date) = %d AND extract(year FROM report_date) = %d)
	`, month, year, month, year)

	if err = r.QueryRowContext(ctx, countsQuery).Scan(
		&metrics.ActiveEmployees,
		&metrics.ActiveGroups,
		&metrics.PresentToday,
		&metrics.ReportsThisMonth,
		&metrics.LiveDownCount,
	); err != nil {
		return Metrics{}, web.NewRequestError(errors.Wrap(err, "selecting dashboard counts"), http.StatusInternalServerError)
	}

	r.toCache(ctx, key, metrics)
	return metrics, nil
}

func (r Repository) GetCharts(ctx context.Context, month, year int) (Charts, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer); err != nil {
		return Charts{}, err
	}

	key := fmt.Sprintf("dashboard:charts:%d-%02d", year, month)
	var cached Charts
	if r.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	var charts Charts
	var err error

	if charts.SalesTrend, err = r.salesTrend(ctx, month, year); err != nil {
		return Charts{}, err
	}
	if charts.CommissionByWeek, err = r.commissionByWeek(ctx, month, year); err != nil {
		return Charts{}, err
	}
	if charts.GroupPerformance, err = r.groupPerformance(ctx, month, year); err != nil {
		return Charts{}, err
	}
	if charts.PlatformCounts, err = r.platformCounts(ctx); err != nil {
		return Charts{}, err
	}
	if charts.Ranking, err = r.employeeRanking(ctx, month, year); err != nil {
		return Charts{}, err
	}

	r.toCache(ctx, key, charts)
	return charts, nil
}

func (r Repository) monthSales(ctx context.Context, month, year int) (decimal.Decimal, error) {
	query := fmt.Sprintf(`
		SELECT coalesce(sum(total_sales), 0)
		FROM daily_reports
		WHERE deleted_at IS NULL
		AND extract(month FROM report_date) = %d AND extract(year FROM report_date) = %d
	`, month, year)

	var total decimal.Decimal
	if err := r.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, web.NewRequestError(errors.Wrap(err, "summing month sales"), http.StatusInternalServerError)
	}
	return total, nil
}

func (r Repository) monthExpenses(ctx context.Context, month, year int) (decimal.Decimal, error) {
	query := fmt.Sprintf(`
		SELECT coalesce(sum(amount), 0)
		FROM cashflow
		WHERE deleted_at IS NULL AND type = 'expense'
		AND extract(month FROM transaction_date) = %d AND extract(year FROM transaction_date) = %d
	`, month, year)

	var total decimal.Decimal
	if err := r.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, web.NewRequestError(errors.Wrap(err, "summing month expenses"), http.StatusInternalServerError)
	}
	return total, nil
}

func (r Repository) monthCommission(ctx context.Context, month, year int) (summary.CommissionSummary, error) {
	query := fmt.Sprintf(`
		SELECT
			coalesce(gross_commission, 0),
			coalesce(net_commission, 0),
			coalesce(disbursed_commission, 0)
		FROM commissions
		WHERE deleted_at IS NULL AND period_month = %d AND period_year = %d
	`, month, year)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return summary.CommissionSummary{}, web.NewRequestError(errors.Wrap(err, "selecting month commissions"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []summary.CommissionRow
	for rows.Next() {
		var row summary.CommissionRow
		if err = rows.Scan(&row.Gross, &row.Net, &row.Disbursed); err != nil {
			return summary.CommissionSummary{}, web.NewRequestError(errors.Wrap(err, "scanning month commissions"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return summary.Summarize(list), nil
}

func (r Repository) salesTrend(ctx context.Context, month, year int) ([]SalesTrendRow, error) {
	query := fmt.Sprintf(`
		SELECT report_date::text, coalesce(sum(total_sales), 0)
		FROM daily_reports
		WHERE deleted_at IS NULL
		AND extract(month FROM report_date) = %d AND extract(year FROM report_date) = %d
		GROUP BY report_date
		ORDER BY report_date
	`, month, year)

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

func (r Repository) commissionByWeek(ctx context.Context, month, year int) ([]CommissionWeekRow, error) {
	query := fmt.Sprintf(`
		SELECT
			period_week,
			coalesce(sum(gross_commission), 0),
			coalesce(sum(net_commission), 0),
			coalesce(sum(disbursed_commission), 0)
		FROM commissions
		WHERE deleted_at IS NULL AND period_month = %d AND period_year = %d
		GROUP BY period_week
		ORDER BY period_week
	`, month, year)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting commission breakdown"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []CommissionWeekRow
	for rows.Next() {
		var row CommissionWeekRow
		if err = rows.Scan(&row.PeriodWeek, &row.Gross, &row.Net, &row.Disbursed); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning commission breakdown"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}

func (r Repository) groupPerformance(ctx context.Context, month, year int) ([]GroupPerformanceRow, error) {
	query := fmt.Sprintf(`
		SELECT
			g.id,
			g.name,
			coalesce(sum(dr.total_sales), 0),
			count(dr.id)
		FROM groups g
		LEFT JOIN daily_reports dr ON dr.group_id = g.id
			AND dr.deleted_at IS NULL
			AND extract(month FROM dr.report_date) = %d AND extract(year FROM dr.report_date) = %d
		WHERE g.deleted_at IS NULL
		GROUP BY g.id, g.name
		ORDER BY 3 desc
	`, month, year)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting group performance"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GroupPerformanceRow
	for rows.Next() {
		var row GroupPerformanceRow
		if err = rows.Scan(&row.GroupID, &row.Group, &row.TotalSales, &row.Reports); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning group performance"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}

func (r Repository) platformCounts(ctx context.Context) ([]PlatformCountRow, error) {
	query := `
		SELECT
			coalesce(platform, ''),
			count(id) FILTER (WHERE status = 'active'),
			count(id)
		FROM accounts
		WHERE deleted_at IS NULL
		GROUP BY platform
		ORDER BY 3 desc
	`

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting platform counts"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []PlatformCountRow
	for rows.Next() {
		var row PlatformCountRow
		if err = rows.Scan(&row.Platform, &row.Active, &row.Total); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning platform counts"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, nil
}

func (r Repository) employeeRanking(ctx context.Context, month, year int) ([]summary.RankEntry, error) {
	query := fmt.Sprintf(`
		SELECT
			u.id,
			coalesce(u.full_name, ''),
			coalesce(sum(dr.total_sales), 0)
		FROM users u
		JOIN daily_reports dr ON dr.employee_id = u.id
			AND dr.deleted_at IS NULL
			AND extract(month FROM dr.report_date) = %d AND extract(year FROM dr.report_date) = %d
		WHERE u.deleted_at IS NULL
		GROUP BY u.id, u.full_name
	`, month, year)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting employee ranking"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var entries []summary.RankEntry
	for rows.Next() {
		var entry summary.RankEntry
		if err = rows.Scan(&entry.EmployeeID, &entry.FullName, &entry.TotalSales); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning employee ranking"), http.StatusInternalServerError)
		}
		entries = append(entries, entry)
	}

	return summary.RankBySales(entries), nil
}
