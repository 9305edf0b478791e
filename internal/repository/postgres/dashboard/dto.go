package dashboard

import (
	"bizops/backend/internal/service/summary"

	"github.com/shopspring/decimal"
)

type Filter struct {
	Month *int
	Year  *int
}

// Metrics is the headline card row of the dashboard: this month's figures
// with their change against the previous month.
type Metrics struct {
	Month int `json:"month"`
	Year  int `json:"year"`

	TotalSales         decimal.Decimal `json:"total_sales"`
	SalesChangePercent decimal.Decimal `json:"sales_change_percent"`
	SalesDelta         decimal.Decimal `json:"sales_delta"`

	Commission              summary.CommissionSummary `json:"commission"`
	CommissionChangePercent decimal.Decimal           `json:"commission_change_percent"`

	Expenses              decimal.Decimal `json:"expenses"`
	ExpensesChangePercent decimal.Decimal `json:"expenses_change_percent"`

	ActiveEmployees  int `json:"active_employees"`
	ActiveGroups     int `json:"active_groups"`
	PresentToday     int `json:"present_today"`
	ReportsThisMonth int `json:"reports_this_month"`
	LiveDownCount    int `json:"live_down_count"`
}

type SalesTrendRow struct {
	ReportDate string          `json:"date"`
	TotalSales decimal.Decimal `json:"sales"`
}

type CommissionWeekRow struct {
	PeriodWeek string          `json:"period_week"`
	Gross      decimal.Decimal `json:"gross"`
	Net        decimal.Decimal `json:"net"`
	Disbursed  decimal.Decimal `json:"disbursed"`
}

type GroupPerformanceRow struct {
	GroupID    int             `json:"group_id"`
	Group      string          `json:"group"`
	TotalSales decimal.Decimal `json:"total_sales"`
	Reports    int             `json:"reports"`
}

type PlatformCountRow struct {
	Platform string `json:"platform"`
	Active   int    `json:"active"`
	Total    int    `json:"total"`
}

// Charts bundles every dashboard chart so the page loads in one request.
type Charts struct {
	SalesTrend       []SalesTrendRow       `json:"sales_trend"`
	CommissionByWeek []CommissionWeekRow   `json:"commission_by_week"`
	GroupPerformance []GroupPerformanceRow `json:"group_performance"`
	PlatformCounts   []PlatformCountRow    `json:"platform_counts"`
	Ranking          []summary.RankEntry   `json:"ranking"`
}
