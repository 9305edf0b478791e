// Package summary holds the pure reducers behind the dashboard: commission
// totals, change versus a prior period and the employee sales ranking.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CommissionRow is the slice of a commission record the reducers need.
type CommissionRow struct {
	Gross     decimal.Decimal
	Net       decimal.Decimal
	Disbursed decimal.Decimal
}

type CommissionSummary struct {
	TotalGross     decimal.Decimal `json:"total_gross"`
	TotalNet       decimal.Decimal `json:"total_net"`
	TotalDisbursed decimal.Decimal `json:"total_disbursed"`
	TotalPending   decimal.Decimal `json:"total_pending"`
	Count          int             `json:"count"`
}

// Summarize folds commission rows into period totals. Pending is what has
// been earned net but not yet disbursed.
func Summarize(rows []CommissionRow) CommissionSummary {
	var s CommissionSummary
	for _, row := range rows {
		s.TotalGross = s.TotalGross.Add(row.Gross)
		s.TotalNet = s.TotalNet.Add(row.Net)
		s.TotalDisbursed = s.TotalDisbursed.Add(row.Disbursed)
	}
	s.TotalPending = s.TotalNet.Sub(s.TotalDisbursed)
	s.Count = len(rows)
	return s
}

// PercentChange returns the growth of current over previous in percent. A
// zero previous period yields 0 so an empty first month never divides by zero.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
}

// Delta is the absolute change of current over previous.
func Delta(current, previous decimal.Decimal) decimal.Decimal {
	return current.Sub(previous)
}

// RankEntry is one employee's sales figure for the ranking.
type RankEntry struct {
	EmployeeID int             `json:"employee_id"`
	FullName   string          `json:"full_name"`
	TotalSales decimal.Decimal `json:"total_sales"`
	Rank       int             `json:"rank"`
}

// RankBySales orders entries by descending sales. Equal sales rank by
// ascending employee id so the order is deterministic across fetches.
func RankBySales(entries []RankEntry) []RankEntry {
	ranked := make([]RankEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].TotalSales.Equal(ranked[j].TotalSales) {
			return ranked[i].TotalSales.GreaterThan(ranked[j].TotalSales)
		}
		return ranked[i].EmployeeID < ranked[j].EmployeeID
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
