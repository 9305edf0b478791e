package summary

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func TestSummarize(t *testing.T) {
	rows := []CommissionRow{
		{Gross: dec(100), Net: dec(80), Disbursed: dec(80)},
		{Gross: dec(200), Net: dec(150), Disbursed: dec(100)},
	}

	s := Summarize(rows)

	if !s.TotalGross.Equal(dec(300)) {
		t.Fatalf("total gross = %s, want 300", s.TotalGross)
	}
	if !s.TotalNet.Equal(dec(230)) {
		t.Fatalf("total net = %s, want 230", s.TotalNet)
	}
	if !s.TotalDisbursed.Equal(dec(180)) {
		t.Fatalf("total disbursed = %s, want 180", s.TotalDisbursed)
	}
	if !s.TotalPending.Equal(dec(50)) {
		t.Fatalf("total pending = %s, want 50", s.TotalPending)
	}
	if s.Count != 2 {
		t.Fatalf("count = %d, want 2", s.Count)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || !s.TotalPending.IsZero() || !s.TotalGross.IsZero() {
		t.Fatalf("empty summary should be all zero, got %+v", s)
	}
}

func TestPercentChange(t *testing.T) {
	if got := PercentChange(dec(120), dec(0)); !got.IsZero() {
		t.Fatalf("zero previous must yield 0, got %s", got)
	}
	if got := PercentChange(dec(150), dec(100)); !got.Equal(dec(50)) {
		t.Fatalf("150 over 100 = %s, want 50", got)
	}
	if got := PercentChange(dec(80), dec(100)); !got.Equal(dec(-20)) {
		t.Fatalf("80 over 100 = %s, want -20", got)
	}
}

func TestDelta(t *testing.T) {
	if got := Delta(dec(120), dec(100)); !got.Equal(dec(20)) {
		t.Fatalf("delta = %s, want 20", got)
	}
}

func TestRankBySales(t *testing.T) {
	entries := []RankEntry{
		{EmployeeID: 3, FullName: "C", TotalSales: dec(500)},
		{EmployeeID: 1, FullName: "A", TotalSales: dec(900)},
		{EmployeeID: 2, FullName: "B", TotalSales: dec(500)},
	}

	ranked := RankBySales(entries)

	if ranked[0].EmployeeID != 1 || ranked[0].Rank != 1 {
		t.Fatalf("highest sales should rank first, got %+v", ranked[0])
	}
	// Ties break by ascending employee id.
	if ranked[1].EmployeeID != 2 || ranked[2].EmployeeID != 3 {
		t.Fatalf("tie should order by employee id, got %d then %d", ranked[1].EmployeeID, ranked[2].EmployeeID)
	}
	if ranked[1].Rank != 2 || ranked[2].Rank != 3 {
		t.Fatalf("ranks should be sequential, got %d and %d", ranked[1].Rank, ranked[2].Rank)
	}

	// Input order untouched.
	if entries[0].EmployeeID != 3 {
		t.Fatalf("input slice must not be reordered")
	}
}
