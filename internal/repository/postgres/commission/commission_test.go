package commission

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(v string) *decimal.Decimal {
	dec := decimal.RequireFromString(v)
	return &dec
}

func TestValidateAmountsOrdering(t *testing.T) {
	if fields := ValidateAmounts(d("100"), d("80"), d("50")); fields != nil {
		t.Fatalf("valid ordering rejected: %v", fields)
	}

	fields := ValidateAmounts(d("100"), d("120"), d("50"))
	if fields == nil {
		t.Fatal("net above gross accepted")
	}
	if _, ok := fields["net_commission"]; !ok {
		t.Fatalf("expected net_commission field error, got %v", fields)
	}

	fields = ValidateAmounts(d("100"), d("80"), d("90"))
	if fields == nil {
		t.Fatal("disbursed above net accepted")
	}
	if _, ok := fields["disbursed_commission"]; !ok {
		t.Fatalf("expected disbursed_commission field error, got %v", fields)
	}
}

func TestValidateAmountsNilIsZero(t *testing.T) {
	// gross only: net and disbursed default to zero, which is always valid.
	if fields := ValidateAmounts(d("100"), nil, nil); fields != nil {
		t.Fatalf("gross-only rejected: %v", fields)
	}

	// disbursed without net must fail: zero net cannot cover it.
	if fields := ValidateAmounts(d("100"), nil, d("10")); fields == nil {
		t.Fatal("disbursed without net accepted")
	}
}

func TestValidateAmountsNegative(t *testing.T) {
	fields := ValidateAmounts(d("-1"), nil, nil)
	if fields == nil {
		t.Fatal("negative gross accepted")
	}
	if _, ok := fields["gross_commission"]; !ok {
		t.Fatalf("expected gross_commission field error, got %v", fields)
	}
}
