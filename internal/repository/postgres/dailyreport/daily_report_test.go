package dailyreport

import (
	"testing"

	"bizops/backend/foundation/web"
	"bizops/backend/internal/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func TestValidateSales(t *testing.T) {
	if err := ValidateSales(dec(100), dec(250)); err != nil {
		t.Fatalf("increasing counter should pass: %v", err)
	}
	if err := ValidateSales(dec(100), dec(100)); err != nil {
		t.Fatalf("flat counter should pass: %v", err)
	}

	err := ValidateSales(dec(250), dec(100))
	if err == nil {
		t.Fatalf("ending below starting must be rejected")
	}

	var e *web.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected a *web.Error, got %T", err)
	}
	if e.Status != 400 {
		t.Fatalf("validation error status = %d, want 400", e.Status)
	}
	if _, ok := e.Fields["ending_sales"]; !ok {
		t.Fatalf("validation error must name ending_sales, got %v", e.Fields)
	}
}

func TestDefaultOpeningBalance(t *testing.T) {
	prevClosing := dec(50000)

	if got := DefaultOpeningBalance(entity.LiveStatusNormal, prevClosing); !got.Equal(prevClosing) {
		t.Fatalf("normal shift should inherit previous closing, got %s", got)
	}
	if got := DefaultOpeningBalance(entity.LiveStatusDown, prevClosing); !got.IsZero() {
		t.Fatalf("down shift should start from zero, got %s", got)
	}
	if got := DefaultOpeningBalance(entity.LiveStatusRelive, prevClosing); !got.IsZero() {
		t.Fatalf("relive shift should start from zero, got %s", got)
	}
}

func TestDeriveClosing(t *testing.T) {
	if got := DeriveClosing(dec(50000), dec(12500)); !got.Equal(dec(62500)) {
		t.Fatalf("closing = %s, want 62500", got)
	}
	if got := DeriveClosing(decimal.Zero, decimal.Zero); !got.IsZero() {
		t.Fatalf("zero shift should close at zero, got %s", got)
	}
}
