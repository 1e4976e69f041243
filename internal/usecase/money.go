package usecase

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/procurement-console/internal/domain/model"
)

// CurrencySymbol prefixes every rendered amount.
const CurrencySymbol = "₹"

// LineValue returns max(0, qty) × max(0, rate); blank or non-numeric input counts as zero.
func LineValue(qty, rate string) decimal.Decimal {
	return nonNegative(parseAmount(qty)).Mul(nonNegative(parseAmount(rate)))
}

// FormatCurrency renders d with the currency symbol and two decimals.
// Rounding happens here only; stored values keep full precision.
func FormatCurrency(d decimal.Decimal) string {
	return CurrencySymbol + d.StringFixed(2)
}

// Totals aggregates quantity and value over draft lines.
type Totals struct {
	Quantity int
	Value    decimal.Decimal
}

// TotalsOf recomputes totals from the raw line fields.
func TotalsOf(lines []model.LineItem) Totals {
	var t Totals
	t.Value = decimal.Zero
	for _, line := range lines {
		if qty, _ := clampQty(parseAmount(line.Qty)); qty > 0 {
			t.Quantity += qty
		}
		t.Value = t.Value.Add(LineValue(line.Qty, line.Rate))
	}
	return t
}

// MaxQuantity bounds a single line quantity.
const MaxQuantity = math.MaxInt32

var maxQuantity = decimal.NewFromInt(MaxQuantity)

// clampQty truncates d to a whole quantity within ±MaxQuantity and reports whether it fit.
func clampQty(d decimal.Decimal) (int, bool) {
	switch {
	case d.GreaterThan(maxQuantity):
		return MaxQuantity, false
	case d.LessThan(maxQuantity.Neg()):
		return -MaxQuantity, false
	}
	return int(d.IntPart()), true
}

func parseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
