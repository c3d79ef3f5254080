package domain

import "github.com/shopspring/decimal"

// driftTolerance is one cent: stored totals within a cent of the recomputed
// value are left alone.
var driftTolerance = decimal.NewFromFloat(0.01)

// CostLine is one line item's contribution to a derived total.
type CostLine struct {
	Quantity int64
	UnitCost decimal.Decimal
}

// LineItemsTotal sums quantity x unit cost over the lines, rounded to two
// decimals at the output boundary. An empty slice yields zero. A zero-valued
// UnitCost (the mapping for a missing or null stored cost) contributes zero.
func LineItemsTotal(lines []CostLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromInt(l.Quantity).Mul(l.UnitCost))
	}
	return total.Round(2)
}

// TotalDrifted reports whether a stored total diverges from the recomputed
// one by more than the cent tolerance.
func TotalDrifted(stored, computed decimal.Decimal) bool {
	return stored.Sub(computed).Abs().GreaterThan(driftTolerance)
}
