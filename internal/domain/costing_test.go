package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineItemsTotal_Empty(t *testing.T) {
	assert.True(t, LineItemsTotal(nil).IsZero())
	assert.True(t, LineItemsTotal([]CostLine{}).IsZero())
}

func TestLineItemsTotal_SumsQuantityTimesUnitCost(t *testing.T) {
	lines := []CostLine{
		{Quantity: 2, UnitCost: decimal.RequireFromString("100.00")},
		{Quantity: 1, UnitCost: decimal.RequireFromString("50.00")},
	}

	total := LineItemsTotal(lines)

	assert.Equal(t, "250", total.String())
	assert.True(t, total.Equal(decimal.RequireFromString("250.00")))
}

func TestLineItemsTotal_MissingCostCountsAsZero(t *testing.T) {
	lines := []CostLine{
		{Quantity: 4, UnitCost: decimal.Zero},
		{Quantity: 3, UnitCost: decimal.RequireFromString("9.99")},
	}

	assert.True(t, LineItemsTotal(lines).Equal(decimal.RequireFromString("29.97")))
}

func TestLineItemsTotal_NoBinaryFloatArtifacts(t *testing.T) {
	// 0.1 * 3 is the classic float trap; decimal arithmetic keeps it exact.
	lines := []CostLine{{Quantity: 3, UnitCost: decimal.RequireFromString("0.10")}}

	assert.True(t, LineItemsTotal(lines).Equal(decimal.RequireFromString("0.30")))
}

func TestLineItemsTotal_Idempotent(t *testing.T) {
	lines := []CostLine{
		{Quantity: 10, UnitCost: decimal.RequireFromString("25.50")},
		{Quantity: 7, UnitCost: decimal.RequireFromString("3.33")},
	}

	first := LineItemsTotal(lines)
	second := LineItemsTotal(lines)

	assert.True(t, first.Equal(second))
}

func TestTotalDrifted(t *testing.T) {
	computed := decimal.RequireFromString("255.00")

	assert.True(t, TotalDrifted(decimal.Zero, computed))
	assert.True(t, TotalDrifted(decimal.RequireFromString("254.98"), computed))
	// within one cent is not drift
	assert.False(t, TotalDrifted(decimal.RequireFromString("255.01"), computed))
	assert.False(t, TotalDrifted(decimal.RequireFromString("254.99"), computed))
	assert.False(t, TotalDrifted(computed, computed))
}
