package domain

type StockLevel string

const (
	StockSufficient   StockLevel = "sufficient"
	StockInsufficient StockLevel = "insufficient"
	StockOutOfStock   StockLevel = "out_of_stock"
)

// ClassifyStock compares a requested quantity against what is on hand.
// Zero on hand is out_of_stock regardless of the request; anything short of
// the request is insufficient; otherwise sufficient.
func ClassifyStock(available, requested int64) StockLevel {
	switch {
	case available <= 0:
		return StockOutOfStock
	case available < requested:
		return StockInsufficient
	default:
		return StockSufficient
	}
}
