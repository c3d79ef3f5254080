package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked part. The order workflow only reads it:
// replenishment (mutating quantity) is a separate process.
type InventoryItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" validate:"required"`
	PartNumber  string          `json:"part_number,omitempty" gorm:"index"`
	Quantity    int64           `json:"quantity"`
	MinQuantity int64           `json:"min_quantity"`
	MaxQuantity int64           `json:"max_quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost" gorm:"type:numeric"`
	Location    string          `json:"location,omitempty"`
	SupplierID  *int64          `json:"supplier_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinQuantity
}
