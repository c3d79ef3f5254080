package inventory

import (
	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
)

type CreateRequest struct {
	Name        string `json:"name" validate:"required"`
	PartNumber  string `json:"part_number,omitempty"`
	Quantity    int64  `json:"quantity" validate:"gte=0"`
	MinQuantity int64  `json:"min_quantity" validate:"gte=0"`
	MaxQuantity int64  `json:"max_quantity" validate:"gte=0"`
	UnitCost    string `json:"unit_cost,omitempty"`
	Location    string `json:"location,omitempty"`
	SupplierID  *int64 `json:"supplier_id,omitempty"`
}

type UpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	PartNumber  *string `json:"part_number,omitempty"`
	Quantity    *int64  `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	MinQuantity *int64  `json:"min_quantity,omitempty" validate:"omitempty,gte=0"`
	MaxQuantity *int64  `json:"max_quantity,omitempty" validate:"omitempty,gte=0"`
	UnitCost    *string `json:"unit_cost,omitempty"`
	Location    *string `json:"location,omitempty"`
	SupplierID  *int64  `json:"supplier_id,omitempty"`
}

// StockCheck answers "can I take N of this part right now" without touching
// the stock itself.
type StockCheck struct {
	Item              *domain.InventoryItem `json:"item"`
	RequestedQuantity int64                 `json:"requested_quantity"`
	Level             domain.StockLevel     `json:"level"`
	LowStock          bool                  `json:"low_stock"`
}

type ListResponse struct {
	Items []domain.InventoryItem `json:"items"`
	Total int64                  `json:"total"`
}
