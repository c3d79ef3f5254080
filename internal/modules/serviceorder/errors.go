package serviceorder

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("service order not found")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrInventoryNotFound = errors.New("inventory item not found")
	ErrOrderClosed       = errors.New("service order is completed or cancelled")
)

// OutOfStockError aborts an item addition: the part has zero stock, so the
// item is not created and a replenishment request is opened instead.
type OutOfStockError struct {
	InventoryID       int64  `json:"inventory_id"`
	RequestedQuantity int64  `json:"requested_quantity"`
	PurchaseRequestID *int64 `json:"purchase_request_id,omitempty"`
	PurchaseNumber    string `json:"purchase_request_number,omitempty"`
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("inventory item %d is out of stock (requested %d)", e.InventoryID, e.RequestedQuantity)
}
