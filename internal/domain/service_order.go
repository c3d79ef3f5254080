package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderOpen       OrderStatus = "open"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderPreventive OrderType = "preventive"
	OrderCorrective OrderType = "corrective"
	OrderPredictive OrderType = "predictive"
)

// ServiceOrder is a workshop order on a vehicle. EstimatedCost is derived
// from its line items and persisted; Reconcile keeps it consistent. Version
// guards concurrent transitions.
type ServiceOrder struct {
	ID             int64           `json:"id"`
	Number         string          `json:"number" gorm:"uniqueIndex"`
	VehicleID      int64           `json:"vehicle_id" validate:"required"`
	DriverID       *int64          `json:"driver_id,omitempty"`
	Description    string          `json:"description" gorm:"type:text"`
	Status         OrderStatus     `json:"status"`
	Priority       Urgency         `json:"priority"`
	Type           OrderType       `json:"type"`
	CurrentMileage int64           `json:"current_mileage"`
	Mechanic       string          `json:"mechanic,omitempty"`
	ScheduledDate  *time.Time      `json:"scheduled_date,omitempty"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost" gorm:"type:numeric"`
	ValidatedBy    string          `json:"validated_by,omitempty"`
	ValidationDate *time.Time      `json:"validation_date,omitempty"`
	CancelReason   string          `json:"cancel_reason,omitempty"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Vehicle *Vehicle           `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Driver  *Driver            `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Items   []ServiceOrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

func (o *ServiceOrder) Terminal() bool {
	return o.Status == OrderCompleted || o.Status == OrderCancelled
}

// ServiceOrderItem belongs to exactly one order and dies with it. The
// purchase request link is advisory: cancelling the request does not touch
// the item (callers surface the stale link as a flag instead).
type ServiceOrderItem struct {
	ID                int64      `json:"id"`
	OrderID           int64      `json:"order_id"`
	InventoryID       *int64     `json:"inventory_id,omitempty"`
	Description       string     `json:"description"`
	RequiredQuantity  int64      `json:"required_quantity" validate:"required,gt=0"`
	StockFlag         StockLevel `json:"stock_flag,omitempty"`
	PurchaseRequestID *int64     `json:"purchase_request_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`

	Inventory *InventoryItem `json:"inventory,omitempty" gorm:"foreignKey:InventoryID"`
}
