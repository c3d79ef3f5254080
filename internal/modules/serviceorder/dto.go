package serviceorder

import (
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
)

type CreateRequest struct {
	VehicleID      int64      `json:"vehicle_id" validate:"required"`
	DriverID       *int64     `json:"driver_id,omitempty"`
	Description    string     `json:"description" validate:"required"`
	Priority       string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Type           string     `json:"type" validate:"omitempty,oneof=preventive corrective predictive"`
	CurrentMileage int64      `json:"current_mileage" validate:"omitempty,gte=0"`
	Mechanic       string     `json:"mechanic,omitempty"`
	ScheduledDate  *time.Time `json:"scheduled_date,omitempty"`
}

type AddItemRequest struct {
	InventoryID      *int64 `json:"inventory_id,omitempty"`
	Description      string `json:"description,omitempty"`
	RequiredQuantity int64  `json:"required_quantity" validate:"required,gt=0"`
}

type StartRequest struct {
	Mechanic  string     `json:"mechanic,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
}

type CompleteRequest struct {
	ValidationDate *time.Time `json:"validation_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ItemDetail wraps a line item with its read-time flags. A cancelled linked
// purchase request does not mutate the item; it only surfaces here.
type ItemDetail struct {
	Item                   domain.ServiceOrderItem `json:"item"`
	ReplenishmentCancelled bool                    `json:"replenishment_cancelled,omitempty"`
}

// Detail is a read model: Drift reports whether the stored estimated cost
// diverges from the recomputed one. Reads never correct it; reconcile does.
type Detail struct {
	Order *domain.ServiceOrder `json:"order"`
	Items []ItemDetail         `json:"items"`
	Drift bool                 `json:"drift"`
}

type ReconcileResult struct {
	Order     *domain.ServiceOrder `json:"order"`
	Corrected bool                 `json:"corrected"`
}

// Export is a reconciled snapshot: totals are corrected before the order is
// serialized, so the document never carries a drifted cost.
type Export struct {
	Order       *domain.ServiceOrder `json:"order"`
	Items       []ItemDetail         `json:"items"`
	GeneratedAt time.Time            `json:"generated_at"`
}

type ListResponse struct {
	Orders []domain.ServiceOrder `json:"orders"`
	Total  int64                 `json:"total"`
}
