package purchase

import (
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
)

type CreateRequest struct {
	InventoryID    int64      `json:"inventory_id" validate:"required"`
	Quantity       int64      `json:"quantity" validate:"required,gt=0"`
	Urgency        string     `json:"urgency" validate:"omitempty,oneof=low medium high urgent"`
	SupplierID     *int64     `json:"supplier_id,omitempty"`
	ServiceOrderID *int64     `json:"service_order_id,omitempty"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	// TotalOverride suppresses the derived quantity x unit-cost total.
	TotalOverride *string `json:"total_override,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

type ApproveRequest struct {
	ApprovalDate *time.Time `json:"approval_date,omitempty"`
}

type ReceiveRequest struct {
	InvoiceNumber string     `json:"invoice_number" validate:"required"`
	ReceiptDate   *time.Time `json:"receipt_date,omitempty"`
}

type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// Detail is a read model: Drift reports whether the stored total diverges
// from the recomputed one. Reads never correct it; reconcile does.
type Detail struct {
	Request *domain.PurchaseRequest `json:"request"`
	Drift   bool                    `json:"drift"`
}

type ReconcileResult struct {
	Request   *domain.PurchaseRequest `json:"request"`
	Corrected bool                    `json:"corrected"`
}

type ListResponse struct {
	Requests []domain.PurchaseRequest `json:"requests"`
	Total    int64                    `json:"total"`
}
