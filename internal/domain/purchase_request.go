package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseApproved  PurchaseStatus = "approved"
	PurchaseReceived  PurchaseStatus = "received"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

// PurchaseRequest is an independent aggregate. TotalAmount is derived from
// Quantity x the referenced item's unit cost and persisted; Reconcile keeps it
// consistent. Version guards concurrent transitions.
type PurchaseRequest struct {
	ID             int64           `json:"id"`
	Number         string          `json:"number" gorm:"uniqueIndex"`
	InventoryID    int64           `json:"inventory_id" validate:"required"`
	ServiceOrderID *int64          `json:"service_order_id,omitempty"`
	SupplierID     *int64          `json:"supplier_id,omitempty"`
	Urgency        Urgency         `json:"urgency"`
	Status         PurchaseStatus  `json:"status"`
	Quantity       int64           `json:"quantity" validate:"required,gt=0"`
	TotalAmount    decimal.Decimal `json:"total_amount" gorm:"type:numeric"`
	PurchaseDate   time.Time       `json:"purchase_date"`
	DeliveryDate   *time.Time      `json:"delivery_date,omitempty"`
	ReceiverName   string          `json:"receiver_name,omitempty"`
	InvoiceNumber  string          `json:"invoice_number,omitempty"`
	ApprovedBy     string          `json:"approved_by,omitempty"`
	ApprovalDate   *time.Time      `json:"approval_date,omitempty"`
	CancelReason   string          `json:"cancel_reason,omitempty"`
	Notes          string          `json:"notes,omitempty" gorm:"type:text"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Inventory *InventoryItem `json:"inventory,omitempty" gorm:"foreignKey:InventoryID"`
	Supplier  *Supplier      `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

func (p *PurchaseRequest) Terminal() bool {
	return p.Status == PurchaseReceived || p.Status == PurchaseCancelled
}
