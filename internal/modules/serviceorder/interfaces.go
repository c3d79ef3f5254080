package serviceorder

import (
	"context"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderRepository defines the persistence operations for service orders and
// their line items. UpdateTransition and UpdateEstimatedCost are
// version-checked single-statement writes.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.ServiceOrder) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error)
	List(ctx context.Context, f repository.OrderListFilter) ([]domain.ServiceOrder, int64, error)
	UpdateTransition(ctx context.Context, id, version int64, fields map[string]any) error
	UpdateEstimatedCost(ctx context.Context, id, version int64, cost decimal.Decimal) error
	CreateItem(ctx context.Context, item *domain.ServiceOrderItem) error
	GetItems(ctx context.Context, orderID int64) ([]domain.ServiceOrderItem, error)
}

type VehicleReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// InventoryReader resolves stock levels and unit costs; the workflow never
// mutates stock.
type InventoryReader interface {
	GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
}

// Replenisher opens a purchase request when an item hits an out-of-stock
// part. Implemented by the purchase module's service.
type Replenisher interface {
	CreateForShortfall(ctx context.Context, inventoryID, quantity, orderID int64, actor domain.Actor) (*domain.PurchaseRequest, error)
}

// PurchaseStatusReader resolves the current status of a linked purchase
// request. Reads flag cancelled links; they never repair them.
type PurchaseStatusReader interface {
	StatusByID(ctx context.Context, id int64) (domain.PurchaseStatus, error)
}

// NotificationSender is fired best-effort after successful transitions.
type NotificationSender interface {
	NotifyOrderStatus(ctx context.Context, number string, from, to domain.OrderStatus) error
}
