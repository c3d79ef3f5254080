package purchase

import (
	"context"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
	"github.com/JorgeWendell/fleetmanager-sub000/internal/repository"

	"github.com/shopspring/decimal"
)

// PurchaseRepository defines the persistence operations for purchase requests.
// UpdateTransition and UpdateTotal are version-checked single-statement writes.
type PurchaseRepository interface {
	Create(ctx context.Context, p *domain.PurchaseRequest) error
	GetByID(ctx context.Context, id int64) (*domain.PurchaseRequest, error)
	List(ctx context.Context, f repository.PurchaseListFilter) ([]domain.PurchaseRequest, int64, error)
	UpdateTransition(ctx context.Context, id, version int64, fields map[string]any) error
	UpdateTotal(ctx context.Context, id, version int64, total decimal.Decimal) error
}

// InventoryReader resolves unit costs; the workflow never mutates stock.
type InventoryReader interface {
	GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
}

// NotificationSender is fired best-effort after successful transitions.
type NotificationSender interface {
	NotifyPurchaseStatus(ctx context.Context, number string, from, to domain.PurchaseStatus) error
}
