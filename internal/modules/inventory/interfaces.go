package inventory

import (
	"context"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
)

type InventoryRepository interface {
	Create(ctx context.Context, i *domain.InventoryItem) error
	GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	List(ctx context.Context, search string, limit, offset int) ([]domain.InventoryItem, int64, error)
	ListLowStock(ctx context.Context) ([]domain.InventoryItem, error)
	Update(ctx context.Context, i *domain.InventoryItem) error
	Delete(ctx context.Context, id int64) error
}
