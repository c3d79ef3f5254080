package supplier

import (
	"context"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
)

type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) error
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Supplier, int64, error)
	Update(ctx context.Context, s *domain.Supplier) error
	Delete(ctx context.Context, id int64) error
}
