package maintenance

import (
	"context"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.MaintenanceRecord) error
	GetByID(ctx context.Context, id int64) (*domain.MaintenanceRecord, error)
	ListByVehicle(ctx context.Context, vehicleID int64, limit, offset int) ([]domain.MaintenanceRecord, int64, error)
	Update(ctx context.Context, m *domain.MaintenanceRecord) error
	Delete(ctx context.Context, id int64) error
}

type VehicleReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}
