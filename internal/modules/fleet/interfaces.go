package fleet

import (
	"context"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Vehicle, int64, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
	Delete(ctx context.Context, id int64) error
}

type DriverRepository interface {
	Create(ctx context.Context, d *domain.Driver) error
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Driver, int64, error)
	Update(ctx context.Context, d *domain.Driver) error
	AssignVehicle(ctx context.Context, driverID int64, vehicleID *int64) error
	Delete(ctx context.Context, id int64) error
}
