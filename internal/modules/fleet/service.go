package fleet

import (
	"context"
	"errors"
	"strings"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	vehicles VehicleRepository
	drivers  DriverRepository
}

func NewService(vehicles VehicleRepository, drivers DriverRepository) *Service {
	return &Service{vehicles: vehicles, drivers: drivers}
}

// uniqueViolation detects a duplicate-key insert under postgres (SQLSTATE
// 23505) and under the sqlite driver used in tests.
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *Service) CreateVehicle(ctx context.Context, req CreateVehicleRequest) (*domain.Vehicle, error) {
	v := &domain.Vehicle{
		Plate:        strings.ToUpper(strings.TrimSpace(req.Plate)),
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Mileage:      req.Mileage,
		Status:       domain.VehicleActive,
		FuelType:     req.FuelType,
		SerialNumber: req.SerialNumber,
	}
	if v.Plate == "" {
		return nil, ErrValidation
	}

	if err := s.vehicles.Create(ctx, v); err != nil {
		if uniqueViolation(err) {
			return nil, ErrPlateExists
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.loadVehicle(ctx, id)
}

func (s *Service) ListVehicles(ctx context.Context, status string, limit, offset int) ([]domain.Vehicle, int64, error) {
	return s.vehicles.List(ctx, status, limit, offset)
}

func (s *Service) UpdateVehicle(ctx context.Context, id int64, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	v, err := s.loadVehicle(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Make != nil {
		v.Make = *req.Make
	}
	if req.Model != nil {
		v.Model = *req.Model
	}
	if req.Year != nil {
		v.Year = *req.Year
	}
	if req.Mileage != nil {
		v.Mileage = *req.Mileage
	}
	if req.FuelType != nil {
		v.FuelType = *req.FuelType
	}
	if req.SerialNumber != nil {
		v.SerialNumber = *req.SerialNumber
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) SetVehicleStatus(ctx context.Context, id int64, req VehicleStatusRequest) (*domain.Vehicle, error) {
	if _, err := s.loadVehicle(ctx, id); err != nil {
		return nil, err
	}
	if err := s.vehicles.UpdateStatus(ctx, id, domain.VehicleStatus(req.Status)); err != nil {
		return nil, err
	}
	return s.loadVehicle(ctx, id)
}

func (s *Service) DeleteVehicle(ctx context.Context, id int64) error {
	if _, err := s.loadVehicle(ctx, id); err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, id)
}

func (s *Service) CreateDriver(ctx context.Context, req CreateDriverRequest) (*domain.Driver, error) {
	d := &domain.Driver{
		Name:          strings.TrimSpace(req.Name),
		LicenseNumber: strings.TrimSpace(req.LicenseNumber),
		LicenseExpiry: req.LicenseExpiry,
		Phone:         req.Phone,
		Status:        domain.DriverAvailable,
	}
	if d.Name == "" || d.LicenseNumber == "" {
		return nil, ErrValidation
	}

	if err := s.drivers.Create(ctx, d); err != nil {
		if uniqueViolation(err) {
			return nil, ErrLicenseExists
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) GetDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	return s.loadDriver(ctx, id)
}

func (s *Service) ListDrivers(ctx context.Context, status string, limit, offset int) ([]domain.Driver, int64, error) {
	return s.drivers.List(ctx, status, limit, offset)
}

func (s *Service) UpdateDriver(ctx context.Context, id int64, req UpdateDriverRequest) (*domain.Driver, error) {
	d, err := s.loadDriver(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.LicenseExpiry != nil {
		d.LicenseExpiry = req.LicenseExpiry
	}
	if req.Phone != nil {
		d.Phone = *req.Phone
	}
	if req.Status != nil {
		d.Status = domain.DriverStatus(*req.Status)
	}

	if err := s.drivers.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// AssignVehicle links a driver to a vehicle, or unlinks with a nil vehicle
// ID. A retired vehicle cannot take a driver.
func (s *Service) AssignVehicle(ctx context.Context, driverID int64, req AssignVehicleRequest) (*domain.Driver, error) {
	if _, err := s.loadDriver(ctx, driverID); err != nil {
		return nil, err
	}

	if req.VehicleID != nil {
		v, err := s.loadVehicle(ctx, *req.VehicleID)
		if err != nil {
			return nil, err
		}
		if v.Status == domain.VehicleRetired {
			return nil, ErrVehicleRetired
		}
	}

	if err := s.drivers.AssignVehicle(ctx, driverID, req.VehicleID); err != nil {
		return nil, err
	}
	return s.loadDriver(ctx, driverID)
}

func (s *Service) DeleteDriver(ctx context.Context, id int64) error {
	if _, err := s.loadDriver(ctx, id); err != nil {
		return err
	}
	return s.drivers.Delete(ctx, id)
}

func (s *Service) loadVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) loadDriver(ctx context.Context, id int64) (*domain.Driver, error) {
	d, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	return d, nil
}
