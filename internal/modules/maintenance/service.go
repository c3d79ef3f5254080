package maintenance

import (
	"context"
	"errors"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	records  MaintenanceRepository
	vehicles VehicleReader
}

func NewService(records MaintenanceRepository, vehicles VehicleReader) *Service {
	return &Service{records: records, vehicles: vehicles}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.MaintenanceRecord, error) {
	if _, err := s.vehicles.GetByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	cost := decimal.Zero
	if req.Cost != "" {
		parsed, err := decimal.NewFromString(req.Cost)
		if err != nil || parsed.IsNegative() {
			return nil, ErrValidation
		}
		cost = parsed.Round(2)
	}

	serviceDate := time.Now()
	if req.ServiceDate != nil {
		serviceDate = *req.ServiceDate
	}

	m := &domain.MaintenanceRecord{
		VehicleID:   req.VehicleID,
		Type:        req.Type,
		Description: req.Description,
		ServiceDate: serviceDate,
		NextDue:     req.NextDue,
		Mileage:     req.Mileage,
		Cost:        cost,
		Mechanic:    req.Mechanic,
		Status:      domain.MaintenanceScheduled,
		Notes:       req.Notes,
	}

	if err := s.records.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.MaintenanceRecord, error) {
	return s.load(ctx, id)
}

func (s *Service) ListByVehicle(ctx context.Context, vehicleID int64, limit, offset int) ([]domain.MaintenanceRecord, int64, error) {
	return s.records.ListByVehicle(ctx, vehicleID, limit, offset)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.MaintenanceRecord, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		m.Type = *req.Type
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.ServiceDate != nil {
		m.ServiceDate = *req.ServiceDate
	}
	if req.NextDue != nil {
		m.NextDue = req.NextDue
	}
	if req.Mileage != nil {
		m.Mileage = *req.Mileage
	}
	if req.Cost != nil {
		parsed, err := decimal.NewFromString(*req.Cost)
		if err != nil || parsed.IsNegative() {
			return nil, ErrValidation
		}
		m.Cost = parsed.Round(2)
	}
	if req.Mechanic != nil {
		m.Mechanic = *req.Mechanic
	}
	if req.Status != nil {
		m.Status = domain.MaintenanceStatus(*req.Status)
	}
	if req.Notes != nil {
		m.Notes = *req.Notes
	}

	if err := s.records.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.records.Delete(ctx, id)
}

func (s *Service) load(ctx context.Context, id int64) (*domain.MaintenanceRecord, error) {
	m, err := s.records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
