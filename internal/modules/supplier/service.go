package supplier

import (
	"context"
	"errors"
	"strings"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	suppliers SupplierRepository
}

func NewService(suppliers SupplierRepository) *Service {
	return &Service{suppliers: suppliers}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Supplier, error) {
	sup := &domain.Supplier{
		Name:        strings.TrimSpace(req.Name),
		ContactName: req.ContactName,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       req.Phone,
		Address:     req.Address,
		Active:      true,
	}
	if sup.Name == "" {
		return nil, ErrValidation
	}

	if err := s.suppliers.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Supplier, error) {
	return s.load(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Supplier, int64, error) {
	return s.suppliers.List(ctx, activeOnly, limit, offset)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Supplier, error) {
	sup, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sup.Name = *req.Name
	}
	if req.ContactName != nil {
		sup.ContactName = *req.ContactName
	}
	if req.Email != nil {
		sup.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		sup.Phone = *req.Phone
	}
	if req.Address != nil {
		sup.Address = *req.Address
	}
	if req.Active != nil {
		sup.Active = *req.Active
	}

	if err := s.suppliers.Update(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

// Deactivate keeps the supplier row for historical purchase requests; only
// new requests stop offering it.
func (s *Service) Deactivate(ctx context.Context, id int64) (*domain.Supplier, error) {
	active := false
	return s.Update(ctx, id, UpdateRequest{Active: &active})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.suppliers.Delete(ctx, id)
}

func (s *Service) load(ctx context.Context, id int64) (*domain.Supplier, error) {
	sup, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sup, nil
}
