package inventory

import (
	"context"
	"errors"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	items InventoryRepository
}

func NewService(items InventoryRepository) *Service {
	return &Service{items: items}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.InventoryItem, error) {
	unitCost := decimal.Zero
	if req.UnitCost != "" {
		parsed, err := decimal.NewFromString(req.UnitCost)
		if err != nil || parsed.IsNegative() {
			return nil, ErrValidation
		}
		unitCost = parsed.Round(2)
	}

	item := &domain.InventoryItem{
		Name:        req.Name,
		PartNumber:  req.PartNumber,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		MaxQuantity: req.MaxQuantity,
		UnitCost:    unitCost,
		Location:    req.Location,
		SupplierID:  req.SupplierID,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	return s.load(ctx, id)
}

func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]domain.InventoryItem, int64, error) {
	return s.items.List(ctx, search, limit, offset)
}

func (s *Service) ListLowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.items.ListLowStock(ctx)
}

// CheckStock classifies the requested quantity against what is on hand. It
// never reserves or mutates stock.
func (s *Service) CheckStock(ctx context.Context, id, requested int64) (*StockCheck, error) {
	if requested <= 0 {
		return nil, ErrValidation
	}

	item, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return &StockCheck{
		Item:              item,
		RequestedQuantity: requested,
		Level:             domain.ClassifyStock(item.Quantity, requested),
		LowStock:          item.LowStock(),
	}, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.InventoryItem, error) {
	item, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.PartNumber != nil {
		item.PartNumber = *req.PartNumber
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.MinQuantity != nil {
		item.MinQuantity = *req.MinQuantity
	}
	if req.MaxQuantity != nil {
		item.MaxQuantity = *req.MaxQuantity
	}
	if req.UnitCost != nil {
		parsed, err := decimal.NewFromString(*req.UnitCost)
		if err != nil || parsed.IsNegative() {
			return nil, ErrValidation
		}
		item.UnitCost = parsed.Round(2)
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.SupplierID != nil {
		item.SupplierID = req.SupplierID
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}

func (s *Service) load(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}
