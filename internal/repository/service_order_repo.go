package repository

import (
	"context"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServiceOrderRepository struct {
	db *gorm.DB
}

func NewServiceOrderRepository(db *gorm.DB) *ServiceOrderRepository {
	return &ServiceOrderRepository{db: db}
}

func (r *ServiceOrderRepository) Create(ctx context.Context, o *domain.ServiceOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ServiceOrderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	var o domain.ServiceOrder
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Driver").
		Preload("Items").
		Preload("Items.Inventory").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderListFilter struct {
	Status    string
	VehicleID *int64
	Type      string
	Limit     int
	Offset    int
}

func (r *ServiceOrderRepository) List(ctx context.Context, f OrderListFilter) ([]domain.ServiceOrder, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.ServiceOrder{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.VehicleID != nil {
		q = q.Where("vehicle_id = ?", *f.VehicleID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []domain.ServiceOrder
	err := q.Preload("Vehicle").Order("id DESC").Limit(f.Limit).Offset(f.Offset).Find(&orders).Error
	return orders, total, err
}

// UpdateTransition writes a status change and its supplementary fields in a
// single version-checked UPDATE (see PurchaseRequestRepository.UpdateTransition).
func (r *ServiceOrderRepository) UpdateTransition(ctx context.Context, id, version int64, fields map[string]any) error {
	fields["version"] = version + 1
	fields["updated_at"] = time.Now()

	tx := r.db.WithContext(ctx).
		Model(&domain.ServiceOrder{}).
		Where("id = ? AND version = ?", id, version).
		Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

// UpdateEstimatedCost overwrites the persisted derived total, version-checked.
func (r *ServiceOrderRepository) UpdateEstimatedCost(ctx context.Context, id, version int64, cost decimal.Decimal) error {
	return r.UpdateTransition(ctx, id, version, map[string]any{"estimated_cost": cost})
}

func (r *ServiceOrderRepository) CreateItem(ctx context.Context, item *domain.ServiceOrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *ServiceOrderRepository) GetItems(ctx context.Context, orderID int64) ([]domain.ServiceOrderItem, error) {
	var items []domain.ServiceOrderItem
	err := r.db.WithContext(ctx).
		Preload("Inventory").
		Where("order_id = ?", orderID).
		Order("id").
		Find(&items).Error
	return items, err
}
