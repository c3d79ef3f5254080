package repository

import (
	"context"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, i *domain.InventoryItem) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *InventoryRepository) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	var i domain.InventoryItem
	if err := r.db.WithContext(ctx).Preload("Supplier").First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InventoryRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.InventoryItem, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.InventoryItem{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR part_number LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.InventoryItem
	err := q.Order("name").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

// ListLowStock returns items at or below their minimum quantity.
func (r *InventoryRepository) ListLowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.WithContext(ctx).
		Where("quantity <= min_quantity").
		Order("quantity").
		Find(&items).Error
	return items, err
}

func (r *InventoryRepository) Update(ctx context.Context, i *domain.InventoryItem) error {
	i.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.InventoryItem{}, id).Error
}
