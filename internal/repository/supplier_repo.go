package repository

import (
	"context"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SupplierRepository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	var s domain.Supplier
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Supplier, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Supplier{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var suppliers []domain.Supplier
	err := q.Order("name").Limit(limit).Offset(offset).Find(&suppliers).Error
	return suppliers, total, err
}

func (r *SupplierRepository) Update(ctx context.Context, s *domain.Supplier) error {
	s.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Supplier{}, id).Error
}
