package repository

import (
	"context"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Vehicle, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Vehicle{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vehicles []domain.Vehicle
	err := q.Order("id").Limit(limit).Offset(offset).Find(&vehicles).Error
	return vehicles, total, err
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	v.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VehicleRepository) UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Vehicle{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Vehicle{}, id).Error
}
