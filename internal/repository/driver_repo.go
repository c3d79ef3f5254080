package repository

import (
	"context"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"gorm.io/gorm"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Create(ctx context.Context, d *domain.Driver) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	var d domain.Driver
	if err := r.db.WithContext(ctx).Preload("Vehicle").First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DriverRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Driver, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Driver{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var drivers []domain.Driver
	err := q.Preload("Vehicle").Order("id").Limit(limit).Offset(offset).Find(&drivers).Error
	return drivers, total, err
}

func (r *DriverRepository) Update(ctx context.Context, d *domain.Driver) error {
	d.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DriverRepository) AssignVehicle(ctx context.Context, driverID int64, vehicleID *int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Driver{}).
		Where("id = ?", driverID).
		Updates(map[string]any{"vehicle_id": vehicleID, "updated_at": time.Now()}).Error
}

func (r *DriverRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Driver{}, id).Error
}
