package repository

import (
	"context"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id int64) (*domain.MaintenanceRecord, error) {
	var m domain.MaintenanceRecord
	if err := r.db.WithContext(ctx).Preload("Vehicle").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MaintenanceRepository) ListByVehicle(ctx context.Context, vehicleID int64, limit, offset int) ([]domain.MaintenanceRecord, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.MaintenanceRecord{}).Where("vehicle_id = ?", vehicleID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []domain.MaintenanceRecord
	err := q.Order("service_date DESC").Limit(limit).Offset(offset).Find(&records).Error
	return records, total, err
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *domain.MaintenanceRecord) error {
	m.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.MaintenanceRecord{}, id).Error
}
