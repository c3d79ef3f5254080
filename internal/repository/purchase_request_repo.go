package repository

import (
	"context"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseRequestRepository struct {
	db *gorm.DB
}

func NewPurchaseRequestRepository(db *gorm.DB) *PurchaseRequestRepository {
	return &PurchaseRequestRepository{db: db}
}

func (r *PurchaseRequestRepository) Create(ctx context.Context, p *domain.PurchaseRequest) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PurchaseRequestRepository) GetByID(ctx context.Context, id int64) (*domain.PurchaseRequest, error) {
	var p domain.PurchaseRequest
	err := r.db.WithContext(ctx).
		Preload("Inventory").
		Preload("Supplier").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type PurchaseListFilter struct {
	Status         string
	Urgency        string
	SupplierID     *int64
	ServiceOrderID *int64
	Limit          int
	Offset         int
}

func (r *PurchaseRequestRepository) List(ctx context.Context, f PurchaseListFilter) ([]domain.PurchaseRequest, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.PurchaseRequest{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Urgency != "" {
		q = q.Where("urgency = ?", f.Urgency)
	}
	if f.SupplierID != nil {
		q = q.Where("supplier_id = ?", *f.SupplierID)
	}
	if f.ServiceOrderID != nil {
		q = q.Where("service_order_id = ?", *f.ServiceOrderID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []domain.PurchaseRequest
	err := q.Preload("Inventory").Order("id DESC").Limit(f.Limit).Offset(f.Offset).Find(&requests).Error
	return requests, total, err
}

// UpdateTransition writes a status change and its supplementary fields in a
// single version-checked UPDATE. Zero rows affected means another request got
// there first (or the row is gone) and surfaces as ErrVersionConflict.
func (r *PurchaseRequestRepository) UpdateTransition(ctx context.Context, id, version int64, fields map[string]any) error {
	fields["version"] = version + 1
	fields["updated_at"] = time.Now()

	tx := r.db.WithContext(ctx).
		Model(&domain.PurchaseRequest{}).
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

// UpdateTotal overwrites the persisted derived total, version-checked.
func (r *PurchaseRequestRepository) UpdateTotal(ctx context.Context, id, version int64, total decimal.Decimal) error {
	return r.UpdateTransition(ctx, id, version, map[string]any{"total_amount": total})
}

// StatusByID is a light read used when flagging stale replenishment links.
func (r *PurchaseRequestRepository) StatusByID(ctx context.Context, id int64) (domain.PurchaseStatus, error) {
	var status string
	err := r.db.WithContext(ctx).
		Model(&domain.PurchaseRequest{}).
		Where("id = ?", id).
		Pluck("status", &status).Error
	if err != nil {
		return "", err
	}
	return domain.PurchaseStatus(status), nil
}
