package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type VehicleCostRow struct {
	VehicleID       int64   `gorm:"column:vehicle_id" json:"vehicle_id"`
	Plate           string  `gorm:"column:plate" json:"plate"`
	MaintenanceCost float64 `gorm:"column:maintenance_cost" json:"maintenance_cost"`
	ServiceCost     float64 `gorm:"column:service_cost" json:"service_cost"`
	OrderCount      int64   `gorm:"column:order_count" json:"order_count"`
}

// VehicleCosts aggregates completed maintenance and service-order spend per
// vehicle over a date window.
func (r *ReportRepository) VehicleCosts(ctx context.Context, from, to time.Time) ([]VehicleCostRow, error) {
	q := `
SELECT v.id AS vehicle_id,
       v.plate AS plate,
       COALESCE((SELECT SUM(m.cost) FROM maintenance_records m
                  WHERE m.vehicle_id = v.id AND m.status = 'completed'
                    AND m.service_date BETWEEN ? AND ?), 0) AS maintenance_cost,
       COALESCE((SELECT SUM(o.estimated_cost) FROM service_orders o
                  WHERE o.vehicle_id = v.id AND o.status = 'completed'
                    AND o.updated_at BETWEEN ? AND ?), 0) AS service_cost,
       (SELECT COUNT(1) FROM service_orders o
         WHERE o.vehicle_id = v.id AND o.status = 'completed'
           AND o.updated_at BETWEEN ? AND ?) AS order_count
FROM vehicles v
ORDER BY v.id
`
	var rows []VehicleCostRow
	err := r.db.WithContext(ctx).Raw(q, from, to, from, to, from, to).Scan(&rows).Error
	return rows, err
}

type SupplierSpendRow struct {
	SupplierID   int64   `gorm:"column:supplier_id" json:"supplier_id"`
	SupplierName string  `gorm:"column:supplier_name" json:"supplier_name"`
	Spend        float64 `gorm:"column:spend" json:"spend"`
	RequestCount int64   `gorm:"column:request_count" json:"request_count"`
}

// SupplierSpend sums received purchase-request totals per supplier.
func (r *ReportRepository) SupplierSpend(ctx context.Context, from, to time.Time) ([]SupplierSpendRow, error) {
	q := `
SELECT s.id AS supplier_id,
       s.name AS supplier_name,
       COALESCE(SUM(p.total_amount), 0) AS spend,
       COUNT(p.id) AS request_count
FROM suppliers s
JOIN purchase_requests p ON p.supplier_id = s.id
WHERE p.status = 'received' AND p.purchase_date BETWEEN ? AND ?
GROUP BY s.id, s.name
ORDER BY spend DESC
`
	var rows []SupplierSpendRow
	err := r.db.WithContext(ctx).Raw(q, from, to).Scan(&rows).Error
	return rows, err
}

type DashboardCounts struct {
	OpenOrders       int64 `json:"open_orders"`
	InProgressOrders int64 `json:"in_progress_orders"`
	PendingRequests  int64 `json:"pending_requests"`
	ApprovedRequests int64 `json:"approved_requests"`
	LowStockItems    int64 `json:"low_stock_items"`
	ActiveVehicles   int64 `json:"active_vehicles"`
}

func (r *ReportRepository) Dashboard(ctx context.Context) (*DashboardCounts, error) {
	var d DashboardCounts
	type count struct {
		q    string
		dest *int64
	}
	counts := []count{
		{"SELECT COUNT(1) FROM service_orders WHERE status = 'open'", &d.OpenOrders},
		{"SELECT COUNT(1) FROM service_orders WHERE status = 'in_progress'", &d.InProgressOrders},
		{"SELECT COUNT(1) FROM purchase_requests WHERE status = 'pending'", &d.PendingRequests},
		{"SELECT COUNT(1) FROM purchase_requests WHERE status = 'approved'", &d.ApprovedRequests},
		{"SELECT COUNT(1) FROM inventory_items WHERE quantity <= min_quantity", &d.LowStockItems},
		{"SELECT COUNT(1) FROM vehicles WHERE status = 'active'", &d.ActiveVehicles},
	}
	for _, c := range counts {
		if err := r.db.WithContext(ctx).Raw(c.q).Scan(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &d, nil
}
