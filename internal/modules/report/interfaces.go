package report

import (
	"context"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/repository"
)

type ReportRepository interface {
	VehicleCosts(ctx context.Context, from, to time.Time) ([]repository.VehicleCostRow, error)
	SupplierSpend(ctx context.Context, from, to time.Time) ([]repository.SupplierSpendRow, error)
	Dashboard(ctx context.Context) (*repository.DashboardCounts, error)
}
