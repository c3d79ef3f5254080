package report

import (
	"context"
	"errors"
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/repository"
)

var ErrBadWindow = errors.New("invalid report window")

type Service struct {
	reports ReportRepository
}

func NewService(reports ReportRepository) *Service {
	return &Service{reports: reports}
}

// window defaults to the last 30 days when the caller gives nothing.
func window(from, to *time.Time) (time.Time, time.Time, error) {
	end := time.Now()
	if to != nil {
		end = *to
	}
	start := end.AddDate(0, 0, -30)
	if from != nil {
		start = *from
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrBadWindow
	}
	return start, end, nil
}

func (s *Service) VehicleCosts(ctx context.Context, from, to *time.Time) ([]repository.VehicleCostRow, error) {
	start, end, err := window(from, to)
	if err != nil {
		return nil, err
	}
	return s.reports.VehicleCosts(ctx, start, end)
}

func (s *Service) SupplierSpend(ctx context.Context, from, to *time.Time) ([]repository.SupplierSpendRow, error) {
	start, end, err := window(from, to)
	if err != nil {
		return nil, err
	}
	return s.reports.SupplierSpend(ctx, start, end)
}

func (s *Service) Dashboard(ctx context.Context) (*repository.DashboardCounts, error) {
	return s.reports.Dashboard(ctx)
}
