package maintenance

import (
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
)

type CreateRequest struct {
	VehicleID   int64      `json:"vehicle_id" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Description string     `json:"description,omitempty"`
	ServiceDate *time.Time `json:"service_date,omitempty"`
	NextDue     *time.Time `json:"next_due,omitempty"`
	Mileage     int64      `json:"mileage,omitempty" validate:"omitempty,gte=0"`
	Cost        string     `json:"cost,omitempty"`
	Mechanic    string     `json:"mechanic,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type UpdateRequest struct {
	Type        *string    `json:"type,omitempty"`
	Description *string    `json:"description,omitempty"`
	ServiceDate *time.Time `json:"service_date,omitempty"`
	NextDue     *time.Time `json:"next_due,omitempty"`
	Mileage     *int64     `json:"mileage,omitempty" validate:"omitempty,gte=0"`
	Cost        *string    `json:"cost,omitempty"`
	Mechanic    *string    `json:"mechanic,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Notes       *string    `json:"notes,omitempty"`
}

type ListResponse struct {
	Records []domain.MaintenanceRecord `json:"records"`
	Total   int64                      `json:"total"`
}
