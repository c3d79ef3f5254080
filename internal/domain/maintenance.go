package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

type MaintenanceRecord struct {
	ID          int64             `json:"id"`
	VehicleID   int64             `json:"vehicle_id" validate:"required"`
	Type        string            `json:"type"` // oil_change, tires, brakes, inspection, ...
	Description string            `json:"description" gorm:"type:text"`
	ServiceDate time.Time         `json:"service_date"`
	NextDue     *time.Time        `json:"next_due,omitempty"`
	Mileage     int64             `json:"mileage"`
	Cost        decimal.Decimal   `json:"cost" gorm:"type:numeric"`
	Mechanic    string            `json:"mechanic,omitempty"`
	Status      MaintenanceStatus `json:"status"`
	Notes       string            `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}
