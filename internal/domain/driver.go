package domain

import "time"

type DriverStatus string

const (
	DriverAvailable DriverStatus = "available"
	DriverOnRoute   DriverStatus = "on_route"
	DriverInactive  DriverStatus = "inactive"
)

type Driver struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name" validate:"required"`
	LicenseNumber string       `json:"license_number" validate:"required" gorm:"uniqueIndex"`
	LicenseExpiry *time.Time   `json:"license_expiry,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	Status        DriverStatus `json:"status"`
	VehicleID     *int64       `json:"vehicle_id,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}
