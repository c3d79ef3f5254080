package fleet

import (
	"time"

	"github.com/JorgeWendell/fleetmanager-sub000/internal/domain"
)

type CreateVehicleRequest struct {
	Plate        string `json:"plate" validate:"required"`
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year,omitempty" validate:"omitempty,gte=1950"`
	Mileage      int64  `json:"mileage,omitempty" validate:"omitempty,gte=0"`
	FuelType     string `json:"fuel_type,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
}

type UpdateVehicleRequest struct {
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty" validate:"omitempty,gte=1950"`
	Mileage      *int64  `json:"mileage,omitempty" validate:"omitempty,gte=0"`
	FuelType     *string `json:"fuel_type,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
}

type VehicleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active in_shop retired"`
}

type CreateDriverRequest struct {
	Name          string     `json:"name" validate:"required"`
	LicenseNumber string     `json:"license_number" validate:"required"`
	LicenseExpiry *time.Time `json:"license_expiry,omitempty"`
	Phone         string     `json:"phone,omitempty"`
}

type UpdateDriverRequest struct {
	Name          *string    `json:"name,omitempty"`
	LicenseExpiry *time.Time `json:"license_expiry,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=available on_route inactive"`
}

type AssignVehicleRequest struct {
	VehicleID *int64 `json:"vehicle_id"` // null unassigns
}

type VehicleListResponse struct {
	Vehicles []domain.Vehicle `json:"vehicles"`
	Total    int64            `json:"total"`
}

type DriverListResponse struct {
	Drivers []domain.Driver `json:"drivers"`
	Total   int64           `json:"total"`
}
