package domain

import "time"

type VehicleStatus string

const (
	VehicleActive  VehicleStatus = "active"
	VehicleInShop  VehicleStatus = "in_shop"
	VehicleRetired VehicleStatus = "retired"
)

type Vehicle struct {
	ID           int64         `json:"id"`
	Plate        string        `json:"plate" validate:"required" gorm:"uniqueIndex"`
	Make         string        `json:"make"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	Mileage      int64         `json:"mileage"`
	Status       VehicleStatus `json:"status"`
	FuelType     string        `json:"fuel_type,omitempty"`
	SerialNumber string        `json:"serial_number,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
