package maintenance

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("maintenance record not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
)
