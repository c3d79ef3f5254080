package fleet

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrDriverNotFound  = errors.New("driver not found")
	ErrPlateExists     = errors.New("vehicle plate already registered")
	ErrLicenseExists   = errors.New("driver license already registered")
	ErrVehicleRetired  = errors.New("vehicle is retired")
)
