package inventory

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("inventory item not found")
)
