package purchase

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("purchase request not found")
	ErrInventoryNotFound = errors.New("inventory item not found")
)
