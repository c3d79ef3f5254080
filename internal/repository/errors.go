package repository

import "errors"

// ErrVersionConflict means a version-checked update matched no row: either the
// record is gone or another request transitioned it first. Exactly one of two
// concurrent transitions on the same aggregate gets this error.
var ErrVersionConflict = errors.New("version conflict: record was modified concurrently")
