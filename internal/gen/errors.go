package gen

import "errors"

// Sentinel kinds for generator configuration errors.
var (
	ErrInvalidRowCount = errors.New("row count must be positive")
	ErrEmptyPool       = errors.New("identifier pool must not be empty")
)
