package institution

import "errors"

var (
	// Validation errors
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
