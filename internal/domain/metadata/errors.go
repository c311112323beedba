package metadata

import "errors"

var (
	// Validation errors
	ErrInvalidSubSectorID = errors.New("invalid sub-sector id, expected comma separated integers")
)
