package filter

import "errors"

// Sentinel kinds for filter errors.
var (
	ErrInvalidState = errors.New("invalid filter state")
)
