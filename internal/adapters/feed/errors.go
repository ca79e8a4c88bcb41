package feed

import (
	"errors"
)

// Sentinel kinds for feed errors.
var (
	ErrUpstream = errors.New("upstream feed failed")
	ErrDecode   = errors.New("upstream payload decode failed")
)
