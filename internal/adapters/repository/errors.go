package repository

import (
	"errors"
)

// Sentinel kinds for repository errors.
var (
	ErrNoGame = errors.New("no game selected")
)
