package service

import (
	"errors"
)

// Sentinel kinds for service errors.
var (
	ErrNoFeed    = errors.New("no feed configured")
	ErrNoGameID  = errors.New("game id must not be empty")
	ErrLoadGames = errors.New("loading game schedule failed")
	ErrLoadGame  = errors.New("loading game failed")
)
