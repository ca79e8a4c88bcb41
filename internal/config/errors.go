package config

import "errors"

// Loading and validation error kinds, matchable with errors.Is.
var (
	// ErrLoadConfig wraps failures reading or parsing a config source.
	ErrLoadConfig = errors.New("config: load failed")
	// ErrInvalidConfig wraps values that parsed but cannot run the
	// service, like an empty listen address or a zero tick interval.
	ErrInvalidConfig = errors.New("config: invalid value")
)
