package service

import (
	"time"

	"github.com/okian/rinkside/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFeed sets the upstream feed dependency.
func WithFeed(feed Feed) Option {
	return func(s *Service) {
		if feed != nil {
			s.feed = feed
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSides names the home and away power-play attribution sides.
func WithSides(home, away string) Option {
	return func(s *Service) {
		if home != "" {
			s.homeSide = home
		}
		if away != "" {
			s.awaySide = away
		}
	}
}

// WithTickInterval sets the playback tick cadence.
func WithTickInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.tickInterval = interval
		}
	}
}

// WithPlaySpeed sets the percentage the time window advances per tick.
func WithPlaySpeed(speed float64) Option {
	return func(s *Service) {
		if speed > 0 {
			s.playSpeed = speed
		}
	}
}

// WithTableLimit caps the rows returned by the player and matchup tables.
func WithTableLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxTableLimit = limit
		}
	}
}

// WithMinMatchupTotal hides head-to-head pairs with fewer faceoffs.
func WithMinMatchupTotal(minTotal int) Option {
	return func(s *Service) {
		if minTotal > 0 {
			s.minMatchupTotal = minTotal
		}
	}
}

// WithAutoSelectFirst loads the first listed game during Start.
func WithAutoSelectFirst(enabled bool) Option {
	return func(s *Service) {
		s.autoSelectFirst = enabled
	}
}
