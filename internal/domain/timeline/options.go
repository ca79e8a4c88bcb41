package timeline

import (
	"time"

	"github.com/okian/rinkside/pkg/logger"
)

// Option applies a configuration option to the Controller.
type Option func(*Controller)

// WithStep sets the percentage advanced per tick.
func WithStep(step float64) Option {
	return func(c *Controller) {
		if step > 0 {
			c.step = step
		}
	}
}

// WithInterval sets the wall-clock time between ticks.
func WithInterval(interval time.Duration) Option {
	return func(c *Controller) {
		if interval > 0 {
			c.interval = interval
		}
	}
}

// WithOnChange registers the position callback.
func WithOnChange(fn OnChange) Option {
	return func(c *Controller) {
		if fn != nil {
			c.onChange = fn
		}
	}
}

// WithLogger sets a custom logger for the controller.
func WithLogger(logger logger.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}
