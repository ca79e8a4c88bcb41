// Package sched runs a handler on a fixed interval until it asks to
// stop or the context is canceled. It backs the playback ticker and
// the background metrics updaters.
package sched

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/rinkside/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// Handler is invoked on every tick. Returning false stops the runner.
type Handler func(ctx context.Context) bool

// Runner drives a Handler on a fixed interval.
type Runner struct {
	interval time.Duration
	handler  Handler
	name     string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// New creates a runner. The interval must be positive.
func New(interval time.Duration, handler Handler, opts ...Option) *Runner {
	r := &Runner{
		interval: interval,
		handler:  handler,
		name:     "sched",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("sched"),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.name != "sched" {
		r.logger = r.logger.Named(r.name)
	}

	return r
}

// Run executes the tick loop until the handler returns false, Stop is
// called, or ctx is canceled. It is intended to be run on its own
// goroutine.
func (r *Runner) Run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.shutdown:
			return
		case <-ticker.C:
			if !r.handler(ctx) {
				return
			}
		}
	}
}

// Stop signals the loop to exit and waits for it to drain.
func (r *Runner) Stop(ctx context.Context) error {
	select {
	case <-r.shutdown:
		// Already stopping.
	default:
		close(r.shutdown)
	}

	waitCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	select {
	case <-r.done:
		return nil
	case <-waitCtx.Done():
		r.logger.Warn(ctx, "runner shutdown timed out")
		return fmt.Errorf("runner shutdown timed out: %w", waitCtx.Err())
	}
}

// Done reports loop completion, for callers that need to join.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}
