// Package timeline drives the animated time-window playback. A
// controller owns a percentage position on the 0-100 slider scale and
// advances it on a fixed tick while playing; every position change is
// pushed to the registered callback so the filter state can follow.
package timeline

import (
	"context"
	"sync"
	"time"

	"github.com/okian/rinkside/pkg/logger"
	"github.com/okian/rinkside/pkg/metrics"
	"github.com/okian/rinkside/pkg/sched"
)

// Default playback configuration.
const (
	defaultStep     = 1.0
	defaultInterval = 100 * time.Millisecond
	maxPct          = 100.0
)

// Status is the playback state.
type Status string

// Playback states.
const (
	StatusStopped Status = "stopped"
	StatusPlaying Status = "playing"
)

// OnChange receives every position update, including Reset and Seek.
// It is invoked outside the controller's lock and may safely call
// back into it.
type OnChange func(pct float64)

// Controller owns the playback position. All methods are safe for
// concurrent use; the tick loop and the HTTP surface share it.
type Controller struct {
	mu       sync.Mutex
	pct      float64
	status   Status
	step     float64
	interval time.Duration
	onChange OnChange
	runner   *sched.Runner

	logger logger.Logger
}

// New creates a stopped controller at position zero.
func New(opts ...Option) *Controller {
	c := &Controller{
		status:   StatusStopped,
		step:     defaultStep,
		interval: defaultInterval,
		logger:   logger.Get().Named("timeline"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pct returns the current position on the 0-100 scale.
func (c *Controller) Pct() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pct
}

// Status returns the current playback state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Start begins playback. A controller already at the end restarts
// from zero; starting while playing is a no-op.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.status == StatusPlaying {
		c.mu.Unlock()
		return
	}
	rewound := false
	if c.pct >= maxPct {
		c.pct = 0
		rewound = true
	}
	c.status = StatusPlaying
	c.runner = sched.New(c.interval, func(ctx context.Context) bool {
		return c.Tick()
	}, sched.WithName("timeline"), sched.WithLogger(c.logger))
	runner := c.runner
	c.mu.Unlock()

	if rewound {
		c.notify(0)
	}
	c.logger.Debug(ctx, "playback started")
	// The tick loop must outlive the caller: HTTP handlers pass their
	// request context, which is cancelled as soon as the response is
	// written. Pause and Tick own the runner's termination.
	go runner.Run(context.WithoutCancel(ctx))
}

// Pause halts playback, keeping the current position.
func (c *Controller) Pause(ctx context.Context) {
	c.mu.Lock()
	if c.status != StatusPlaying {
		c.mu.Unlock()
		return
	}
	c.status = StatusStopped
	runner := c.runner
	c.runner = nil
	c.mu.Unlock()

	if runner != nil {
		if err := runner.Stop(ctx); err != nil {
			c.logger.Warn(ctx, "ticker stop failed", logger.Error(err))
		}
	}
}

// Reset stops playback and returns the position to zero.
func (c *Controller) Reset(ctx context.Context) {
	c.Pause(ctx)

	c.mu.Lock()
	c.pct = 0
	c.mu.Unlock()
	c.notify(0)
}

// Seek moves the position directly, clamping to the 0-100 scale.
// Seeking does not change the playback state.
func (c *Controller) Seek(pct float64) {
	if pct < 0 {
		pct = 0
	}
	if pct > maxPct {
		pct = maxPct
	}

	c.mu.Lock()
	c.pct = pct
	c.mu.Unlock()
	c.notify(pct)
}

// Tick advances one step. It reports false once the end of the window
// is reached, which also flips the controller back to stopped.
func (c *Controller) Tick() bool {
	c.mu.Lock()
	if c.status != StatusPlaying {
		c.mu.Unlock()
		return false
	}

	c.pct += c.step
	finished := false
	if c.pct >= maxPct {
		c.pct = maxPct
		c.status = StatusStopped
		c.runner = nil
		finished = true
	}
	pct := c.pct
	c.mu.Unlock()

	c.notify(pct)
	metrics.RecordTimelineTick()
	return !finished
}

// notify pushes the position to the callback and gauge. Runs without
// the controller lock so the callback may read the controller.
func (c *Controller) notify(pct float64) {
	metrics.UpdateTimelinePosition(pct)
	if c.onChange != nil {
		c.onChange(pct)
	}
}

// PercentageToSeconds converts a slider position to elapsed seconds
// over the given number of selected periods.
func PercentageToSeconds(pct float64, periods int) float64 {
	return pct / maxPct * float64(periods) * 1200
}
