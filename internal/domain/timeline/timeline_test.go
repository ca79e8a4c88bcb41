package timeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/okian/rinkside/internal/domain/timeline"
	"github.com/okian/rinkside/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

// idle keeps the tick loop from firing so tests can drive Tick directly.
const idle = time.Hour

func TestPlayback(t *testing.T) {
	Convey("Given a controller advancing five percent per tick", t, func() {
		ctx := context.Background()
		var positions []float64
		c := timeline.New(
			timeline.WithStep(5),
			timeline.WithInterval(idle),
			timeline.WithOnChange(func(pct float64) {
				positions = append(positions, pct)
			}),
		)

		Convey("Then it starts stopped at zero", func() {
			So(c.Status(), ShouldEqual, timeline.StatusStopped)
			So(c.Pct(), ShouldEqual, 0)
		})

		Convey("When ticked to completion", func() {
			c.Start(ctx)
			ticks := 0
			for c.Tick() {
				ticks++
			}

			Convey("Then it clamps at 100 and stops itself", func() {
				So(c.Pct(), ShouldEqual, 100)
				So(c.Status(), ShouldEqual, timeline.StatusStopped)
				So(ticks, ShouldEqual, 19)
				So(positions[len(positions)-1], ShouldEqual, 100)
			})

			Convey("And further ticks are rejected", func() {
				So(c.Tick(), ShouldBeFalse)
				So(c.Pct(), ShouldEqual, 100)
			})

			Convey("And restarting rewinds to zero", func() {
				c.Start(ctx)
				So(c.Status(), ShouldEqual, timeline.StatusPlaying)
				So(c.Pct(), ShouldEqual, 0)
				c.Pause(ctx)
			})
		})

		Convey("When paused mid-window", func() {
			c.Start(ctx)
			c.Tick()
			c.Tick()
			c.Pause(ctx)

			Convey("Then the position holds", func() {
				So(c.Status(), ShouldEqual, timeline.StatusStopped)
				So(c.Pct(), ShouldEqual, 10)
			})

			Convey("And ticks while stopped do nothing", func() {
				So(c.Tick(), ShouldBeFalse)
				So(c.Pct(), ShouldEqual, 10)
			})
		})

		Convey("When reset", func() {
			c.Start(ctx)
			c.Tick()
			c.Reset(ctx)

			Convey("Then it is stopped at zero and the callback saw it", func() {
				So(c.Status(), ShouldEqual, timeline.StatusStopped)
				So(c.Pct(), ShouldEqual, 0)
				So(positions[len(positions)-1], ShouldEqual, 0)
			})
		})
	})
}

func TestSeek(t *testing.T) {
	Convey("Given a stopped controller", t, func() {
		c := timeline.New(timeline.WithInterval(idle))

		Convey("When seeking in range", func() {
			c.Seek(42.5)
			So(c.Pct(), ShouldEqual, 42.5)
			So(c.Status(), ShouldEqual, timeline.StatusStopped)
		})

		Convey("When seeking out of range", func() {
			c.Seek(150)
			So(c.Pct(), ShouldEqual, 100)
			c.Seek(-3)
			So(c.Pct(), ShouldEqual, 0)
		})
	})
}

func TestTickLoop(t *testing.T) {
	Convey("Given a fast controller driven by its own ticker", t, func() {
		ctx := context.Background()
		done := make(chan struct{})
		c := timeline.New(
			timeline.WithStep(25),
			timeline.WithInterval(time.Millisecond),
			timeline.WithOnChange(func(pct float64) {
				if pct >= 100 {
					select {
					case <-done:
					default:
						close(done)
					}
				}
			}),
		)

		Convey("When started", func() {
			c.Start(ctx)

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("playback never reached the end")
			}

			Convey("Then it runs to the end and stops", func() {
				So(c.Pct(), ShouldEqual, 100)
				So(c.Status(), ShouldEqual, timeline.StatusStopped)
			})
		})
	})
}

func TestTickLoopOutlivesCaller(t *testing.T) {
	Convey("Given a caller whose context is already cancelled", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		done := make(chan struct{})
		c := timeline.New(
			timeline.WithStep(25),
			timeline.WithInterval(time.Millisecond),
			timeline.WithOnChange(func(pct float64) {
				if pct >= 100 {
					select {
					case <-done:
					default:
						close(done)
					}
				}
			}),
		)

		Convey("When playback is started with that context", func() {
			c.Start(ctx)

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("tick loop died with the caller's context")
			}

			Convey("Then ticks keep firing to the end", func() {
				So(c.Pct(), ShouldEqual, 100)
				So(c.Status(), ShouldEqual, timeline.StatusStopped)
			})
		})
	})
}

func TestPercentageToSeconds(t *testing.T) {
	Convey("Given slider positions", t, func() {
		So(timeline.PercentageToSeconds(50, 1), ShouldEqual, 600)
		So(timeline.PercentageToSeconds(100, 3), ShouldEqual, 3600)
		So(timeline.PercentageToSeconds(0, 3), ShouldEqual, 0)
	})
}
