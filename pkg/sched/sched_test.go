package sched_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/okian/rinkside/pkg/logger"
	"github.com/okian/rinkside/pkg/sched"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestRunner(t *testing.T) {
	Convey("Given a runner with a counting handler", t, func() {
		var ticks atomic.Int64

		Convey("When the handler asks to stop after three ticks", func() {
			r := sched.New(time.Millisecond, func(ctx context.Context) bool {
				return ticks.Add(1) < 3
			}, sched.WithName("test"))
			go r.Run(context.Background())

			select {
			case <-r.Done():
			case <-time.After(time.Second):
				t.Fatal("runner did not stop on its own")
			}

			Convey("Then the loop exits with the final tick counted", func() {
				So(ticks.Load(), ShouldEqual, 3)
			})
		})

		Convey("When Stop is called", func() {
			r := sched.New(time.Millisecond, func(ctx context.Context) bool {
				ticks.Add(1)
				return true
			})
			go r.Run(context.Background())
			time.Sleep(10 * time.Millisecond)

			err := r.Stop(context.Background())

			Convey("Then the loop drains cleanly", func() {
				So(err, ShouldBeNil)
				final := ticks.Load()
				So(final, ShouldBeGreaterThan, 0)
				time.Sleep(5 * time.Millisecond)
				So(ticks.Load(), ShouldEqual, final)
			})
		})

		Convey("When the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			r := sched.New(time.Millisecond, func(ctx context.Context) bool {
				ticks.Add(1)
				return true
			})
			go r.Run(ctx)
			cancel()

			select {
			case <-r.Done():
			case <-time.After(time.Second):
				t.Fatal("runner ignored context cancellation")
			}
		})

		Convey("When Stop is called twice", func() {
			r := sched.New(time.Millisecond, func(ctx context.Context) bool { return true })
			go r.Run(context.Background())

			So(r.Stop(context.Background()), ShouldBeNil)
			So(r.Stop(context.Background()), ShouldBeNil)
		})
	})
}
