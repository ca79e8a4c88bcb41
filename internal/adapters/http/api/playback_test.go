package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/rinkside/internal/adapters/http/api"
	service "github.com/okian/rinkside/internal/app"
	"github.com/okian/rinkside/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// cannedFeed is the minimal upstream needed to load one game.
type cannedFeed struct{}

func (cannedFeed) Games(ctx context.Context) ([]model.Game, error) {
	return []model.Game{{ID: "g1", HomeTeam: "United States", AwayTeam: "Canada"}}, nil
}

func (cannedFeed) Events(ctx context.Context, gameID string) ([]model.Event, error) {
	return []model.Event{
		{Kind: model.KindFaceoffWin, Player: "A", Player2: "B", TeamDisplay: "United States", Period: 1, TimeSeconds: 100},
	}, nil
}

func (cannedFeed) Teams(ctx context.Context, gameID string) ([]string, error) {
	return []string{"United States", "Canada"}, nil
}

func (cannedFeed) Players(ctx context.Context, gameID string) ([]string, error) {
	return []string{"A"}, nil
}

func (cannedFeed) TimeRange(ctx context.Context, gameID string) (model.TimeRange, error) {
	return model.TimeRange{MaxSeconds: 3600}, nil
}

func (cannedFeed) Stats(ctx context.Context, gameID string) (json.RawMessage, error) {
	return json.RawMessage(`{}`), nil
}

// Playback started over HTTP must keep ticking after the request that
// started it has completed and its context is gone.
func TestPlaybackThroughServer(t *testing.T) {
	Convey("Given the API wired to a real service", t, func() {
		ctx := context.Background()
		svc := service.New(
			service.WithFeed(cannedFeed{}),
			service.WithAutoSelectFirst(false),
			service.WithTickInterval(5*time.Millisecond),
			service.WithPlaySpeed(5),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()
		So(svc.SelectGame(ctx, "g1"), ShouldBeNil)

		mux := http.NewServeMux()
		api.NewServer(svc).Register(ctx, mux)
		srv := httptest.NewServer(mux)
		defer srv.Close()

		Convey("When playback is started over HTTP", func() {
			So(post(t, srv.URL+"/api/timeline/play", ``, nil), ShouldEqual, http.StatusOK)

			var tl struct {
				Pct    float64 `json:"pct"`
				Status string  `json:"status"`
			}
			deadline := time.Now().Add(2 * time.Second)
			for time.Now().Before(deadline) {
				So(get(t, srv.URL+"/api/timeline", &tl), ShouldEqual, http.StatusOK)
				if tl.Pct > 0 {
					break
				}
				time.Sleep(10 * time.Millisecond)
			}

			Convey("Then the position advances after the request returns", func() {
				So(tl.Pct, ShouldBeGreaterThan, 0)
			})

			Convey("And pausing over HTTP freezes it", func() {
				So(post(t, srv.URL+"/api/timeline/pause", ``, nil), ShouldEqual, http.StatusOK)
				So(get(t, srv.URL+"/api/timeline", &tl), ShouldEqual, http.StatusOK)
				So(tl.Status, ShouldEqual, "stopped")
			})
		})
	})
}
