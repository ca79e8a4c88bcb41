package model_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/rinkside/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEventDecoding(t *testing.T) {
	Convey("Given a feed event record", t, func() {
		Convey("When all fields are present", func() {
			raw := `{
				"event": "Faceoff Win",
				"player": "Hilary Knight",
				"player_2": "Marie-Philip Poulin",
				"team_display": "United States",
				"period": 2,
				"time_seconds": 1350.5,
				"x_coordinate": 130,
				"y_coordinate": 40.5,
				"detail_1": "Forehand",
				"home_team_skaters": 5,
				"away_team_skaters": 4
			}`
			var e model.Event
			err := json.Unmarshal([]byte(raw), &e)

			Convey("Then it should decode every column", func() {
				So(err, ShouldBeNil)
				So(e.Kind, ShouldEqual, model.KindFaceoffWin)
				So(e.Player, ShouldEqual, "Hilary Knight")
				So(e.Player2, ShouldEqual, "Marie-Philip Poulin")
				So(e.TeamDisplay, ShouldEqual, "United States")
				So(e.Period, ShouldEqual, 2)
				So(e.TimeSeconds, ShouldEqual, 1350.5)
				So(e.XCoordinate, ShouldNotBeNil)
				So(*e.XCoordinate, ShouldEqual, 130)
				So(e.HomeSkaters.OK, ShouldBeTrue)
				So(e.HomeSkaters.N, ShouldEqual, 5)
				So(e.AwaySkaters.N, ShouldEqual, 4)
				So(e.IsFaceoff(), ShouldBeTrue)
			})
		})

		Convey("When coordinates and skaters are missing", func() {
			raw := `{"event": "Shot", "player": "A", "team_display": "Canada", "period": 1, "time_seconds": 12}`
			var e model.Event
			err := json.Unmarshal([]byte(raw), &e)

			Convey("Then absent fields decode to their zero state", func() {
				So(err, ShouldBeNil)
				So(e.XCoordinate, ShouldBeNil)
				So(e.YCoordinate, ShouldBeNil)
				So(e.HomeSkaters.OK, ShouldBeFalse)
				So(e.AwaySkaters.OK, ShouldBeFalse)
				So(e.IsFaceoff(), ShouldBeFalse)
			})
		})
	})
}

func TestSkaterCount(t *testing.T) {
	Convey("Given the skater column variants seen in the wild", t, func() {
		cases := []struct {
			raw  string
			n    int
			ok   bool
			name string
		}{
			{`5`, 5, true, "plain number"},
			{`"4"`, 4, true, "numeric string"},
			{`5.0`, 5, true, "float-typed integer"},
			{`null`, 0, false, "null"},
			{`""`, 0, false, "empty string"},
			{`"PP"`, 0, false, "garbage string"},
			{`4.5`, 0, false, "non-integer float"},
		}

		for _, tc := range cases {
			Convey("When decoding "+tc.name, func() {
				var s model.SkaterCount
				err := json.Unmarshal([]byte(tc.raw), &s)
				So(err, ShouldBeNil)
				So(s.N, ShouldEqual, tc.n)
				So(s.OK, ShouldEqual, tc.ok)
			})
		}

		Convey("When round-tripping a present count", func() {
			b, err := json.Marshal(model.SkaterCount{N: 6, OK: true})
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, "6")
		})

		Convey("When round-tripping an absent count", func() {
			b, err := json.Marshal(model.SkaterCount{})
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, "null")
		})
	})
}

func TestGameDecoding(t *testing.T) {
	Convey("Given the schedule payload", t, func() {
		Convey("When ids are strings", func() {
			var g model.Game
			err := json.Unmarshal([]byte(`{"id":"g1","home_team":"Canada","away_team":"United States","date":"2018-02-22"}`), &g)
			So(err, ShouldBeNil)
			So(g.ID, ShouldEqual, "g1")
			So(g.HomeTeam, ShouldEqual, "Canada")
		})

		Convey("When ids are numbers", func() {
			var g model.Game
			err := json.Unmarshal([]byte(`{"id":3,"home_team":"Finland","away_team":"Canada","date":"2018-02-19"}`), &g)
			So(err, ShouldBeNil)
			So(g.ID, ShouldEqual, "3")
		})
	})
}
