package report_test

import (
	"bytes"
	"testing"

	"github.com/okian/rinkside/internal/domain/model"
	"github.com/okian/rinkside/internal/domain/types"
	"github.com/okian/rinkside/internal/report"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPrintGamesTable(t *testing.T) {
	Convey("Given a game schedule", t, func() {
		games := []model.Game{
			{ID: "2024020001", HomeTeam: "Finland", AwayTeam: "Sweden", Date: "2024-05-18"},
		}

		Convey("When the table is rendered", func() {
			var buf bytes.Buffer
			report.PrintGamesTable(&buf, games)

			Convey("Then it contains the ids and team names", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "2024020001")
				So(out, ShouldContainSubstring, "Finland")
				So(out, ShouldContainSubstring, "Sweden")
			})
		})
	})
}

func TestPrintPlayerTable(t *testing.T) {
	Convey("Given player rows", t, func() {
		rows := []types.PlayerStats{
			{
				Player:  "Aleksander Barkov",
				Team:    "Finland",
				Wins:    7,
				Losses:  3,
				Total:   10,
				WinRate: 70,
				ZoneCounts: map[types.Zone]int{
					types.ZoneDefensive: 4,
					types.ZoneNeutral:   2,
					types.ZoneOffensive: 1,
				},
			},
		}

		Convey("When the table is rendered", func() {
			var buf bytes.Buffer
			report.PrintPlayerTable(&buf, rows)

			Convey("Then it contains the player and the win rate", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "Aleksander Barkov")
				So(out, ShouldContainSubstring, "70%")
			})
		})
	})
}

func TestPrintMatchupTable(t *testing.T) {
	Convey("Given matchup rows", t, func() {
		rows := []types.Matchup{
			{Player: "A", Team: "Finland", Opponent: "B", Wins: 2, Losses: 1, Total: 3, WinRate: 200.0 / 3},
		}

		Convey("When the table is rendered", func() {
			var buf bytes.Buffer
			report.PrintMatchupTable(&buf, rows)

			Convey("Then the win rate is shown with one decimal", func() {
				So(buf.String(), ShouldContainSubstring, "66.7%")
			})
		})
	})
}

func TestPrintZoneTable(t *testing.T) {
	Convey("Given a zone split with one empty zone", t, func() {
		teams := []string{"Finland", "Sweden"}
		split := []types.ZoneShare{
			{
				Zone:    types.ZoneDefensive,
				Wins:    map[string]int{"Finland": 2, "Sweden": 1},
				Share:   map[string]float64{"Finland": 67, "Sweden": 33},
				Total:   3,
				HasData: true,
			},
			{
				Zone:  types.ZoneNeutral,
				Wins:  map[string]int{},
				Share: map[string]float64{},
			},
		}

		Convey("When the table is rendered", func() {
			var buf bytes.Buffer
			report.PrintZoneTable(&buf, split, teams)

			Convey("Then populated zones show shares and empty zones still render", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "2 (67%)")
				So(out, ShouldContainSubstring, string(types.ZoneNeutral))
			})
		})
	})
}

func TestPrintSummary(t *testing.T) {
	Convey("Given a team summary", t, func() {
		s := types.Summary{
			Team1: "Finland", Team2: "Sweden",
			Team1Wins: 2, Team2Wins: 1,
			Team1WinRate: 66.7, Team2WinRate: 33.3,
			Total: 3,
		}

		Convey("When it is printed", func() {
			var buf bytes.Buffer
			report.PrintSummary(&buf, s)

			Convey("Then it carries both rates", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "66.7%")
				So(out, ShouldContainSubstring, "33.3%")
				So(out, ShouldContainSubstring, "Faceoffs: 3")
			})
		})
	})
}
