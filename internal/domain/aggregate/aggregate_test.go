package aggregate_test

import (
	"testing"

	"github.com/okian/rinkside/internal/domain/aggregate"
	"github.com/okian/rinkside/internal/domain/classify"
	"github.com/okian/rinkside/internal/domain/model"
	"github.com/okian/rinkside/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func faceoff(player, opponent, team string, zone types.Zone) model.ClassifiedEvent {
	return model.ClassifiedEvent{
		Event: model.Event{
			Kind:        model.KindFaceoffWin,
			Player:      player,
			Player2:     opponent,
			TeamDisplay: team,
		},
		Zone:     zone,
		Opponent: opponent,
	}
}

func shot(kind, player, team string, zone types.Zone) model.ClassifiedEvent {
	return model.ClassifiedEvent{
		Event: model.Event{
			Kind:        kind,
			Player:      player,
			TeamDisplay: team,
		},
		Zone: zone,
	}
}

func TestPlayerStats(t *testing.T) {
	Convey("Given three faceoffs between two centers", t, func() {
		events := []model.ClassifiedEvent{
			faceoff("A", "B", "United States", types.ZoneNeutral),
			faceoff("B", "A", "Canada", types.ZoneDefensive),
			faceoff("A", "B", "United States", types.ZoneOffensive),
		}

		Convey("When computing player stats", func() {
			stats := aggregate.PlayerStats(events)

			Convey("Then the winner and loser tallies line up", func() {
				So(stats["A"].Wins, ShouldEqual, 2)
				So(stats["A"].Losses, ShouldEqual, 1)
				So(stats["A"].Total, ShouldEqual, 3)
				So(stats["A"].WinRate, ShouldEqual, 67)
				So(stats["B"].Wins, ShouldEqual, 1)
				So(stats["B"].Losses, ShouldEqual, 2)
				So(stats["B"].Total, ShouldEqual, 3)
				So(stats["B"].WinRate, ShouldEqual, 33)
			})

			Convey("Then teams resolve from primary-actor records", func() {
				So(stats["A"].Team, ShouldEqual, "United States")
				So(stats["B"].Team, ShouldEqual, "Canada")
			})

			Convey("Then zone counts track wins only", func() {
				So(stats["A"].ZoneCounts[types.ZoneNeutral], ShouldEqual, 1)
				So(stats["A"].ZoneCounts[types.ZoneOffensive], ShouldEqual, 1)
				So(stats["B"].ZoneCounts[types.ZoneDefensive], ShouldEqual, 1)
			})
		})
	})

	Convey("Given an opponent who never wins a draw", t, func() {
		events := []model.ClassifiedEvent{
			faceoff("A", "B", "United States", types.ZoneNeutral),
		}
		stats := aggregate.PlayerStats(events)

		Convey("Then their team is Unknown", func() {
			So(stats["B"].Team, ShouldEqual, "Unknown")
			So(stats["B"].Losses, ShouldEqual, 1)
		})
	})

	Convey("Given records with the Unknown opponent sentinel", t, func() {
		events := []model.ClassifiedEvent{
			faceoff("A", classify.UnknownOpponent, "United States", types.ZoneNeutral),
		}
		stats := aggregate.PlayerStats(events)

		Convey("Then no loss is attributed to the sentinel", func() {
			So(stats["A"].Wins, ShouldEqual, 1)
			_, ok := stats[classify.UnknownOpponent]
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given an empty filtered set", t, func() {
		So(aggregate.PlayerStats(nil), ShouldBeEmpty)
	})

	Convey("Given non-faceoff records", t, func() {
		events := []model.ClassifiedEvent{
			{Event: model.Event{Kind: model.KindShot, Player: "A", TeamDisplay: "Canada"}},
		}

		Convey("Then they contribute nothing", func() {
			So(aggregate.PlayerStats(events), ShouldBeEmpty)
		})
	})
}

func TestTopPlayers(t *testing.T) {
	Convey("Given player stats with varying activity", t, func() {
		events := []model.ClassifiedEvent{
			faceoff("A", "B", "United States", types.ZoneNeutral),
			faceoff("B", "A", "Canada", types.ZoneNeutral),
			faceoff("A", "C", "United States", types.ZoneNeutral),
			faceoff("C", "D", "Canada", types.ZoneNeutral),
		}
		stats := aggregate.PlayerStats(events)

		Convey("When taking the top two", func() {
			top := aggregate.TopPlayers(stats, 2)

			Convey("Then rows come most-active first", func() {
				So(len(top), ShouldEqual, 2)
				So(top[0].Player, ShouldEqual, "A")
				So(top[0].Total, ShouldEqual, 3)
			})
		})

		Convey("When the limit is non-positive", func() {
			So(len(aggregate.TopPlayers(stats, 0)), ShouldEqual, len(stats))
		})
	})
}

func TestHeadToHead(t *testing.T) {
	Convey("Given repeated matchups", t, func() {
		events := []model.ClassifiedEvent{
			faceoff("A", "B", "United States", types.ZoneNeutral),
			faceoff("B", "A", "Canada", types.ZoneNeutral),
			faceoff("A", "B", "United States", types.ZoneNeutral),
			faceoff("A", "C", "United States", types.ZoneNeutral),
		}

		Convey("When computing head-to-head records", func() {
			h2h := aggregate.HeadToHead(events)

			Convey("Then pair records mirror each other", func() {
				a := h2h["A"]
				b := h2h["B"]
				So(a.Opponents["B"].Wins, ShouldEqual, 2)
				So(a.Opponents["B"].Losses, ShouldEqual, 1)
				So(a.Opponents["B"].Total, ShouldEqual, 3)
				So(b.Opponents["A"].Wins, ShouldEqual, 1)
				So(b.Opponents["A"].Losses, ShouldEqual, 2)
				So(b.Opponents["A"].Total, ShouldEqual, 3)
			})

			Convey("Then pair win rates are unrounded", func() {
				So(h2h["A"].Opponents["B"].WinRate, ShouldAlmostEqual, 200.0/3, 0.0001)
			})

			Convey("Then totals count every draw taken", func() {
				So(h2h["A"].TotalFaceoffs, ShouldEqual, 4)
				So(h2h["B"].TotalFaceoffs, ShouldEqual, 3)
				So(h2h["C"].TotalFaceoffs, ShouldEqual, 1)
			})
		})

		Convey("When flattening to top matchups with a minimum", func() {
			rows := aggregate.TopMatchups(aggregate.HeadToHead(events), 2, 10)

			Convey("Then thin matchups are cut", func() {
				for _, r := range rows {
					So(r.Total, ShouldBeGreaterThanOrEqualTo, 2)
				}
				So(len(rows), ShouldEqual, 2) // A vs B from both sides
				So(rows[0].Total, ShouldEqual, 3)
			})
		})
	})

	Convey("Given an empty set", t, func() {
		So(aggregate.HeadToHead(nil), ShouldBeEmpty)
		So(aggregate.TopMatchups(nil, 2, 10), ShouldBeEmpty)
	})
}

func TestZoneSplit(t *testing.T) {
	Convey("Given wins spread over two zones", t, func() {
		teams := []string{"United States", "Canada"}
		events := []model.ClassifiedEvent{
			faceoff("A", "B", "United States", types.ZoneDefensive),
			faceoff("B", "A", "Canada", types.ZoneDefensive),
			faceoff("A", "B", "United States", types.ZoneDefensive),
			faceoff("C", "D", "Canada", types.ZoneOffensive),
		}

		Convey("When splitting by zone", func() {
			split := aggregate.ZoneSplit(events, teams)

			Convey("Then zones come back in rink order", func() {
				So(len(split), ShouldEqual, 3)
				So(split[0].Zone, ShouldEqual, types.ZoneDefensive)
				So(split[1].Zone, ShouldEqual, types.ZoneNeutral)
				So(split[2].Zone, ShouldEqual, types.ZoneOffensive)
			})

			Convey("Then contested zones carry shares", func() {
				So(split[0].HasData, ShouldBeTrue)
				So(split[0].Wins["United States"], ShouldEqual, 2)
				So(split[0].Wins["Canada"], ShouldEqual, 1)
				So(split[0].Share["United States"], ShouldAlmostEqual, 200.0/3, 0.0001)
			})

			Convey("Then an empty zone is a defined no-data state", func() {
				So(split[1].HasData, ShouldBeFalse)
				So(split[1].Total, ShouldEqual, 0)
				So(split[1].Share, ShouldBeEmpty)
			})
		})
	})
}

func TestShotZoneSplit(t *testing.T) {
	Convey("Given shots, goals, and faceoffs in the same set", t, func() {
		teams := []string{"United States", "Canada"}
		events := []model.ClassifiedEvent{
			shot(model.KindShot, "A", "United States", types.ZoneInnerSlot),
			shot(model.KindGoal, "B", "Canada", types.ZoneInnerSlot),
			shot(model.KindShot, "A", "United States", types.ZoneOutside),
			faceoff("A", "B", "United States", types.ZoneDefensive),
		}

		Convey("When splitting by shot zone", func() {
			split := aggregate.ShotZoneSplit(events, teams)

			Convey("Then zones come back most dangerous first", func() {
				So(len(split), ShouldEqual, 4)
				So(split[0].Zone, ShouldEqual, types.ZoneInnerSlot)
				So(split[3].Zone, ShouldEqual, types.ZoneOutside)
			})

			Convey("Then shots and goals both count, faceoffs do not", func() {
				So(split[0].Total, ShouldEqual, 2)
				So(split[0].Wins["United States"], ShouldEqual, 1)
				So(split[0].Wins["Canada"], ShouldEqual, 1)
				So(split[3].Wins["United States"], ShouldEqual, 1)
				for _, z := range split {
					So(z.Zone, ShouldNotEqual, types.ZoneDefensive)
				}
			})

			Convey("Then untouched zones stay no-data", func() {
				So(split[1].HasData, ShouldBeFalse)
				So(split[2].HasData, ShouldBeFalse)
			})
		})
	})
}

func TestTeamSummary(t *testing.T) {
	Convey("Given a filtered set", t, func() {
		events := []model.ClassifiedEvent{
			faceoff("A", "B", "United States", types.ZoneNeutral),
			faceoff("B", "A", "Canada", types.ZoneNeutral),
			faceoff("A", "B", "United States", types.ZoneNeutral),
		}

		Convey("When summarizing the two tracked teams", func() {
			s := aggregate.TeamSummary(events, "United States", "Canada")

			Convey("Then wins and one-decimal win rates line up", func() {
				So(s.Team1Wins, ShouldEqual, 2)
				So(s.Team2Wins, ShouldEqual, 1)
				So(s.Total, ShouldEqual, 3)
				So(s.Team1WinRate, ShouldEqual, 66.7)
				So(s.Team2WinRate, ShouldEqual, 33.3)
			})
		})

		Convey("When the set is empty", func() {
			s := aggregate.TeamSummary(nil, "United States", "Canada")

			Convey("Then rates are zero, not NaN", func() {
				So(s.Total, ShouldEqual, 0)
				So(s.Team1WinRate, ShouldEqual, 0)
				So(s.Team2WinRate, ShouldEqual, 0)
			})
		})

		Convey("When the set also carries shots and goals", func() {
			mixed := append(events,
				shot(model.KindShot, "A", "United States", types.ZoneSlot),
				shot(model.KindGoal, "A", "United States", types.ZoneInnerSlot),
				shot(model.KindShot, "B", "Canada", types.ZoneOutside),
			)
			s := aggregate.TeamSummary(mixed, "United States", "Canada")

			Convey("Then the card counts draws only", func() {
				So(s.Team1Wins, ShouldEqual, 2)
				So(s.Team2Wins, ShouldEqual, 1)
				So(s.Total, ShouldEqual, 3)
			})
		})
	})
}
