// Package aggregate computes read-only summaries over a filtered event
// set. Every function is a deterministic pure function of its input,
// total over the empty set; results are recomputed on demand and never
// cached across filter changes.
package aggregate

import (
	"math"
	"sort"

	"github.com/okian/rinkside/internal/domain/classify"
	"github.com/okian/rinkside/internal/domain/model"
	"github.com/okian/rinkside/internal/domain/types"
)

const percent = 100.0

// PlayerStats tallies wins and losses per player over faceoff-style
// records. The primary actor is credited with a win; the opponent, when
// known, is debited with a loss. A player seen only as an opponent gets
// their team resolved from any record where they are the primary actor;
// failing that the team stays "Unknown".
func PlayerStats(events []model.ClassifiedEvent) map[string]types.PlayerStats {
	stats := make(map[string]types.PlayerStats)

	for i := range events {
		e := &events[i]
		if !e.IsFaceoff() || e.Player == "" {
			continue
		}

		winner := ensurePlayer(stats, e.Player, e.TeamDisplay)
		winner.Wins++
		winner.Total++
		winner.ZoneCounts[e.Zone]++
		stats[e.Player] = winner

		if e.Opponent == "" || e.Opponent == classify.UnknownOpponent {
			continue
		}
		loser := ensurePlayer(stats, e.Opponent, resolveTeam(events, e.Opponent))
		loser.Losses++
		loser.Total++
		stats[e.Opponent] = loser
	}

	for name, s := range stats {
		s.WinRate = winRate(s.Wins, s.Total)
		stats[name] = s
	}
	return stats
}

func ensurePlayer(stats map[string]types.PlayerStats, player, team string) types.PlayerStats {
	if s, ok := stats[player]; ok {
		// A record where the player is the primary actor is the
		// authoritative team source.
		if s.Team == classify.UnknownOpponent && team != classify.UnknownOpponent {
			s.Team = team
		}
		return s
	}
	return types.PlayerStats{
		Player:     player,
		Team:       team,
		ZoneCounts: make(map[types.Zone]int),
	}
}

// resolveTeam searches the set for a record where the player is the
// primary actor. Opponent columns carry no team affiliation.
func resolveTeam(events []model.ClassifiedEvent, player string) string {
	for i := range events {
		if events[i].Player == player {
			return events[i].TeamDisplay
		}
	}
	return classify.UnknownOpponent
}

// winRate is the rounded simple-stats percentage; zero totals yield
// zero, never a division fault.
func winRate(wins, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(wins) / float64(total) * percent))
}

// TopPlayers flattens and orders player stats by activity, most total
// faceoffs first, name as the tie-breaker. A non-positive limit keeps
// everyone.
func TopPlayers(stats map[string]types.PlayerStats, limit int) []types.PlayerStats {
	out := make([]types.PlayerStats, 0, len(stats))
	for _, s := range stats {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Player < out[j].Player
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// HeadToHead builds per-player, per-opponent win/loss records. Each
// faceoff increments the winner's record against the loser and the
// loser's record against the winner; pair win rates stay unrounded.
func HeadToHead(events []model.ClassifiedEvent) map[string]types.PlayerMatchups {
	players := make(map[string]types.PlayerMatchups)

	ensure := func(player, team string) types.PlayerMatchups {
		if p, ok := players[player]; ok {
			return p
		}
		return types.PlayerMatchups{
			Player:    player,
			Team:      team,
			Opponents: make(map[string]types.OpponentRecord),
		}
	}

	for i := range events {
		e := &events[i]
		if !e.IsFaceoff() || e.Player == "" || e.Opponent == "" {
			continue
		}

		winner := ensure(e.Player, e.TeamDisplay)
		rec := winner.Opponents[e.Opponent]
		rec.Wins++
		rec.Total++
		winner.Opponents[e.Opponent] = rec
		winner.TotalFaceoffs++
		players[e.Player] = winner

		loser := ensure(e.Opponent, resolveTeam(events, e.Opponent))
		rec = loser.Opponents[e.Player]
		rec.Losses++
		rec.Total++
		loser.Opponents[e.Player] = rec
		loser.TotalFaceoffs++
		players[e.Opponent] = loser
	}

	for name, p := range players {
		for opp, rec := range p.Opponents {
			if rec.Total > 0 {
				rec.WinRate = float64(rec.Wins) / float64(rec.Total) * percent
			}
			p.Opponents[opp] = rec
		}
		players[name] = p
	}
	return players
}

// TopMatchups flattens head-to-head records into presentation rows,
// dropping pairs below minTotal and ordering by pair activity. A
// non-positive limit keeps every row.
func TopMatchups(players map[string]types.PlayerMatchups, minTotal, limit int) []types.Matchup {
	rows := make([]types.Matchup, 0, len(players))
	for _, p := range players {
		for opp, rec := range p.Opponents {
			if rec.Total < minTotal {
				continue
			}
			rows = append(rows, types.Matchup{
				Player:   p.Player,
				Team:     p.Team,
				Opponent: opp,
				Wins:     rec.Wins,
				Losses:   rec.Losses,
				Total:    rec.Total,
				WinRate:  rec.WinRate,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		if rows[i].Player != rows[j].Player {
			return rows[i].Player < rows[j].Player
		}
		return rows[i].Opponent < rows[j].Opponent
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// ZoneSplit tallies faceoff wins per team for each faceoff zone. A
// zone with no wins reports HasData false and an empty share map
// rather than a division fault.
func ZoneSplit(events []model.ClassifiedEvent, teams []string) []types.ZoneShare {
	return splitByZone(events, teams, types.FaceoffZones(), func(e *model.ClassifiedEvent) bool {
		return e.IsFaceoff()
	})
}

// ShotZoneSplit tallies shot and goal attempts per team for each shot
// zone, most dangerous first.
func ShotZoneSplit(events []model.ClassifiedEvent, teams []string) []types.ZoneShare {
	return splitByZone(events, teams, types.ShotZones(), func(e *model.ClassifiedEvent) bool {
		return e.Kind == model.KindShot || e.Kind == model.KindGoal
	})
}

func splitByZone(events []model.ClassifiedEvent, teams []string, zones []types.Zone, include func(*model.ClassifiedEvent) bool) []types.ZoneShare {
	out := make([]types.ZoneShare, 0, len(zones))
	for _, zone := range zones {
		share := types.ZoneShare{
			Zone:  zone,
			Wins:  make(map[string]int, len(teams)),
			Share: make(map[string]float64, len(teams)),
		}
		for _, team := range teams {
			share.Wins[team] = 0
		}
		for i := range events {
			e := &events[i]
			if e.Zone != zone || !include(e) {
				continue
			}
			if _, tracked := share.Wins[e.TeamDisplay]; !tracked {
				continue
			}
			share.Wins[e.TeamDisplay]++
			share.Total++
		}
		if share.Total > 0 {
			share.HasData = true
			for team, wins := range share.Wins {
				share.Share[team] = float64(wins) / float64(share.Total) * percent
			}
		}
		out = append(out, share)
	}
	return out
}

// TeamSummary computes the two-team stat card: faceoff wins and win
// percentage for each side over their combined total, rounded to one
// decimal. Shot and goal records in the set are ignored; the card
// counts draws only.
func TeamSummary(events []model.ClassifiedEvent, team1, team2 string) types.Summary {
	s := types.Summary{Team1: team1, Team2: team2}
	for i := range events {
		if !events[i].IsFaceoff() {
			continue
		}
		switch events[i].TeamDisplay {
		case team1:
			s.Team1Wins++
		case team2:
			s.Team2Wins++
		}
	}
	s.Total = s.Team1Wins + s.Team2Wins
	if s.Total > 0 {
		s.Team1WinRate = round1(float64(s.Team1Wins) / float64(s.Total) * percent)
		s.Team2WinRate = round1(float64(s.Team2Wins) / float64(s.Total) * percent)
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
