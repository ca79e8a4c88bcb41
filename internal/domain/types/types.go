// Package types contains common types used across the application
package types

import "strings"

// Zone is a coarse rink-region classification derived from coordinates.
// Faceoff events use the three-band model (defensive/neutral/offensive);
// shot events use the slot model (innerSlot/slot/outerSlot/outside).
type Zone string

// Faceoff zones.
const (
	ZoneDefensive Zone = "defensive"
	ZoneNeutral   Zone = "neutral"
	ZoneOffensive Zone = "offensive"
)

// Shot zones.
const (
	ZoneInnerSlot Zone = "innerSlot"
	ZoneSlot      Zone = "slot"
	ZoneOuterSlot Zone = "outerSlot"
	ZoneOutside   Zone = "outside"
)

// FaceoffZones lists the faceoff zone labels in rink order.
func FaceoffZones() []Zone {
	return []Zone{ZoneDefensive, ZoneNeutral, ZoneOffensive}
}

// ShotZones lists the shot zone labels from most to least dangerous.
func ShotZones() []Zone {
	return []Zone{ZoneInnerSlot, ZoneSlot, ZoneOuterSlot, ZoneOutside}
}

// Situation is the skater-count-derived game state.
type Situation string

// SituationEven is even strength. Power-play situations are named after
// the advantaged team, see PowerPlay.
const SituationEven Situation = "5v5"

// PowerPlay builds the situation label for the advantaged team,
// e.g. "canada-powerplay" for "Canada".
func PowerPlay(team string) Situation {
	slug := strings.ToLower(strings.TrimSpace(team))
	slug = strings.ReplaceAll(slug, " ", "-")
	return Situation(slug + "-powerplay")
}

// PlayerStats is the per-player win/loss tally over the active event set.
type PlayerStats struct {
	Player     string       `json:"player"`
	Team       string       `json:"team"`
	Wins       int          `json:"wins"`
	Losses     int          `json:"losses"`
	Total      int          `json:"total"`
	WinRate    int          `json:"win_rate"`
	ZoneCounts map[Zone]int `json:"zone_counts"`
}

// OpponentRecord is one side of a head-to-head matchup.
type OpponentRecord struct {
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Total   int     `json:"total"`
	WinRate float64 `json:"win_rate"`
}

// PlayerMatchups holds a player's per-opponent records.
type PlayerMatchups struct {
	Player        string                    `json:"player"`
	Team          string                    `json:"team"`
	Opponents     map[string]OpponentRecord `json:"opponents"`
	TotalFaceoffs int                       `json:"total_faceoffs"`
}

// Matchup is a flattened head-to-head row for presentation.
type Matchup struct {
	Player   string  `json:"player"`
	Team     string  `json:"team"`
	Opponent string  `json:"opponent"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Total    int     `json:"total"`
	WinRate  float64 `json:"win_rate"`
}

// ZoneShare is the per-zone split of wins between the game's teams.
// HasData distinguishes an empty zone from a zone with tallied wins so
// consumers never divide by zero.
type ZoneShare struct {
	Zone    Zone               `json:"zone"`
	Wins    map[string]int     `json:"wins"`
	Share   map[string]float64 `json:"share"`
	Total   int                `json:"total"`
	HasData bool               `json:"has_data"`
}

// Summary mirrors the two-team stat card: wins and win percentage for
// each side over their combined total.
type Summary struct {
	Team1        string  `json:"team1"`
	Team2        string  `json:"team2"`
	Team1Wins    int     `json:"team1_wins"`
	Team2Wins    int     `json:"team2_wins"`
	Team1WinRate float64 `json:"team1_win_rate"`
	Team2WinRate float64 `json:"team2_win_rate"`
	Total        int     `json:"total"`
}
