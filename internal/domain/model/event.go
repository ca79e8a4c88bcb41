// Package model contains domain models passed between layers.
package model

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/okian/rinkside/internal/domain/types"
)

// Event kind labels as they appear in the feed's "event" column.
const (
	KindFaceoffWin = "Faceoff Win"
	KindShot       = "Shot"
	KindGoal       = "Goal"
)

// Event is a single tracked game action as delivered by the feed.
// Fields mirror the JSON shape of GET /api/events. Records are
// immutable once loaded; a game switch replaces them wholesale.
type Event struct {
	Kind        string      `json:"event"`
	Player      string      `json:"player"`
	Player2     string      `json:"player_2"`
	TeamDisplay string      `json:"team_display"`
	Period      int         `json:"period"`
	TimeSeconds float64     `json:"time_seconds"`
	XCoordinate *float64    `json:"x_coordinate"`
	YCoordinate *float64    `json:"y_coordinate"`
	Detail1     string      `json:"detail_1"`
	Detail2     string      `json:"detail_2"`
	Detail3     string      `json:"detail_3"`
	Detail4     string      `json:"detail_4"`
	HomeSkaters SkaterCount `json:"home_team_skaters"`
	AwaySkaters SkaterCount `json:"away_team_skaters"`
}

// IsFaceoff reports whether the record carries faceoff win/loss semantics.
func (e *Event) IsFaceoff() bool {
	return e.Kind == KindFaceoffWin
}

// SkaterCount decodes the feed's skater columns, which arrive as JSON
// numbers, numeric strings, or null depending on the export. A value
// that is absent or unparseable leaves OK false; callers fall back to
// even strength in that case rather than rejecting the record.
type SkaterCount struct {
	N  int
	OK bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SkaterCount) UnmarshalJSON(b []byte) error {
	s.N, s.OK = 0, false
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	raw := string(b)
	if len(raw) >= 2 && raw[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil //nolint:nilerr // unparseable degrades to absent
		}
		raw = str
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// Floats like 5.0 still count as parseable integers.
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			return nil
		}
		n = int(f)
	}
	s.N, s.OK = n, true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s SkaterCount) MarshalJSON() ([]byte, error) {
	if !s.OK {
		return []byte("null"), nil
	}
	return json.Marshal(s.N)
}

// ClassifiedEvent is an Event plus the analytic fields derived once per
// game load. Derived fields are never patched in place; a reload
// re-derives them.
type ClassifiedEvent struct {
	Event
	Zone      types.Zone      `json:"zone"`
	Situation types.Situation `json:"situation"`
	Technique string          `json:"technique"`
	Opponent  string          `json:"opponent"`
}

// Game identifies one game in the feed's schedule.
type Game struct {
	ID       string `json:"id"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Date     string `json:"date"`
}

// UnmarshalJSON tolerates numeric game ids; some exports serve the id
// as an integer rather than a string.
func (g *Game) UnmarshalJSON(b []byte) error {
	type alias Game
	aux := struct {
		ID json.RawMessage `json:"id"`
		*alias
	}{alias: (*alias)(g)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if len(aux.ID) > 0 {
		if aux.ID[0] == '"' {
			if err := json.Unmarshal(aux.ID, &g.ID); err != nil {
				return err
			}
		} else {
			g.ID = string(aux.ID)
		}
	}
	return nil
}

// TimeRange is the feed-reported elapsed-time span of the data set.
type TimeRange struct {
	MinSeconds float64 `json:"min_seconds"`
	MaxSeconds float64 `json:"max_seconds"`
}
