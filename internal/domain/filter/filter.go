// Package filter applies the UI-selected predicate set to a classified
// event collection. Filtering is a pure, single pass: every predicate
// is ANDed, input order is preserved, and applying the same state
// twice yields the same result.
package filter

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/rinkside/internal/domain/model"
)

// PeriodSeconds is the regulation length of one period.
const PeriodSeconds = 1200.0

// All disables a category filter.
const All = "all"

// State is the current predicate configuration. It is owned by the
// caller and read on each recompute; there is no partial update path.
//
// Empty selection policy: an empty team or period selection matches
// nothing. The source analyzers disagreed on this; strict-AND
// semantics keep "nothing checked" and "nothing passes" consistent.
type State struct {
	Teams     []string          `json:"teams"`
	Periods   []int             `json:"periods"`
	Players   map[string]string `json:"players,omitempty"`
	Technique string            `json:"technique"`
	ShotType  string            `json:"shot_type"`
	Outcome   string            `json:"outcome"`
	Zone      string            `json:"zone"`
	Situation string            `json:"situation"`
	// TimePct is the time-window slider position, 0-100. Zero disables
	// the time predicate entirely; it is not a zero-second cutoff.
	TimePct float64 `json:"time_pct"`
}

// Default returns the state selecting everything for the given teams:
// all periods, no player or category restrictions, time window off.
func Default(teams []string) State {
	return State{
		Teams:     append([]string(nil), teams...),
		Periods:   []int{1, 2, 3},
		Technique: All,
		ShotType:  All,
		Outcome:   All,
		Zone:      All,
		Situation: All,
	}
}

// Validate rejects states no UI could produce.
func (s *State) Validate() error {
	if s.TimePct < 0 || s.TimePct > 100 {
		return fmt.Errorf("%w: time_pct %v out of range", ErrInvalidState, s.TimePct)
	}
	for _, p := range s.Periods {
		if p < 1 || p > 3 {
			return fmt.Errorf("%w: period %d out of range", ErrInvalidState, p)
		}
	}
	return nil
}

// MaxTime returns the time-window span implied by the selected
// periods: one regulation period per selection.
func (s *State) MaxTime() float64 {
	return float64(len(s.Periods)) * PeriodSeconds
}

// Cutoff converts the slider position to an absolute elapsed-time
// cutoff in seconds. It is zero when the window is disabled.
func (s *State) Cutoff() float64 {
	if s.TimePct <= 0 {
		return 0
	}
	return s.TimePct / 100 * s.MaxTime()
}

// Clock renders seconds as m:ss for display.
func Clock(seconds float64) string {
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Apply filters events down to the subset satisfying every active
// predicate, preserving input order. The output is always a fresh
// slice; the input is never mutated.
func Apply(events []model.ClassifiedEvent, s State) []model.ClassifiedEvent {
	teams := make(map[string]struct{}, len(s.Teams))
	for _, t := range s.Teams {
		teams[t] = struct{}{}
	}
	periods := make(map[int]struct{}, len(s.Periods))
	for _, p := range s.Periods {
		periods[p] = struct{}{}
	}
	cutoff := s.Cutoff()

	out := make([]model.ClassifiedEvent, 0, len(events))
	for i := range events {
		e := &events[i]
		if _, ok := teams[e.TeamDisplay]; !ok {
			continue
		}
		if _, ok := periods[e.Period]; !ok {
			continue
		}
		if want, ok := s.Players[e.TeamDisplay]; ok && want != "" && e.Player != want {
			continue
		}
		if !matchCategory(s.Technique, e.Technique) {
			continue
		}
		if !matchCategory(s.ShotType, e.Detail1) {
			continue
		}
		if !matchCategory(s.Outcome, e.Detail2) {
			continue
		}
		if !matchCategory(s.Zone, string(e.Zone)) {
			continue
		}
		if !matchCategory(s.Situation, string(e.Situation)) {
			continue
		}
		if s.TimePct > 0 && e.TimeSeconds > cutoff {
			continue
		}
		out = append(out, *e)
	}
	return out
}

// matchCategory treats "all" (and the zero value) as a pass-through.
func matchCategory(want, have string) bool {
	return want == "" || want == All || want == have
}

// Roster extracts the distinct primary actors per team from a
// classified event set, sorted for stable dropdown population.
func Roster(events []model.ClassifiedEvent) map[string][]string {
	byTeam := make(map[string]map[string]struct{})
	for i := range events {
		e := &events[i]
		if e.Player == "" || e.TeamDisplay == "" {
			continue
		}
		if byTeam[e.TeamDisplay] == nil {
			byTeam[e.TeamDisplay] = make(map[string]struct{})
		}
		byTeam[e.TeamDisplay][e.Player] = struct{}{}
	}
	out := make(map[string][]string, len(byTeam))
	for team, set := range byTeam {
		players := make([]string, 0, len(set))
		for p := range set {
			players = append(players, p)
		}
		sort.Strings(players)
		out[team] = players
	}
	return out
}
