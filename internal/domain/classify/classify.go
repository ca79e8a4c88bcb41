// Package classify derives analytic fields from raw feed events: rink
// zone, game situation, and normalized technique/opponent. All
// functions are pure and total over the documented input domain;
// malformed records degrade to documented defaults instead of failing.
package classify

import (
	"math"
	"strings"

	"github.com/okian/rinkside/internal/domain/model"
	"github.com/okian/rinkside/internal/domain/types"
)

// Rink geometry constants. Coordinates run 0-200 along the length of
// the ice and 0-85 across it; the goal mouths sit on the center line.
const (
	rinkLength = 200.0
	goalMouthY = 42.5
)

// Faceoff zone boundaries along the length of the ice.
const (
	defensiveBlueLine = 75.0
	offensiveBlueLine = 125.0
)

// Shot zone thresholds, evaluated in priority order: the first
// matching distance/angle pair wins.
const (
	innerSlotDistance = 15.0
	innerSlotAngle    = 30.0
	slotDistance      = 25.0
	slotAngle         = 45.0
	outerSlotDistance = 40.0
	outerSlotAngle    = 60.0
)

const degreesPerRadian = 180.0 / math.Pi

// UnknownOpponent is the sentinel for records missing a secondary actor.
const UnknownOpponent = "Unknown"

// Classifier derives per-event analytic fields. The designated home
// and away sides configure power-play attribution; the feed encodes a
// fixed home team per game, so the mapping direction is data, not a
// constant.
type Classifier struct {
	homeSide string
	awaySide string
}

// New creates a Classifier with configuration options.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		homeSide: "home",
		awaySide: "away",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify derives the read-only analytic fields for one event.
// Faceoff records use the one-dimensional zone model; everything else
// uses the distance/angle shot model.
func (c *Classifier) Classify(e model.Event) model.ClassifiedEvent {
	ce := model.ClassifiedEvent{Event: e}
	if e.IsFaceoff() {
		ce.Zone = FaceoffZone(e.XCoordinate)
	} else {
		ce.Zone = ShotZone(e.XCoordinate, e.YCoordinate)
	}
	ce.Situation = c.Situation(&e)
	ce.Technique = Technique(&e)
	ce.Opponent = Opponent(&e)
	return ce
}

// ClassifyAll derives analytic fields for a full game load, preserving
// feed order.
func (c *Classifier) ClassifyAll(events []model.Event) []model.ClassifiedEvent {
	out := make([]model.ClassifiedEvent, 0, len(events))
	for _, e := range events {
		out = append(out, c.Classify(e))
	}
	return out
}

// FaceoffZone maps a faceoff dot's x coordinate to a zone band.
// An absent or zero coordinate falls back to neutral; the source data
// omits dot coordinates for a fair share of draws.
func FaceoffZone(x *float64) types.Zone {
	if x == nil || *x == 0 {
		return types.ZoneNeutral
	}
	switch {
	case *x <= defensiveBlueLine:
		return types.ZoneDefensive
	case *x >= offensiveBlueLine:
		return types.ZoneOffensive
	default:
		return types.ZoneNeutral
	}
}

// ShotZone classifies a shot location by distance and angle from the
// nearest goal mouth. Thresholds are checked innermost first; a record
// missing either coordinate classifies as outside.
func ShotZone(x, y *float64) types.Zone {
	if x == nil || y == nil {
		return types.ZoneOutside
	}

	nearDist := math.Hypot(*x, *y-goalMouthY)
	farDist := math.Hypot(rinkLength-*x, *y-goalMouthY)
	goalX := 0.0
	dist := nearDist
	if farDist < nearDist {
		goalX = rinkLength
		dist = farDist
	}

	angle := math.Abs(math.Atan2(*y-goalMouthY, math.Abs(*x-goalX))) * degreesPerRadian

	switch {
	case dist <= innerSlotDistance && angle <= innerSlotAngle:
		return types.ZoneInnerSlot
	case dist <= slotDistance && angle <= slotAngle:
		return types.ZoneSlot
	case dist <= outerSlotDistance && angle <= outerSlotAngle:
		return types.ZoneOuterSlot
	default:
		return types.ZoneOutside
	}
}

// Situation derives the game situation from the skater counts. Both
// counts must be present and parseable, otherwise the record counts as
// even strength; upstream data quality varies and a missing column is
// not an error.
func (c *Classifier) Situation(e *model.Event) types.Situation {
	if !e.HomeSkaters.OK || !e.AwaySkaters.OK {
		return types.SituationEven
	}
	switch {
	case e.HomeSkaters.N > e.AwaySkaters.N:
		return types.PowerPlay(c.homeSide)
	case e.AwaySkaters.N > e.HomeSkaters.N:
		return types.PowerPlay(c.awaySide)
	default:
		return types.SituationEven
	}
}

// Technique normalizes the free-form technique column.
func Technique(e *model.Event) string {
	t := strings.TrimSpace(e.Detail1)
	if t == "" {
		return "unknown"
	}
	return strings.ToLower(t)
}

// Opponent resolves the secondary actor.
func Opponent(e *model.Event) string {
	if strings.TrimSpace(e.Player2) == "" {
		return UnknownOpponent
	}
	return e.Player2
}
