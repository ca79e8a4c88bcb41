// Package service provides the core business service that implements
// the dependencies required by the HTTP API. It owns the loaded game
// snapshot, the active filter state, and the playback controller, and
// recomputes aggregates on demand from the filtered event set.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/rinkside/internal/adapters/repository"
	"github.com/okian/rinkside/internal/domain/aggregate"
	"github.com/okian/rinkside/internal/domain/classify"
	"github.com/okian/rinkside/internal/domain/filter"
	"github.com/okian/rinkside/internal/domain/model"
	"github.com/okian/rinkside/internal/domain/timeline"
	"github.com/okian/rinkside/internal/domain/types"
	"github.com/okian/rinkside/pkg/logger"
	"github.com/okian/rinkside/pkg/metrics"
)

// Default service configuration.
const (
	defaultTickInterval    = 100 * time.Millisecond
	defaultPlaySpeed       = 1.0
	defaultTableLimit      = 50
	defaultMinMatchupTotal = 2
)

// Feed is the upstream dependency the service pulls game data from.
type Feed interface {
	Games(ctx context.Context) ([]model.Game, error)
	Events(ctx context.Context, gameID string) ([]model.Event, error)
	Teams(ctx context.Context, gameID string) ([]string, error)
	Players(ctx context.Context, gameID string) ([]string, error)
	TimeRange(ctx context.Context, gameID string) (model.TimeRange, error)
	Stats(ctx context.Context, gameID string) (json.RawMessage, error)
}

// Service implements the API dependencies for the faceoff dashboard.
type Service struct {
	mu sync.RWMutex

	// Core components
	feed       Feed
	store      *repository.Store
	classifier *classify.Classifier
	timeline   *timeline.Controller

	// Per-selection state
	games  []model.Game
	filter filter.State

	// generation orders game selections so a slow fetch can never
	// overwrite a newer one.
	generation atomic.Uint64

	// Configuration
	homeSide        string
	awaySide        string
	tickInterval    time.Duration
	playSpeed       float64
	maxTableLimit   int
	minMatchupTotal int
	autoSelectFirst bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		homeSide:        "home",
		awaySide:        "away",
		tickInterval:    defaultTickInterval,
		playSpeed:       defaultPlaySpeed,
		maxTableLimit:   defaultTableLimit,
		minMatchupTotal: defaultMinMatchupTotal,
		autoSelectFirst: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service: it builds the pipeline components,
// fetches the game list, and optionally loads the first game.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if s.feed == nil {
		s.mu.Unlock()
		return ErrNoFeed
	}

	s.logger.Info(ctx, "starting faceoff analytics service...")

	s.store = repository.New(repository.WithLogger(s.logger.Named("repository")))
	s.classifier = classify.New(
		classify.WithHomeSide(s.homeSide),
		classify.WithAwaySide(s.awaySide),
	)
	s.timeline = timeline.New(
		timeline.WithStep(s.playSpeed),
		timeline.WithInterval(s.tickInterval),
		timeline.WithOnChange(s.onTimelineChange),
		timeline.WithLogger(s.logger.Named("timeline")),
	)
	s.filter = filter.Default(nil)
	s.started = true
	s.mu.Unlock()

	games, err := s.feed.Games(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadGames, err)
	}

	s.mu.Lock()
	s.games = games
	s.mu.Unlock()

	s.logger.Info(ctx, "game schedule loaded", logger.Int("games", len(games)))

	if s.autoSelectFirst && len(games) > 0 {
		if err := s.SelectGame(ctx, games[0].ID); err != nil {
			// The service still starts; a later manual selection can succeed.
			s.logger.Warn(ctx, "initial game load failed",
				logger.String("game_id", games[0].ID),
				logger.Error(err),
			)
		}
	}

	return nil
}

// Stop halts playback. Loaded state is kept so a restart resumes
// where it left off.
func (s *Service) Stop() {
	s.mu.Lock()
	tl := s.timeline
	started := s.started
	s.started = false
	s.mu.Unlock()

	if !started {
		return
	}
	if tl != nil {
		tl.Pause(context.Background())
	}
	s.logger.Info(context.Background(), "faceoff analytics service stopped")
}

// Games returns the upstream game schedule.
func (s *Service) Games(ctx context.Context) []model.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Game(nil), s.games...)
}

// SelectGame loads one game: events, teams, and the time range are
// fetched concurrently, events are classified once, and the result is
// published as a single snapshot. A selection made while another is in
// flight wins by generation; the slower fetch is discarded untouched.
func (s *Service) SelectGame(ctx context.Context, gameID string) error {
	if gameID == "" {
		return ErrNoGameID
	}
	gen := s.generation.Add(1)

	s.logger.Info(ctx, "loading game",
		logger.String("game_id", gameID),
		logger.Int64("generation", int64(gen)),
	)

	var (
		wg         sync.WaitGroup
		events     []model.Event
		teams      []string
		players    []string
		timeRange  model.TimeRange
		errEvents  error
		errTeams   error
		errPlayers error
		errRange   error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		events, errEvents = s.feed.Events(ctx, gameID)
	}()
	go func() {
		defer wg.Done()
		teams, errTeams = s.feed.Teams(ctx, gameID)
	}()
	go func() {
		defer wg.Done()
		players, errPlayers = s.feed.Players(ctx, gameID)
	}()
	go func() {
		defer wg.Done()
		timeRange, errRange = s.feed.TimeRange(ctx, gameID)
	}()
	wg.Wait()

	for _, err := range []error{errEvents, errTeams, errPlayers, errRange} {
		if err != nil {
			metrics.RecordGameLoadError()
			metrics.RecordErrorByComponent("service", "game_load_error")
			return fmt.Errorf("%w: game %s: %w", ErrLoadGame, gameID, err)
		}
	}

	start := time.Now()
	classified := s.classifier.ClassifyAll(events)
	metrics.RecordClassifyLatency(float64(time.Since(start).Milliseconds()))

	snap := &repository.Snapshot{
		GameID:     gameID,
		Game:       s.gameByID(gameID),
		Events:     classified,
		Teams:      teams,
		Players:    players,
		Roster:     filter.Roster(classified),
		TimeRange:  timeRange,
		Generation: gen,
	}

	// The upstream player list should match the primary actors seen in
	// the events; a mismatch means a partial export upstream.
	if n := rosterSize(snap.Roster); n != len(players) {
		s.logger.Warn(ctx, "upstream player list disagrees with event roster",
			logger.String("game_id", gameID),
			logger.Int("upstream_players", len(players)),
			logger.Int("event_players", n),
		)
	}

	if !s.store.Replace(ctx, snap) {
		// A newer selection already landed; leave its state alone.
		return nil
	}

	s.mu.Lock()
	s.filter = filter.Default(teams)
	tl := s.timeline
	s.mu.Unlock()
	tl.Reset(ctx)

	metrics.RecordGameLoad()
	s.logger.Info(ctx, "game loaded",
		logger.String("game_id", gameID),
		logger.Int("events", len(classified)),
		logger.Int("teams", len(teams)),
	)
	return nil
}

// ClearSelection drops the loaded game and rewinds playback.
func (s *Service) ClearSelection(ctx context.Context) {
	s.generation.Add(1)
	s.store.Clear(ctx)

	s.mu.Lock()
	s.filter = filter.Default(nil)
	tl := s.timeline
	s.mu.Unlock()
	tl.Reset(ctx)
}

func rosterSize(roster map[string][]string) int {
	n := 0
	for _, players := range roster {
		n += len(players)
	}
	return n
}

func (s *Service) gameByID(gameID string) model.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.games {
		if g.ID == gameID {
			return g
		}
	}
	return model.Game{ID: gameID}
}

// Snapshot exposes the loaded game state, or repository.ErrNoGame.
func (s *Service) Snapshot(ctx context.Context) (*repository.Snapshot, error) {
	return s.store.Current(ctx)
}

// Filter returns a copy of the active filter state.
func (s *Service) Filter(ctx context.Context) filter.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// SetFilter validates and installs a whole new filter state. Partial
// updates are expressed by mutating a copy of Filter() and resubmitting.
func (s *Service) SetFilter(ctx context.Context, state filter.State) error {
	if err := state.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.filter = state
	s.mu.Unlock()

	s.logger.Debug(ctx, "filter state replaced",
		logger.Int("teams", len(state.Teams)),
		logger.Int("periods", len(state.Periods)),
		logger.Float64("time_pct", state.TimePct),
	)
	return nil
}

// onTimelineChange follows playback by rewriting the filter's time
// window. It runs on the tick goroutine.
func (s *Service) onTimelineChange(pct float64) {
	s.mu.Lock()
	s.filter.TimePct = pct
	s.mu.Unlock()
}

// FilteredEvents applies the active filter to the loaded event set.
func (s *Service) FilteredEvents(ctx context.Context) ([]model.ClassifiedEvent, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	state := s.Filter(ctx)

	start := time.Now()
	out := filter.Apply(snap.Events, state)
	metrics.RecordFilterRecompute()
	metrics.RecordFilterLatency(float64(time.Since(start).Milliseconds()))
	metrics.UpdateEventsFiltered(len(out))
	return out, nil
}

// Summary computes the two-team stat card over the filtered set.
func (s *Service) Summary(ctx context.Context) (types.Summary, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return types.Summary{}, err
	}
	events, err := s.FilteredEvents(ctx)
	if err != nil {
		return types.Summary{}, err
	}

	var team1, team2 string
	if len(snap.Teams) > 0 {
		team1 = snap.Teams[0]
	}
	if len(snap.Teams) > 1 {
		team2 = snap.Teams[1]
	}

	start := time.Now()
	summary := aggregate.TeamSummary(events, team1, team2)
	metrics.RecordAggregationLatency(float64(time.Since(start).Milliseconds()))
	return summary, nil
}

// PlayerStats computes the per-player table over the filtered set,
// most active players first, capped by the configured table limit.
func (s *Service) PlayerStats(ctx context.Context) ([]types.PlayerStats, error) {
	events, err := s.FilteredEvents(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows := aggregate.TopPlayers(aggregate.PlayerStats(events), s.maxTableLimit)
	metrics.RecordAggregationLatency(float64(time.Since(start).Milliseconds()))
	return rows, nil
}

// Matchups computes the head-to-head table over the filtered set.
func (s *Service) Matchups(ctx context.Context) ([]types.Matchup, error) {
	events, err := s.FilteredEvents(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows := aggregate.TopMatchups(aggregate.HeadToHead(events), s.minMatchupTotal, s.maxTableLimit)
	metrics.RecordAggregationLatency(float64(time.Since(start).Milliseconds()))
	return rows, nil
}

// ZoneSplit computes per-zone win shares over the filtered set.
func (s *Service) ZoneSplit(ctx context.Context) ([]types.ZoneShare, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.FilteredEvents(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	split := aggregate.ZoneSplit(events, snap.Teams)
	metrics.RecordAggregationLatency(float64(time.Since(start).Milliseconds()))
	return split, nil
}

// ShotZoneSplit computes per-shot-zone attempt shares over the
// filtered set.
func (s *Service) ShotZoneSplit(ctx context.Context) ([]types.ZoneShare, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.FilteredEvents(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	split := aggregate.ShotZoneSplit(events, snap.Teams)
	metrics.RecordAggregationLatency(float64(time.Since(start).Milliseconds()))
	return split, nil
}

// Roster returns the per-team player lists of the loaded game.
func (s *Service) Roster(ctx context.Context) (map[string][]string, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Roster, nil
}

// TimeRange returns the feed-reported clock span of the loaded game.
func (s *Service) TimeRange(ctx context.Context) (model.TimeRange, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return model.TimeRange{}, err
	}
	return snap.TimeRange, nil
}

// UpstreamStats proxies the upstream aggregate stats document for the
// loaded game.
func (s *Service) UpstreamStats(ctx context.Context) (json.RawMessage, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	return s.feed.Stats(ctx, snap.GameID)
}

// Playback control.

// Play starts or resumes the animated time window.
func (s *Service) Play(ctx context.Context) {
	s.mu.RLock()
	tl := s.timeline
	s.mu.RUnlock()
	tl.Start(ctx)
}

// PausePlayback halts the animated time window in place.
func (s *Service) PausePlayback(ctx context.Context) {
	s.mu.RLock()
	tl := s.timeline
	s.mu.RUnlock()
	tl.Pause(ctx)
}

// ResetPlayback stops the animation and rewinds the window to zero.
func (s *Service) ResetPlayback(ctx context.Context) {
	s.mu.RLock()
	tl := s.timeline
	s.mu.RUnlock()
	tl.Reset(ctx)
}

// SeekPlayback jumps the window to a slider position.
func (s *Service) SeekPlayback(ctx context.Context, pct float64) {
	s.mu.RLock()
	tl := s.timeline
	s.mu.RUnlock()
	tl.Seek(pct)
}

// PlaybackStatus reports the controller position and state.
func (s *Service) PlaybackStatus(ctx context.Context) (float64, timeline.Status) {
	s.mu.RLock()
	tl := s.timeline
	s.mu.RUnlock()
	return tl.Pct(), tl.Status()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":           s.started,
		"games":             len(s.games),
		"max_table_limit":   s.maxTableLimit,
		"min_matchup_total": s.minMatchupTotal,
	}

	if s.store != nil {
		stats["events_loaded"] = s.store.EventCount()
		if snap, err := s.store.Current(context.Background()); err == nil {
			stats["game_id"] = snap.GameID
			stats["load_id"] = snap.LoadID
			stats["load_generation"] = snap.Generation
			stats["players"] = len(snap.Players)
		}
	}
	if s.timeline != nil {
		stats["timeline_pct"] = s.timeline.Pct()
		stats["timeline_status"] = string(s.timeline.Status())
	}
	return stats
}
