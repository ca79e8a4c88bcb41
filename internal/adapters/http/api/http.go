// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/rinkside/internal/domain/filter"
	"github.com/okian/rinkside/internal/domain/model"
	"github.com/okian/rinkside/internal/domain/timeline"
	"github.com/okian/rinkside/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Game selection
	Games(ctx context.Context) []model.Game
	SelectGame(ctx context.Context, gameID string) error
	ClearSelection(ctx context.Context)

	// Filter state
	Filter(ctx context.Context) filter.State
	SetFilter(ctx context.Context, state filter.State) error

	// Reads over the filtered set
	FilteredEvents(ctx context.Context) ([]model.ClassifiedEvent, error)
	Summary(ctx context.Context) (types.Summary, error)
	PlayerStats(ctx context.Context) ([]types.PlayerStats, error)
	Matchups(ctx context.Context) ([]types.Matchup, error)
	ZoneSplit(ctx context.Context) ([]types.ZoneShare, error)
	ShotZoneSplit(ctx context.Context) ([]types.ZoneShare, error)
	Roster(ctx context.Context) (map[string][]string, error)
	TimeRange(ctx context.Context) (model.TimeRange, error)
	UpstreamStats(ctx context.Context) (json.RawMessage, error)

	// Playback
	Play(ctx context.Context)
	PausePlayback(ctx context.Context)
	ResetPlayback(ctx context.Context)
	SeekPlayback(ctx context.Context, pct float64)
	PlaybackStatus(ctx context.Context) (float64, timeline.Status)

	// Monitoring
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	gamesHandler    *GamesHandler
	filtersHandler  *FiltersHandler
	summaryHandler  *SummaryHandler
	playersHandler  *PlayersHandler
	matchupsHandler *MatchupsHandler
	zonesHandler    *ZonesHandler
	timelineHandler *TimelineHandler
	statsHandler    *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		gamesHandler:    NewGamesHandler(deps),
		filtersHandler:  NewFiltersHandler(deps),
		summaryHandler:  NewSummaryHandler(deps),
		playersHandler:  NewPlayersHandler(deps),
		matchupsHandler: NewMatchupsHandler(deps),
		zonesHandler:    NewZonesHandler(deps),
		timelineHandler: NewTimelineHandler(deps),
		statsHandler:    NewStatsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/api/games", MetricsMiddleware(s.gamesHandler.HandleGames, "games"))
	mux.HandleFunc("/api/game", MetricsMiddleware(s.gamesHandler.HandleGame, "game"))
	mux.HandleFunc("/api/filters", MetricsMiddleware(s.filtersHandler.HandleFilters, "filters"))
	mux.HandleFunc("/api/events", MetricsMiddleware(s.filtersHandler.HandleEvents, "events"))
	mux.HandleFunc("/api/roster", MetricsMiddleware(s.filtersHandler.HandleRoster, "roster"))
	mux.HandleFunc("/api/time-range", MetricsMiddleware(s.filtersHandler.HandleTimeRange, "time-range"))
	mux.HandleFunc("/api/summary", MetricsMiddleware(s.summaryHandler.HandleSummary, "summary"))
	mux.HandleFunc("/api/players", MetricsMiddleware(s.playersHandler.HandlePlayers, "players"))
	mux.HandleFunc("/api/matchups", MetricsMiddleware(s.matchupsHandler.HandleMatchups, "matchups"))
	mux.HandleFunc("/api/zones", MetricsMiddleware(s.zonesHandler.HandleZones, "zones"))
	mux.HandleFunc("/api/timeline", MetricsMiddleware(s.timelineHandler.HandleTimeline, "timeline"))
	mux.HandleFunc("/api/timeline/", MetricsMiddleware(s.timelineHandler.HandleTimelineAction, "timeline-action"))
	mux.HandleFunc("/api/stats", MetricsMiddleware(s.statsHandler.HandleUpstreamStats, "stats"))
	mux.HandleFunc("/api/service/stats", MetricsMiddleware(s.statsHandler.HandleServiceStats, "service-stats"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
