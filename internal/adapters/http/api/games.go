// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/rinkside/internal/domain/model"
)

// GameDependencies defines the interface for game selection operations.
type GameDependencies interface {
	Games(ctx context.Context) []model.Game
	SelectGame(ctx context.Context, gameID string) error
	ClearSelection(ctx context.Context)
}

// GamesHandler handles game schedule and selection requests.
type GamesHandler struct {
	deps GameDependencies
}

// NewGamesHandler creates a new games handler.
func NewGamesHandler(deps GameDependencies) *GamesHandler {
	return &GamesHandler{deps: deps}
}

// HandleGames handles GET /api/games requests.
func (h *GamesHandler) HandleGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	games := h.deps.Games(r.Context())
	if games == nil {
		games = []model.Game{}
	}
	writeJSON(w, http.StatusOK, games)
}

type selectGameRequest struct {
	GameID string `json:"game_id"`
}

// HandleGame handles POST /api/game (select) and DELETE /api/game
// (clear selection) requests.
func (h *GamesHandler) HandleGame(w http.ResponseWriter, r *http.Request) {
	const op = "api.select_game"
	switch r.Method {
	case http.MethodPost:
		var req selectGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if strings.TrimSpace(req.GameID) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if err := h.deps.SelectGame(r.Context(), req.GameID); err != nil {
			// A failed load leaves the previous state untouched; the
			// client may retry or pick another game.
			writeError(w, http.StatusBadGateway, "upstream_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "loaded", "game_id": req.GameID})
	case http.MethodDelete:
		h.deps.ClearSelection(r.Context())
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	default:
		http.NotFound(w, r)
	}
}
