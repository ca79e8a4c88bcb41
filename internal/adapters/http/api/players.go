// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/rinkside/internal/adapters/repository"
	"github.com/okian/rinkside/internal/domain/types"
)

// PlayerDependencies defines the interface for the player table.
type PlayerDependencies interface {
	PlayerStats(ctx context.Context) ([]types.PlayerStats, error)
}

// PlayersHandler handles player stats requests.
type PlayersHandler struct {
	deps PlayerDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayerDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandlePlayers handles GET /api/players requests. Rows come most
// active first; an unselected game yields an empty table.
func (h *PlayersHandler) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.players"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows, err := h.deps.PlayerStats(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoGame) {
			writeJSON(w, http.StatusOK, []types.PlayerStats{})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if rows == nil {
		rows = []types.PlayerStats{}
	}
	writeJSON(w, http.StatusOK, rows)
}
