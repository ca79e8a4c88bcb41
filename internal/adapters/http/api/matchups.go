// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/rinkside/internal/adapters/repository"
	"github.com/okian/rinkside/internal/domain/types"
)

// MatchupDependencies defines the interface for the head-to-head table.
type MatchupDependencies interface {
	Matchups(ctx context.Context) ([]types.Matchup, error)
}

// MatchupsHandler handles head-to-head requests.
type MatchupsHandler struct {
	deps MatchupDependencies
}

// NewMatchupsHandler creates a new matchups handler.
func NewMatchupsHandler(deps MatchupDependencies) *MatchupsHandler {
	return &MatchupsHandler{deps: deps}
}

// HandleMatchups handles GET /api/matchups requests.
func (h *MatchupsHandler) HandleMatchups(w http.ResponseWriter, r *http.Request) {
	const op = "api.matchups"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows, err := h.deps.Matchups(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoGame) {
			writeJSON(w, http.StatusOK, []types.Matchup{})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if rows == nil {
		rows = []types.Matchup{}
	}
	writeJSON(w, http.StatusOK, rows)
}
