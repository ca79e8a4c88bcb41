// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/rinkside/internal/adapters/repository"
)

// StatsDependencies defines the interface for stats reads.
type StatsDependencies interface {
	UpstreamStats(ctx context.Context) (json.RawMessage, error)
	GetStats() map[string]interface{}
}

// StatsHandler handles stats requests.
type StatsHandler struct {
	deps StatsDependencies
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(deps StatsDependencies) *StatsHandler {
	return &StatsHandler{deps: deps}
}

// HandleUpstreamStats handles GET /api/stats requests, proxying the
// upstream aggregate document for the loaded game.
func (h *StatsHandler) HandleUpstreamStats(w http.ResponseWriter, r *http.Request) {
	const op = "api.stats"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raw, err := h.deps.UpstreamStats(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoGame) {
			writeJSON(w, http.StatusOK, json.RawMessage(`{}`))
			return
		}
		writeError(w, http.StatusBadGateway, "upstream_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, raw)
}

// HandleServiceStats handles GET /api/service/stats requests for
// monitoring.
func (h *StatsHandler) HandleServiceStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.GetStats())
}
