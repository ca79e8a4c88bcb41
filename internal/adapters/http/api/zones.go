// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/rinkside/internal/adapters/repository"
	"github.com/okian/rinkside/internal/domain/types"
)

// ZoneDependencies defines the interface for zone share reads.
type ZoneDependencies interface {
	ZoneSplit(ctx context.Context) ([]types.ZoneShare, error)
	ShotZoneSplit(ctx context.Context) ([]types.ZoneShare, error)
}

// ZonesHandler handles zone split requests.
type ZonesHandler struct {
	deps ZoneDependencies
}

// NewZonesHandler creates a new zones handler.
func NewZonesHandler(deps ZoneDependencies) *ZonesHandler {
	return &ZonesHandler{deps: deps}
}

// HandleZones handles GET /api/zones requests. The default split is
// the faceoff-zone one; kind=shots selects the shot-zone split.
func (h *ZonesHandler) HandleZones(w http.ResponseWriter, r *http.Request) {
	const op = "api.zones"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	var split []types.ZoneShare
	var err error
	switch kind := r.URL.Query().Get("kind"); kind {
	case "", "faceoffs":
		split, err = h.deps.ZoneSplit(r.Context())
	case "shots":
		split, err = h.deps.ShotZoneSplit(r.Context())
	default:
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	if err != nil {
		if errors.Is(err, repository.ErrNoGame) {
			writeJSON(w, http.StatusOK, []types.ZoneShare{})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, split)
}
