// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/rinkside/internal/domain/timeline"
)

// TimelineDependencies defines the interface for playback control.
type TimelineDependencies interface {
	Play(ctx context.Context)
	PausePlayback(ctx context.Context)
	ResetPlayback(ctx context.Context)
	SeekPlayback(ctx context.Context, pct float64)
	PlaybackStatus(ctx context.Context) (float64, timeline.Status)
}

// TimelineHandler handles playback requests.
type TimelineHandler struct {
	deps TimelineDependencies
}

// NewTimelineHandler creates a new timeline handler.
func NewTimelineHandler(deps TimelineDependencies) *TimelineHandler {
	return &TimelineHandler{deps: deps}
}

type timelineResponse struct {
	Pct    float64 `json:"pct"`
	Status string  `json:"status"`
}

type seekRequest struct {
	Pct float64 `json:"pct"`
}

// HandleTimeline handles GET /api/timeline requests.
func (h *TimelineHandler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	pct, status := h.deps.PlaybackStatus(r.Context())
	writeJSON(w, http.StatusOK, timelineResponse{Pct: pct, Status: string(status)})
}

// HandleTimelineAction handles POST /api/timeline/{play|pause|reset|seek}.
func (h *TimelineHandler) HandleTimelineAction(w http.ResponseWriter, r *http.Request) {
	const op = "api.timeline"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	action := strings.TrimPrefix(r.URL.Path, "/api/timeline/")
	switch action {
	case "play":
		h.deps.Play(r.Context())
	case "pause":
		h.deps.PausePlayback(r.Context())
	case "reset":
		h.deps.ResetPlayback(r.Context())
	case "seek":
		var req seekRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if req.Pct < 0 || req.Pct > 100 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		h.deps.SeekPlayback(r.Context(), req.Pct)
	default:
		http.NotFound(w, r)
		return
	}

	pct, status := h.deps.PlaybackStatus(r.Context())
	writeJSON(w, http.StatusOK, timelineResponse{Pct: pct, Status: string(status)})
}
