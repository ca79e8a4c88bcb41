// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/rinkside/internal/adapters/repository"
	"github.com/okian/rinkside/internal/domain/filter"
	"github.com/okian/rinkside/internal/domain/model"
)

// FilterDependencies defines the interface for filter state and
// filtered-set reads.
type FilterDependencies interface {
	Filter(ctx context.Context) filter.State
	SetFilter(ctx context.Context, state filter.State) error
	FilteredEvents(ctx context.Context) ([]model.ClassifiedEvent, error)
	Roster(ctx context.Context) (map[string][]string, error)
	TimeRange(ctx context.Context) (model.TimeRange, error)
}

// FiltersHandler handles filter state and filtered-set requests.
type FiltersHandler struct {
	deps FilterDependencies
}

// NewFiltersHandler creates a new filters handler.
func NewFiltersHandler(deps FilterDependencies) *FiltersHandler {
	return &FiltersHandler{deps: deps}
}

// filterResponse is the filter state plus the m:ss renderings of the
// active time cutoff and the window span, for slider labels.
type filterResponse struct {
	State       filter.State `json:"state"`
	CutoffClock string       `json:"cutoff_clock"`
	MaxClock    string       `json:"max_clock"`
}

func newFilterResponse(state filter.State) filterResponse {
	return filterResponse{
		State:       state,
		CutoffClock: filter.Clock(state.Cutoff()),
		MaxClock:    filter.Clock(state.MaxTime()),
	}
}

// HandleFilters handles GET /api/filters and PUT /api/filters. The PUT
// body is a whole filter state; partial updates are expressed by
// mutating the state of a GET response and resubmitting.
func (h *FiltersHandler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	const op = "api.filters"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, newFilterResponse(h.deps.Filter(r.Context())))
	case http.MethodPut:
		var state filter.State
		if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := h.deps.SetFilter(r.Context(), state); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_filter", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, newFilterResponse(h.deps.Filter(r.Context())))
	default:
		http.NotFound(w, r)
	}
}

// HandleEvents handles GET /api/events, returning the filtered set.
// With no game selected the set is empty, not an error.
func (h *FiltersHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	const op = "api.events"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	events, err := h.deps.FilteredEvents(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoGame) {
			writeJSON(w, http.StatusOK, []model.ClassifiedEvent{})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// HandleRoster handles GET /api/roster requests.
func (h *FiltersHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	const op = "api.roster"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	roster, err := h.deps.Roster(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoGame) {
			writeJSON(w, http.StatusOK, map[string][]string{})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

// HandleTimeRange handles GET /api/time-range requests.
func (h *FiltersHandler) HandleTimeRange(w http.ResponseWriter, r *http.Request) {
	const op = "api.time_range"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	tr, err := h.deps.TimeRange(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoGame) {
			writeJSON(w, http.StatusOK, model.TimeRange{})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, tr)
}
