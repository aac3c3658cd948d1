// Package handlers serves the dashboard read model as JSON.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/aggregator"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/app/recruiting"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/app/roster"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/app/schedule"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/logging"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/poller"
)

// StateReader exposes the current load state.
type StateReader interface {
	State() domain.LoadState
}

// Refresher re-runs a dashboard load.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Options wires a Handler. Refresher and StatusFn are optional.
type Options struct {
	State      StateReader
	Refresher  Refresher
	Roster     *roster.Service
	Schedule   *schedule.Service
	Recruiting *recruiting.Service
	Logger     *slog.Logger
	StatusFn   func() poller.Status
}

// Handler wires HTTP routes to the read services.
type Handler struct {
	state      StateReader
	refresher  Refresher
	roster     *roster.Service
	schedule   *schedule.Service
	recruiting *recruiting.Service
	logger     *slog.Logger
	statusFn   func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(opts Options) *Handler {
	return &Handler{
		state:      opts.State,
		refresher:  opts.Refresher,
		roster:     opts.Roster,
		schedule:   opts.Schedule,
		recruiting: opts.Recruiting,
		logger:     opts.Logger,
		statusFn:   opts.StatusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports ready once a dashboard has been published.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	state := h.state.State()
	if state.HasData() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := state.Error
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// StateResponse is the body of /api/state and /api/refresh.
type StateResponse struct {
	domain.LoadState
	PublishedLoadID string         `json:"published_load_id,omitempty"`
	LoadedAt        *time.Time     `json:"loaded_at,omitempty"`
	Poller          *poller.Status `json:"poller,omitempty"`
}

func (h *Handler) stateResponse() StateResponse {
	state := h.state.State()
	resp := StateResponse{LoadState: state}
	if d := state.Dashboard; d != nil {
		loadedAt := d.LoadedAt
		resp.PublishedLoadID = d.LoadID
		resp.LoadedAt = &loadedAt
	}
	if h.statusFn != nil {
		status := h.statusFn()
		resp.Poller = &status
	}
	return resp
}

// State returns the load phase, the last error and the published load.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, h.stateResponse(), h.logger)
}

// Refresh re-runs the load and waits for it. A load that a newer one
// replaced answers 202; a failed load answers 502 with the user-facing
// message.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodPost) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", logger)
		return
	}

	// The load outlives a disconnected client; a newer load still cancels it.
	ctx := logging.WithLogger(context.WithoutCancel(r.Context()), logger)
	err := h.refresher.Refresh(ctx)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, h.stateResponse(), logger)
	case aggregator.IsSuperseded(err):
		writeJSON(w, http.StatusAccepted, h.stateResponse(), logger)
	default:
		resp := h.stateResponse()
		msg := resp.Error
		if msg == "" {
			msg = err.Error()
		}
		logging.Warn(logger, "manual refresh failed", slog.Any(logging.FieldError, err))
		writeJSON(w, http.StatusBadGateway, struct {
			Error string `json:"error"`
			StateResponse
		}{Error: msg, StateResponse: resp}, logger)
	}
}
