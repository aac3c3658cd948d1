package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/http/middleware"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/http/requestutil"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.RequestIDHeader)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// notLoadedResponse is returned by data endpoints before the first
// successful load.
type notLoadedResponse struct {
	Error     string           `json:"error"`
	RequestID string           `json:"requestId,omitempty"`
	State     domain.LoadState `json:"state"`
}

// writeReadError maps service errors to responses. ErrNotLoaded becomes a
// 503 carrying the load state so clients can show loading or the failure.
func (h *Handler) writeReadError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	if errors.Is(err, domain.ErrNotLoaded) {
		writeJSON(w, http.StatusServiceUnavailable, notLoadedResponse{
			Error:     err.Error(),
			RequestID: middleware.RequestIDFromContext(r.Context()),
			State:     h.state.State(),
		}, logger)
		return
	}
	logging.Error(logger, "read failed", err)
	writeError(w, r, http.StatusInternalServerError, "internal error", logger)
}

// requireMethod writes a 405 unless r uses one of methods.
func requireMethod(w http.ResponseWriter, r *http.Request, logger *slog.Logger, methods ...string) bool {
	if slices.Contains(methods, r.Method) {
		return true
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
