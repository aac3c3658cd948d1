package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/theme"
)

const maxThemeBody = 1 << 10

// ThemeResponse reports the resolved display mode.
type ThemeResponse struct {
	Mode theme.Mode `json:"mode"`
}

// Theme reads the mode on GET. POST sets the mode from ?mode= or a JSON
// body, or toggles the current mode when neither is given, and persists it
// in the themeMode cookie.
func (h *Handler) Theme(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet, http.MethodPost) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	current := theme.FromRequest(r)
	if r.Method == http.MethodGet {
		writeJSON(w, http.StatusOK, ThemeResponse{Mode: current}, logger)
		return
	}

	requested, err := requestedMode(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}
	next := theme.Toggle(current)
	if requested != "" {
		mode, ok := theme.Parse(requested)
		if !ok {
			writeError(w, r, http.StatusBadRequest, "mode must be light or dark", logger)
			return
		}
		next = mode
	}
	theme.WriteCookie(w, next)
	writeJSON(w, http.StatusOK, ThemeResponse{Mode: next}, logger)
}

func requestedMode(r *http.Request) (string, error) {
	if mode := strings.TrimSpace(r.URL.Query().Get("mode")); mode != "" {
		return mode, nil
	}
	if r.Body == nil {
		return "", nil
	}
	var body struct {
		Mode string `json:"mode"`
	}
	err := json.NewDecoder(io.LimitReader(r.Body, maxThemeBody)).Decode(&body)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", errors.New("invalid body")
	}
	return strings.TrimSpace(body.Mode), nil
}
