// Package http assembles the API routes.
package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. metrics is mounted at
// /metrics when non-nil.
func NewRouter(handler *handlers.Handler, metrics nethttp.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/state", handler.State)
	mux.HandleFunc("/api/refresh", handler.Refresh)
	mux.HandleFunc("/api/team", handler.Team)
	mux.HandleFunc("/api/roster", handler.Roster)
	mux.HandleFunc("/api/schedule", handler.Schedule)
	mux.HandleFunc("/api/games/strip", handler.Strip)
	mux.HandleFunc("/api/transfers", handler.Transfers)
	mux.HandleFunc("/api/international", handler.International)
	mux.HandleFunc("/api/rankings", handler.Rankings)
	mux.HandleFunc("/api/color", handler.Color)
	mux.HandleFunc("/api/theme", handler.Theme)
	if metrics != nil {
		mux.Handle("/metrics", metrics)
	}
	return mux
}
