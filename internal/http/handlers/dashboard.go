package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/app/roster"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/http/requestutil"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/rating"
)

// maxListLimit caps the limit and n query parameters.
const maxListLimit = 100

// TeamResponse wraps the team snapshot, which is null when the team export
// lacked the expected tables.
type TeamResponse struct {
	Team *teams.TeamSnapshot `json:"team"`
}

// Team returns the raw team snapshot.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	team, err := h.roster.Team()
	if err != nil {
		h.writeReadError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TeamResponse{Team: team}, loggerFromContext(r, h.logger))
}

// RosterResponse is the joined roster table.
type RosterResponse struct {
	Team     string       `json:"team,omitempty"`
	Filename string       `json:"filename,omitempty"`
	Rows     []roster.Row `json:"rows"`
}

// Roster returns roster rows joined with stats and DXV swatches.
func (h *Handler) Roster(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	team, err := h.roster.Team()
	if err != nil {
		h.writeReadError(w, r, err)
		return
	}
	resp := RosterResponse{Rows: roster.JoinRows(team)}
	if team != nil {
		resp.Team = team.Name
		resp.Filename = team.Filename
	}
	writeJSON(w, http.StatusOK, resp, loggerFromContext(r, h.logger))
}

// Schedule returns upcoming, recent and completed games. ?limit= caps the
// recent list.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	limit, ok := requestutil.PositiveIntParam(r, "limit", maxListLimit)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid limit", loggerFromContext(r, h.logger))
		return
	}
	processed, err := h.schedule.Processed(limit)
	if err != nil {
		h.writeReadError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, processed, loggerFromContext(r, h.logger))
}

// StripResponse is the recent-games strip, newest first.
type StripResponse struct {
	Games []games.StripGame `json:"games"`
}

// Strip returns the last ?n= schedule rows as display cards.
func (h *Handler) Strip(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	n, ok := requestutil.PositiveIntParam(r, "n", maxListLimit)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid n", loggerFromContext(r, h.logger))
		return
	}
	strip, err := h.schedule.Strip(n)
	if err != nil {
		h.writeReadError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StripResponse{Games: strip}, loggerFromContext(r, h.logger))
}

// TransferRow is a portal entry with its DXV swatch.
type TransferRow struct {
	players.TransferPlayer
	DXV rating.Swatch `json:"dxv"`
}

// TransfersResponse holds both portal lists after filtering.
type TransfersResponse struct {
	Status    string        `json:"status,omitempty"`
	Available []TransferRow `json:"available"`
	Committed []TransferRow `json:"committed"`
}

// Transfers returns portal entries whose status matches ?status=.
func (h *Handler) Transfers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	pattern := strings.TrimSpace(r.URL.Query().Get("status"))
	portal, err := h.recruiting.Transfers(pattern)
	if err != nil {
		h.writeReadError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TransfersResponse{
		Status:    pattern,
		Available: transferRows(portal.Available),
		Committed: transferRows(portal.Committed),
	}, loggerFromContext(r, h.logger))
}

func transferRows(list []players.TransferPlayer) []TransferRow {
	out := make([]TransferRow, 0, len(list))
	for _, p := range list {
		out = append(out, TransferRow{TransferPlayer: p, DXV: rating.DXVSwatch(p.DXVRating)})
	}
	return out
}

// InternationalResponse lists international prospects.
type InternationalResponse struct {
	Players []players.InternationalPlayer `json:"players"`
}

// International returns the international prospects.
func (h *Handler) International(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	list, err := h.recruiting.International()
	if err != nil {
		h.writeReadError(w, r, err)
		return
	}
	if list == nil {
		list = []players.InternationalPlayer{}
	}
	writeJSON(w, http.StatusOK, InternationalResponse{Players: list}, loggerFromContext(r, h.logger))
}

// RankingRow is an RSCI entry with its display rank.
type RankingRow struct {
	players.RankedPlayer
	RankLabel string `json:"rank_label"`
}

// RankingsResponse lists RSCI entries, unranked last.
type RankingsResponse struct {
	Players []RankingRow `json:"players"`
}

// Rankings returns the RSCI list ordered by rank.
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	list, err := h.recruiting.Rankings()
	if err != nil {
		h.writeReadError(w, r, err)
		return
	}
	rows := make([]RankingRow, 0, len(list))
	for _, p := range list {
		rows = append(rows, RankingRow{RankedPlayer: p, RankLabel: rating.RankLabel(p.Rank)})
	}
	writeJSON(w, http.StatusOK, RankingsResponse{Players: rows}, loggerFromContext(r, h.logger))
}

// Color maps ?p= (a 0-1 percentile) or ?dxv= (a 0-100 rating) to a
// swatch. With neither, the unknown swatch is returned.
func (h *Handler) Color(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()
	if raw := strings.TrimSpace(q.Get("dxv")); raw != "" {
		if rating.DXVPercentile(raw) == nil {
			writeError(w, r, http.StatusBadRequest, "invalid dxv", logger)
			return
		}
		writeJSON(w, http.StatusOK, rating.DXVSwatch(raw), logger)
		return
	}

	raw := strings.TrimSpace(q.Get("p"))
	if raw == "" {
		writeJSON(w, http.StatusOK, rating.PercentileColor(nil), logger)
		return
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid percentile", logger)
		return
	}
	writeJSON(w, http.StatusOK, rating.PercentileColor(&p), logger)
}
