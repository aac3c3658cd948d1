package domain

import (
	"time"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/teams"
)

// TransferPortal splits portal entries into available and committed players.
type TransferPortal struct {
	Available []players.TransferPlayer `json:"available"`
	Committed []players.TransferPlayer `json:"committed"`
}

// Dashboard is one load cycle's worth of normalized data. It is built once
// and never mutated; the next load replaces it wholesale.
type Dashboard struct {
	LoadID        string                        `json:"load_id"`
	LoadedAt      time.Time                     `json:"loaded_at"`
	Team          *teams.TeamSnapshot           `json:"team"`
	Transfers     TransferPortal                `json:"transfer_portal"`
	International []players.InternationalPlayer `json:"international"`
	Rankings      []players.RankedPlayer        `json:"rsci"`
}

// LoadPhase is the state consumers observe.
type LoadPhase string

const (
	PhaseLoading LoadPhase = "loading"
	PhaseError   LoadPhase = "error"
	PhaseReady   LoadPhase = "ready"
)

// LoadState is what presentation surfaces read: the phase, the last error
// message, and the most recently published dashboard (nil until the first
// successful load). Generation and LoadID identify the newest load started.
type LoadState struct {
	Phase      LoadPhase  `json:"phase"`
	Error      string     `json:"error,omitempty"`
	Generation uint64     `json:"generation,omitempty"`
	LoadID     string     `json:"load_id,omitempty"`
	Dashboard  *Dashboard `json:"-"`
}

// HasData reports whether a dashboard has been published.
func (s LoadState) HasData() bool {
	return s.Dashboard != nil
}

// Loading reports whether a load is in flight.
func (s LoadState) Loading() bool {
	return s.Phase == PhaseLoading
}
