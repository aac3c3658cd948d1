package store

import (
	"sync"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain"
)

// MemoryStore keeps the published dashboard and load state in memory.
// Writes carry the generation of the load that produced them; a write from
// any generation other than the newest one begun is rejected.
type MemoryStore struct {
	mu        sync.RWMutex
	phase     domain.LoadPhase
	errMsg    string
	latest    uint64
	loadID    string
	dashboard *domain.Dashboard
}

// NewMemoryStore constructs a store in the loading phase with no data.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{phase: domain.PhaseLoading}
}

// State returns a consistent copy of the current load state.
func (s *MemoryStore) State() domain.LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.LoadState{
		Phase:      s.phase,
		Error:      s.errMsg,
		Generation: s.latest,
		LoadID:     s.loadID,
		Dashboard:  s.dashboard,
	}
}

// Dashboard returns the last published dashboard.
func (s *MemoryStore) Dashboard() (*domain.Dashboard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dashboard, s.dashboard != nil
}

// Begin marks generation gen as the newest load, moves to the loading phase
// and clears the previous load's error. Published data stays visible. Older
// generations are ignored.
func (s *MemoryStore) Begin(gen uint64, loadID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= s.latest {
		return false
	}
	s.latest = gen
	s.loadID = loadID
	s.errMsg = ""
	s.phase = domain.PhaseLoading
	return true
}

// Publish replaces the dashboard and clears the error if gen is still the
// newest load.
func (s *MemoryStore) Publish(gen uint64, dashboard *domain.Dashboard) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.latest {
		return false
	}
	s.dashboard = dashboard
	s.errMsg = ""
	s.phase = domain.PhaseReady
	return true
}

// Fail records a failed load if gen is still the newest load. The
// previously published dashboard is left in place.
func (s *MemoryStore) Fail(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.latest {
		return false
	}
	s.errMsg = message
	s.phase = domain.PhaseError
	return true
}
