package recruiting

import (
	"sort"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/players"
)

// Store exposes the last published dashboard.
type Store interface {
	Dashboard() (*domain.Dashboard, bool)
}

// Service serves the transfer, international and RSCI listings.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Transfers returns both portal lists filtered to statuses matching pattern.
func (s *Service) Transfers(pattern string) (domain.TransferPortal, error) {
	d, ok := s.store.Dashboard()
	if !ok {
		return domain.TransferPortal{}, domain.ErrNotLoaded
	}
	return domain.TransferPortal{
		Available: FilterByStatus(d.Transfers.Available, pattern),
		Committed: FilterByStatus(d.Transfers.Committed, pattern),
	}, nil
}

// International returns the international prospects.
func (s *Service) International() ([]players.InternationalPlayer, error) {
	d, ok := s.store.Dashboard()
	if !ok {
		return nil, domain.ErrNotLoaded
	}
	return d.International, nil
}

// Rankings returns RSCI entries ordered by rank, unranked entries last in
// source order.
func (s *Service) Rankings() ([]players.RankedPlayer, error) {
	d, ok := s.store.Dashboard()
	if !ok {
		return nil, domain.ErrNotLoaded
	}
	return SortByRank(d.Rankings), nil
}

// FilterByStatus keeps the players whose status matches pattern.
func FilterByStatus(list []players.TransferPlayer, pattern string) []players.TransferPlayer {
	out := make([]players.TransferPlayer, 0, len(list))
	for _, p := range list {
		if MatchStatus(p.TransferStatus, pattern) {
			out = append(out, p)
		}
	}
	return out
}

// SortByRank returns a sorted copy of list.
func SortByRank(list []players.RankedPlayer) []players.RankedPlayer {
	out := make([]players.RankedPlayer, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Ranked() != b.Ranked() {
			return a.Ranked()
		}
		return a.RankOrZero() < b.RankOrZero()
	})
	return out
}
