package schedule

import (
	"time"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/gameutil"
)

// DefaultStripLimit is how many schedule rows the recent-games strip shows.
const DefaultStripLimit = 12

// Store exposes the last published dashboard.
type Store interface {
	Dashboard() (*domain.Dashboard, bool)
}

// Config sets default limits. Zero values use the package defaults.
type Config struct {
	RecentLimit int
	StripLimit  int
}

// Service derives schedule views from the team snapshot.
type Service struct {
	store       Store
	now         func() time.Time
	recentLimit int
	stripLimit  int
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, cfg Config) *Service {
	recent := cfg.RecentLimit
	if recent <= 0 {
		recent = gameutil.DefaultRecentLimit
	}
	strip := cfg.StripLimit
	if strip <= 0 {
		strip = DefaultStripLimit
	}
	return &Service{store: store, now: time.Now, recentLimit: recent, stripLimit: strip}
}

// Games returns the raw schedule rows.
func (s *Service) Games() ([]games.GameResult, error) {
	d, ok := s.store.Dashboard()
	if !ok {
		return nil, domain.ErrNotLoaded
	}
	if d.Team == nil {
		return []games.GameResult{}, nil
	}
	return d.Team.Schedule, nil
}

// Processed partitions the schedule as of now. recentLimit <= 0 uses the
// configured default.
func (s *Service) Processed(recentLimit int) (games.ProcessedSchedule, error) {
	schedule, err := s.Games()
	if err != nil {
		return games.ProcessedSchedule{}, err
	}
	if recentLimit <= 0 {
		recentLimit = s.recentLimit
	}
	return gameutil.ProcessSchedule(schedule, s.now(), recentLimit), nil
}

// Strip returns the recent-games strip. n <= 0 uses the configured default.
func (s *Service) Strip(n int) ([]games.StripGame, error) {
	schedule, err := s.Games()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = s.stripLimit
	}
	return gameutil.RecentStrip(schedule, n), nil
}
