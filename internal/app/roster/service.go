package roster

import (
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/rating"
)

// Store exposes the last published dashboard.
type Store interface {
	Dashboard() (*domain.Dashboard, bool)
}

// Row is one roster player joined with their stats row.
type Row struct {
	players.RosterPlayer
	Line     players.StatLine `json:"line"`
	HasStats bool             `json:"has_stats"`
	DXV      rating.Swatch    `json:"dxv"`
}

// Service assembles roster display rows using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Team returns the team snapshot, or nil when the export lacked one.
func (s *Service) Team() (*teams.TeamSnapshot, error) {
	d, ok := s.store.Dashboard()
	if !ok {
		return nil, domain.ErrNotLoaded
	}
	return d.Team, nil
}

// Rows joins the roster with stats in roster order. Players are matched by
// id, or by name when the export carried no ids. Stats rows with no roster
// match are dropped; players without stats get a zero line.
func (s *Service) Rows() ([]Row, error) {
	team, err := s.Team()
	if err != nil {
		return nil, err
	}
	return JoinRows(team), nil
}

// JoinRows builds display rows for a team snapshot.
func JoinRows(team *teams.TeamSnapshot) []Row {
	if team == nil {
		return []Row{}
	}
	statsByID := team.StatsByPlayerID()
	statsByName := team.StatsByName()
	rows := make([]Row, 0, len(team.Roster))
	for _, p := range team.Roster {
		row := Row{RosterPlayer: p, DXV: rating.DXVSwatch(p.DXVRating)}
		var (
			stats players.RosterPlayer
			ok    bool
		)
		if p.PositionalID {
			stats, ok = statsByName[teams.NameKey(p.Name)]
		} else {
			stats, ok = statsByID[p.PlayerID]
		}
		if ok && stats.Stats != nil {
			row.Stats = stats.Stats
			row.HasStats = true
		}
		row.Line = row.Stats.Line(0)
		rows = append(rows, row)
	}
	return rows
}
