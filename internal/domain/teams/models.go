package teams

import (
	"strings"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/players"
)

// TeamSnapshot is the program's own team: roster, per-player stats rows and
// the season schedule, all from one export file.
type TeamSnapshot struct {
	Name     string                 `json:"name"`
	Filename string                 `json:"filename"`
	Roster   []players.RosterPlayer `json:"roster"`
	Stats    []players.RosterPlayer `json:"stats"`
	Schedule []games.GameResult     `json:"schedule"`
}

// StatsByPlayerID indexes the stats rows by player id. Later rows win on
// duplicate ids. Rows with positional ids are left out.
func (t *TeamSnapshot) StatsByPlayerID() map[string]players.RosterPlayer {
	if t == nil {
		return nil
	}
	out := make(map[string]players.RosterPlayer, len(t.Stats))
	for _, row := range t.Stats {
		if row.PositionalID {
			continue
		}
		out[row.PlayerID] = row
	}
	return out
}

// StatsByName indexes the stats rows by case-folded player name. Rows
// without a name are left out; later rows win on duplicate names.
func (t *TeamSnapshot) StatsByName() map[string]players.RosterPlayer {
	if t == nil {
		return nil
	}
	out := make(map[string]players.RosterPlayer, len(t.Stats))
	for _, row := range t.Stats {
		if key := NameKey(row.Name); key != "" {
			out[key] = row
		}
	}
	return out
}

// NameKey is the form player names are compared in.
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
