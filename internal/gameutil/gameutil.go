// Package gameutil derives presentation values from schedule rows: opponent
// and venue, game dates, outcomes, and the upcoming/recent partitions.
package gameutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/timeutil"
)

const (
	homePrefix = "vs"
	awayPrefix = "@"
)

// Opponent is a parsed opponent string.
type Opponent struct {
	Name   string `json:"name"`
	IsHome bool   `json:"is_home"`
}

// ParseOpponent strips the venue prefix from an opponent string. "vs" marks a
// home game and "@" an away game. Strings with neither are treated as home,
// which misclassifies neutral-site games.
func ParseOpponent(opponent string) Opponent {
	switch {
	case strings.HasPrefix(opponent, homePrefix):
		return Opponent{Name: strings.TrimLeft(opponent[len(homePrefix):], " "), IsHome: true}
	case strings.HasPrefix(opponent, awayPrefix):
		return Opponent{Name: strings.TrimLeft(opponent[len(awayPrefix):], " "), IsHome: false}
	default:
		return Opponent{Name: opponent, IsHome: true}
	}
}

// ParseGameDate parses an export date ("1/4/2025") as local midnight.
func ParseGameDate(date string) (time.Time, error) {
	return timeutil.ParseSlashDate(date, time.Local)
}

// ClassifyOutcome reads a result-or-time field. Empty values, TBD/TBA
// placeholders and tip-off times are upcoming. A leading W or L token,
// followed by whitespace, a digit or nothing, marks a completed game; the
// rest of the text is kept as the score without checking that it is a
// number pair. Text such as "Wednesday 7PM" is upcoming.
func ClassifyOutcome(result string) games.Outcome {
	trimmed := strings.TrimSpace(result)
	if IsUpcomingResult(trimmed) {
		return games.Outcome{Kind: games.OutcomeUpcoming}
	}
	var kind games.OutcomeKind
	switch trimmed[0] {
	case 'W':
		kind = games.OutcomeWin
	case 'L':
		kind = games.OutcomeLoss
	default:
		return games.Outcome{Kind: games.OutcomeUpcoming}
	}
	rest := trimmed[1:]
	if rest != "" && !isMarkerBoundary(rest[0]) {
		return games.Outcome{Kind: games.OutcomeUpcoming}
	}
	return games.Outcome{Kind: kind, Score: strings.TrimLeft(rest, " \t")}
}

func isMarkerBoundary(b byte) bool {
	return b == ' ' || b == '\t' || (b >= '0' && b <= '9')
}

// IsUpcomingResult reports whether a result field describes a game that has
// not been played.
func IsUpcomingResult(result string) bool {
	if strings.TrimSpace(result) == "" {
		return true
	}
	if strings.Contains(result, "TBD") || strings.Contains(result, "TBA") {
		return true
	}
	return !strings.Contains(result, "W") && !strings.Contains(result, "L")
}

// FormatShortDate renders M/D without padding.
func FormatShortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// FormatLongDate renders an abbreviated month and day, e.g. "Jan 4".
func FormatLongDate(t time.Time) string {
	return t.Format("Jan 2")
}

func gameKey(g games.GameResult, index int) string {
	return fmt.Sprintf("%s-%d", g.GameNumber, index)
}

// gameTime parses a game's date; malformed dates become the zero time so
// they sort first and never count as on/after today.
func gameTime(g games.GameResult) time.Time {
	t, err := ParseGameDate(g.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
