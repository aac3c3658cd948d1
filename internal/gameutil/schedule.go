package gameutil

import (
	"sort"
	"time"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/timeutil"
)

// DefaultRecentLimit caps the recent-completed window.
const DefaultRecentLimit = 5

// ProcessSchedule partitions a season. A game is upcoming when it has no
// result yet or its date is today or later; everything else is completed.
// Upcoming games sort ascending by date. Recent holds the newest recentLimit
// completed games, newest first. Completed keeps schedule order.
func ProcessSchedule(schedule []games.GameResult, now time.Time, recentLimit int) games.ProcessedSchedule {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	today := timeutil.StartOfDay(now.In(time.Local))

	out := games.ProcessedSchedule{
		Upcoming:  make([]games.UpcomingGame, 0),
		Recent:    make([]games.GameResult, 0),
		Completed: make([]games.GameResult, 0),
	}
	completedAt := make([]time.Time, 0, len(schedule))

	for i, g := range schedule {
		date := gameTime(g)
		if IsUpcomingResult(g.ResultOrTime) || !date.Before(today) {
			opp := ParseOpponent(g.Opponent)
			out.Upcoming = append(out.Upcoming, games.UpcomingGame{
				ID:            gameKey(g, i),
				Opponent:      g.Opponent,
				CleanOpponent: opp.Name,
				Date:          date,
				DateString:    g.Date,
				IsHome:        opp.IsHome,
			})
			continue
		}
		out.Completed = append(out.Completed, g)
		completedAt = append(completedAt, date)
	}

	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		return out.Upcoming[i].Date.Before(out.Upcoming[j].Date)
	})

	order := make([]int, len(out.Completed))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return completedAt[order[i]].After(completedAt[order[j]])
	})
	for _, idx := range order {
		if len(out.Recent) == recentLimit {
			break
		}
		out.Recent = append(out.Recent, out.Completed[idx])
	}

	return out
}

// UpcomingGames returns at most limit upcoming games, soonest first.
func UpcomingGames(schedule []games.GameResult, now time.Time, limit int) []games.UpcomingGame {
	upcoming := ProcessSchedule(schedule, now, 0).Upcoming
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// RecentStrip builds the recent-games strip: the last n schedule rows,
// newest first, each with its parsed opponent and outcome.
func RecentStrip(schedule []games.GameResult, n int) []games.StripGame {
	start := 0
	if n > 0 && len(schedule) > n {
		start = len(schedule) - n
	}
	out := make([]games.StripGame, 0, len(schedule)-start)
	for i := len(schedule) - 1; i >= start; i-- {
		g := schedule[i]
		opp := ParseOpponent(g.Opponent)
		short := ""
		if t, err := ParseGameDate(g.Date); err == nil {
			short = FormatShortDate(t)
		}
		out = append(out, games.StripGame{
			Key:           gameKey(g, i),
			CleanOpponent: opp.Name,
			IsHome:        opp.IsHome,
			ShortDate:     short,
			Outcome:       ClassifyOutcome(g.ResultOrTime),
		})
	}
	return out
}
