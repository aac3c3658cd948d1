package games

import "time"

// GameResult is one schedule row as exported. Date keeps the source's
// literal M/D/YYYY string and is parsed on demand.
type GameResult struct {
	Type           string `json:"type"`
	GameNumber     string `json:"game_number"`
	Date           string `json:"date"`
	Opponent       string `json:"opponent"`
	OpponentTeamID string `json:"opponent_team_id"`
	OpponentURL    string `json:"opponent_url,omitempty"`
	ResultOrTime   string `json:"result_or_time,omitempty"`
	Record         string `json:"record,omitempty"`
	HighPoints     string `json:"high_points,omitempty"`
	HighRebounds   string `json:"high_rebounds,omitempty"`
	HighAssists    string `json:"high_assists,omitempty"`
	PDFURL         string `json:"pdf_url,omitempty"`
	BoxscoreURL    string `json:"boxscore_url,omitempty"`
}

// OutcomeKind classifies a game's result field.
type OutcomeKind string

const (
	OutcomeUpcoming OutcomeKind = "UPCOMING"
	OutcomeWin      OutcomeKind = "WIN"
	OutcomeLoss     OutcomeKind = "LOSS"
)

// Outcome is the parsed result of a game. Score is the literal text that
// followed the W/L marker.
type Outcome struct {
	Kind  OutcomeKind `json:"kind"`
	Score string      `json:"score,omitempty"`
}

// Completed reports whether the game has a win or loss recorded.
func (o Outcome) Completed() bool {
	return o.Kind == OutcomeWin || o.Kind == OutcomeLoss
}

// UpcomingGame is a schedule row that has not been played yet.
type UpcomingGame struct {
	ID            string    `json:"id"`
	Opponent      string    `json:"opponent"`
	CleanOpponent string    `json:"clean_opponent"`
	Date          time.Time `json:"date"`
	DateString    string    `json:"date_string"`
	IsHome        bool      `json:"is_home"`
	Location      string    `json:"location,omitempty"`
}

// ProcessedSchedule partitions a season into upcoming and completed games.
// Recent holds the newest completed games, newest first.
type ProcessedSchedule struct {
	Upcoming  []UpcomingGame `json:"upcoming"`
	Recent    []GameResult   `json:"recent"`
	Completed []GameResult   `json:"completed"`
}

// StripGame is a compact card for the recent-games strip.
type StripGame struct {
	Key           string  `json:"key"`
	CleanOpponent string  `json:"clean_opponent"`
	IsHome        bool    `json:"is_home"`
	ShortDate     string  `json:"short_date"`
	Outcome       Outcome `json:"outcome"`
}
