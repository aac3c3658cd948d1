package players

// PlayerStats is a bag of optional numbers. A nil field was not reported
// by the source, which is different from a reported zero.
type PlayerStats struct {
	GamesPlayed   *float64 `json:"games_played,omitempty"`
	GamesStarted  *float64 `json:"games_started,omitempty"`
	Minutes       *float64 `json:"minutes,omitempty"`
	Points        *float64 `json:"points,omitempty"`
	Rebounds      *float64 `json:"rebounds,omitempty"`
	Assists       *float64 `json:"assists,omitempty"`
	PER           *float64 `json:"per,omitempty"`
	Steals        *float64 `json:"steals,omitempty"`
	Blocks        *float64 `json:"blocks,omitempty"`
	Turnovers     *float64 `json:"turnovers,omitempty"`
	FG2Made       *float64 `json:"fg2_made,omitempty"`
	FG2Attempted  *float64 `json:"fg2_attempted,omitempty"`
	FG2Percentage *float64 `json:"fg2_percentage,omitempty"`
	FG3Made       *float64 `json:"fg3_made,omitempty"`
	FG3Attempted  *float64 `json:"fg3_attempted,omitempty"`
	FG3Percentage *float64 `json:"fg3_percentage,omitempty"`
	FTMade        *float64 `json:"ft_made,omitempty"`
	FTAttempted   *float64 `json:"ft_attempted,omitempty"`
	FTPercentage  *float64 `json:"ft_percentage,omitempty"`
	PointsPer40   *float64 `json:"points_per_40,omitempty"`
	ReboundsPer40 *float64 `json:"rebounds_per_40,omitempty"`
	AssistsPer40  *float64 `json:"assists_per_40,omitempty"`
}

// IsEmpty reports whether no field was reported.
func (s PlayerStats) IsEmpty() bool {
	for _, v := range s.fields() {
		if v != nil {
			return false
		}
	}
	return true
}

// StatLine is a fully populated view of PlayerStats for display rows.
type StatLine struct {
	GamesPlayed   float64 `json:"games_played"`
	GamesStarted  float64 `json:"games_started"`
	Minutes       float64 `json:"minutes"`
	Points        float64 `json:"points"`
	Rebounds      float64 `json:"rebounds"`
	Assists       float64 `json:"assists"`
	PER           float64 `json:"per"`
	Steals        float64 `json:"steals"`
	Blocks        float64 `json:"blocks"`
	Turnovers     float64 `json:"turnovers"`
	FG2Made       float64 `json:"fg2_made"`
	FG2Attempted  float64 `json:"fg2_attempted"`
	FG2Percentage float64 `json:"fg2_percentage"`
	FG3Made       float64 `json:"fg3_made"`
	FG3Attempted  float64 `json:"fg3_attempted"`
	FG3Percentage float64 `json:"fg3_percentage"`
	FTMade        float64 `json:"ft_made"`
	FTAttempted   float64 `json:"ft_attempted"`
	FTPercentage  float64 `json:"ft_percentage"`
	PointsPer40   float64 `json:"points_per_40"`
	ReboundsPer40 float64 `json:"rebounds_per_40"`
	AssistsPer40  float64 `json:"assists_per_40"`
}

// Line fills every unreported field with fallback. Only display-row
// assembly should call this; normalized data keeps its nils.
func (s *PlayerStats) Line(fallback float64) StatLine {
	if s == nil {
		s = &PlayerStats{}
	}
	v := func(f *float64) float64 {
		if f == nil {
			return fallback
		}
		return *f
	}
	return StatLine{
		GamesPlayed:   v(s.GamesPlayed),
		GamesStarted:  v(s.GamesStarted),
		Minutes:       v(s.Minutes),
		Points:        v(s.Points),
		Rebounds:      v(s.Rebounds),
		Assists:       v(s.Assists),
		PER:           v(s.PER),
		Steals:        v(s.Steals),
		Blocks:        v(s.Blocks),
		Turnovers:     v(s.Turnovers),
		FG2Made:       v(s.FG2Made),
		FG2Attempted:  v(s.FG2Attempted),
		FG2Percentage: v(s.FG2Percentage),
		FG3Made:       v(s.FG3Made),
		FG3Attempted:  v(s.FG3Attempted),
		FG3Percentage: v(s.FG3Percentage),
		FTMade:        v(s.FTMade),
		FTAttempted:   v(s.FTAttempted),
		FTPercentage:  v(s.FTPercentage),
		PointsPer40:   v(s.PointsPer40),
		ReboundsPer40: v(s.ReboundsPer40),
		AssistsPer40:  v(s.AssistsPer40),
	}
}

func (s PlayerStats) fields() []*float64 {
	return []*float64{
		s.GamesPlayed, s.GamesStarted, s.Minutes, s.Points, s.Rebounds, s.Assists,
		s.PER, s.Steals, s.Blocks, s.Turnovers,
		s.FG2Made, s.FG2Attempted, s.FG2Percentage,
		s.FG3Made, s.FG3Attempted, s.FG3Percentage,
		s.FTMade, s.FTAttempted, s.FTPercentage,
		s.PointsPer40, s.ReboundsPer40, s.AssistsPer40,
	}
}
