package players

// Player holds the fields every listing shares. Variants embed it by value.
type Player struct {
	PlayerID    string `json:"player_id"`
	Name        string `json:"name"`
	Height      string `json:"height"`
	Weight      string `json:"weight"`
	Position    string `json:"position"`
	Age         string `json:"age"`
	Nationality string `json:"nationality,omitempty"`
	URL         string `json:"url,omitempty"`

	// PositionalID marks a PlayerID taken from the row's position because
	// the export had none. Such ids only key rows within one list.
	PositionalID bool `json:"-"`
}

// RosterPlayer is a row from the team roster or team stats table.
type RosterPlayer struct {
	Player
	JerseyNumber string       `json:"jersey_number"`
	DXVRating    string       `json:"dxv_rating"`
	DXVLevel     string       `json:"dxv_level"`
	Class        string       `json:"class"`
	HighSchool   string       `json:"high_school,omitempty"`
	RSCIRanking  string       `json:"rsci_ranking,omitempty"`
	Hometown     string       `json:"hometown,omitempty"`
	AAU          string       `json:"aau,omitempty"`
	Stats        *PlayerStats `json:"stats,omitempty"`
}

// TransferPlayer is a transfer portal entry, available or committed.
type TransferPlayer struct {
	Player
	TransferStatus string      `json:"transfer_status"`
	DXVRating      string      `json:"dxv_rating"`
	DXVLevel       string      `json:"dxv_level"`
	RSCIRanking    string      `json:"rsci_ranking,omitempty"`
	CurrentTeam    string      `json:"current_team"`
	TeamID         string      `json:"team_id,omitempty"`
	Class          string      `json:"class"`
	Stats          PlayerStats `json:"stats"`
}

// InternationalPlayer is an overseas prospect.
type InternationalPlayer struct {
	Player
	Class        string `json:"class"`
	NCAALevel    string `json:"ncaa_level"`
	NCAAInterest string `json:"ncaa_interest"`
	EnglishLevel string `json:"english_level,omitempty"`
	VideoClips   string `json:"video_clips,omitempty"`
	HighSchool   string `json:"high_school,omitempty"`
	HSState      string `json:"hs_state,omitempty"`
}

// RankedPlayer is an RSCI ranking entry. Rank is nil when the source rank
// is missing or not numeric.
type RankedPlayer struct {
	Player
	Rank     *int         `json:"rank"`
	RSCIRank string       `json:"rsci_rank"`
	League   string       `json:"league,omitempty"`
	Team     string       `json:"team,omitempty"`
	TeamID   string       `json:"team_id,omitempty"`
	Stats    *PlayerStats `json:"stats,omitempty"`
}

// RankOrZero returns the rank, or 0 for unranked entries.
func (p RankedPlayer) RankOrZero() int {
	if p.Rank == nil {
		return 0
	}
	return *p.Rank
}

// Ranked reports whether the entry carried a numeric rank.
func (p RankedPlayer) Ranked() bool {
	return p.Rank != nil
}
