package normalize

import (
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/tables"
)

// Stats reads the stat columns of a row. Export rows carry stats inline;
// already-normalized rows carry them under "stats", which takes precedence.
// Missing columns stay nil.
func Stats(rec tables.Record) players.PlayerStats {
	if nested, ok := Nested(rec, "stats"); ok {
		rec = nested
	}
	return players.PlayerStats{
		GamesPlayed:   LookupFloat(rec, aliasGamesPlayed...),
		GamesStarted:  LookupFloat(rec, aliasGamesStarted...),
		Minutes:       LookupFloat(rec, aliasMinutes...),
		Points:        LookupFloat(rec, aliasPoints...),
		Rebounds:      LookupFloat(rec, aliasRebounds...),
		Assists:       LookupFloat(rec, aliasAssists...),
		PER:           LookupFloat(rec, aliasPER...),
		Steals:        LookupFloat(rec, aliasSteals...),
		Blocks:        LookupFloat(rec, aliasBlocks...),
		Turnovers:     LookupFloat(rec, aliasTurnovers...),
		FG2Made:       LookupFloat(rec, aliasFG2Made...),
		FG2Attempted:  LookupFloat(rec, aliasFG2Attempted...),
		FG2Percentage: LookupFloat(rec, aliasFG2Percentage...),
		FG3Made:       LookupFloat(rec, aliasFG3Made...),
		FG3Attempted:  LookupFloat(rec, aliasFG3Attempted...),
		FG3Percentage: LookupFloat(rec, aliasFG3Percentage...),
		FTMade:        LookupFloat(rec, aliasFTMade...),
		FTAttempted:   LookupFloat(rec, aliasFTAttempted...),
		FTPercentage:  LookupFloat(rec, aliasFTPercentage...),
		PointsPer40:   LookupFloat(rec, aliasPointsPer40...),
		ReboundsPer40: LookupFloat(rec, aliasReboundsPer40...),
		AssistsPer40:  LookupFloat(rec, aliasAssistsPer40...),
	}
}
