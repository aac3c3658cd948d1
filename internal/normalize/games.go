package normalize

import (
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/tables"
)

// GameResult normalizes a schedule row. The date is kept as exported.
func GameResult(rec tables.Record) games.GameResult {
	return games.GameResult{
		Type:           Lookup(rec, aliasGameType...),
		GameNumber:     Lookup(rec, aliasGameNumber...),
		Date:           Lookup(rec, aliasGameDate...),
		Opponent:       Lookup(rec, aliasOpponent...),
		OpponentTeamID: Lookup(rec, aliasOpponentTeamID...),
		OpponentURL:    Lookup(rec, aliasOpponentURL...),
		ResultOrTime:   Lookup(rec, aliasResultOrTime...),
		Record:         Lookup(rec, aliasRecord...),
		HighPoints:     Lookup(rec, aliasHighPoints...),
		HighRebounds:   Lookup(rec, aliasHighRebounds...),
		HighAssists:    Lookup(rec, aliasHighAssists...),
		PDFURL:         Lookup(rec, aliasPDFURL...),
		BoxscoreURL:    Lookup(rec, aliasBoxscoreURL...),
	}
}

// GameResults normalizes a schedule table.
func GameResults(rows []tables.Record) []games.GameResult {
	out := make([]games.GameResult, 0, len(rows))
	for _, rec := range rows {
		out = append(out, GameResult(rec))
	}
	return out
}
