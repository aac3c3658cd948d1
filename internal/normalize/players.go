package normalize

import (
	"strconv"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/tables"
)

func basePlayer(rec tables.Record) players.Player {
	return players.Player{
		PlayerID:    Lookup(rec, aliasPlayerID...),
		Name:        Lookup(rec, aliasName...),
		Height:      Lookup(rec, aliasHeight...),
		Weight:      Lookup(rec, aliasWeight...),
		Position:    Lookup(rec, aliasPosition...),
		Age:         Lookup(rec, aliasAge...),
		Nationality: Lookup(rec, aliasNationality...),
		URL:         Lookup(rec, aliasURL...),
	}
}

// RosterPlayer normalizes a team roster row. Roster rows carry no stats.
func RosterPlayer(rec tables.Record) players.RosterPlayer {
	return players.RosterPlayer{
		Player:       basePlayer(rec),
		JerseyNumber: Lookup(rec, aliasJersey...),
		DXVRating:    Lookup(rec, aliasRosterDXV...),
		DXVLevel:     Lookup(rec, aliasDXVLevel...),
		Class:        Lookup(rec, aliasClass...),
		HighSchool:   Lookup(rec, aliasHighSchool...),
		RSCIRanking:  Lookup(rec, aliasRSCIRanking...),
		Hometown:     Lookup(rec, aliasHometown...),
		AAU:          Lookup(rec, aliasAAU...),
	}
}

// RosterStatsRow normalizes a team stats row: roster fields plus stats.
func RosterStatsRow(rec tables.Record) players.RosterPlayer {
	p := RosterPlayer(rec)
	stats := Stats(rec)
	p.Stats = &stats
	return p
}

// TransferPlayer normalizes a transfer portal row.
func TransferPlayer(rec tables.Record) players.TransferPlayer {
	return players.TransferPlayer{
		Player:         basePlayer(rec),
		TransferStatus: Lookup(rec, aliasTransferStatus...),
		DXVRating:      Lookup(rec, aliasTransferDXV...),
		DXVLevel:       Lookup(rec, aliasDXVLevel...),
		RSCIRanking:    Lookup(rec, aliasRSCIRanking...),
		CurrentTeam:    Lookup(rec, aliasCurrentTeam...),
		TeamID:         Lookup(rec, aliasTeamID...),
		Class:          Lookup(rec, aliasClass...),
		Stats:          Stats(rec),
	}
}

// InternationalPlayer normalizes an international prospect row.
func InternationalPlayer(rec tables.Record) players.InternationalPlayer {
	return players.InternationalPlayer{
		Player:       basePlayer(rec),
		Class:        Lookup(rec, aliasClass...),
		NCAALevel:    Lookup(rec, aliasNCAALevel...),
		NCAAInterest: Lookup(rec, aliasNCAAInterest...),
		EnglishLevel: Lookup(rec, aliasEnglish...),
		VideoClips:   Lookup(rec, aliasVideoClips...),
		HighSchool:   Lookup(rec, aliasHighSchool...),
		HSState:      Lookup(rec, aliasHSState...),
	}
}

// RankedPlayer normalizes an RSCI ranking row. Stats are attached only when
// the row reported at least one stat.
func RankedPlayer(rec tables.Record) players.RankedPlayer {
	p := players.RankedPlayer{
		Player:   basePlayer(rec),
		Rank:     ParseRank(Lookup(rec, aliasRank...)),
		RSCIRank: Lookup(rec, aliasRSCIRank...),
		League:   Lookup(rec, aliasLeague...),
		Team:     Lookup(rec, aliasRankedTeam...),
		TeamID:   Lookup(rec, aliasTeamID...),
	}
	if stats := Stats(rec); !stats.IsEmpty() {
		p.Stats = &stats
	}
	return p
}

// The list helpers assign the row's position as the identifier when the
// export omitted one, so ids are unique within a listing.

// RosterPlayers normalizes a roster table.
func RosterPlayers(rows []tables.Record) []players.RosterPlayer {
	return mapRows(rows, RosterPlayer, func(p *players.RosterPlayer) *players.Player { return &p.Player })
}

// RosterStatsRows normalizes a team stats table.
func RosterStatsRows(rows []tables.Record) []players.RosterPlayer {
	return mapRows(rows, RosterStatsRow, func(p *players.RosterPlayer) *players.Player { return &p.Player })
}

// TransferPlayers normalizes a transfer portal list.
func TransferPlayers(rows []tables.Record) []players.TransferPlayer {
	return mapRows(rows, TransferPlayer, func(p *players.TransferPlayer) *players.Player { return &p.Player })
}

// InternationalPlayers normalizes an international prospects table.
func InternationalPlayers(rows []tables.Record) []players.InternationalPlayer {
	return mapRows(rows, InternationalPlayer, func(p *players.InternationalPlayer) *players.Player { return &p.Player })
}

// RankedPlayers normalizes an RSCI rankings table.
func RankedPlayers(rows []tables.Record) []players.RankedPlayer {
	return mapRows(rows, RankedPlayer, func(p *players.RankedPlayer) *players.Player { return &p.Player })
}

func mapRows[T any](rows []tables.Record, parse func(tables.Record) T, base func(*T) *players.Player) []T {
	out := make([]T, 0, len(rows))
	for i, rec := range rows {
		item := parse(rec)
		if p := base(&item); p.PlayerID == "" {
			p.PlayerID = strconv.Itoa(i)
			p.PositionalID = true
		}
		out = append(out, item)
	}
	return out
}
