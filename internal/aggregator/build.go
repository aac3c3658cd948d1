package aggregator

import (
	"fmt"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/normalize"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/tables"
)

// Payloads holds the raw bytes of one load's documents.
type Payloads struct {
	Team               []byte
	TransfersAvailable []byte
	TransfersCommitted []byte
	International      []byte
	Rankings           []byte
}

// Build decodes and normalizes every payload into a dashboard. Missing
// tables produce empty collections; only malformed JSON is an error.
func Build(p Payloads, teamName string) (*domain.Dashboard, error) {
	teamDoc, err := tables.DecodeTeam(p.Team)
	if err != nil {
		return nil, err
	}
	available, err := tables.DecodeRecordList(p.TransfersAvailable)
	if err != nil {
		return nil, fmt.Errorf("available transfers: %w", err)
	}
	committed, err := tables.DecodeRecordList(p.TransfersCommitted)
	if err != nil {
		return nil, fmt.Errorf("committed transfers: %w", err)
	}
	international, err := tables.DecodeTableArray(p.International)
	if err != nil {
		return nil, fmt.Errorf("international: %w", err)
	}
	rankings, err := tables.DecodeTableArray(p.Rankings)
	if err != nil {
		return nil, fmt.Errorf("rankings: %w", err)
	}

	intlTable, _ := international.First()
	rankTable, _ := rankings.First()

	return &domain.Dashboard{
		Team: buildTeam(teamDoc, teamName),
		Transfers: domain.TransferPortal{
			Available: normalize.TransferPlayers(available.Data),
			Committed: normalize.TransferPlayers(committed.Data),
		},
		International: normalize.InternationalPlayers(intlTable.Rows()),
		Rankings:      normalize.RankedPlayers(rankTable.Rows()),
	}, nil
}

// buildTeam needs all three team tables; with any one missing there is no
// team.
func buildTeam(doc tables.TeamDocument, name string) *teams.TeamSnapshot {
	roster, ok := doc.TableByIndex(tables.TeamRosterIndex)
	if !ok {
		return nil
	}
	stats, ok := doc.TableByIndex(tables.TeamStatsIndex)
	if !ok {
		return nil
	}
	schedule, ok := doc.TableByIndex(tables.TeamScheduleIndex)
	if !ok {
		return nil
	}
	return &teams.TeamSnapshot{
		Name:     name,
		Filename: doc.Filename,
		Roster:   normalize.RosterPlayers(roster.Rows()),
		Stats:    normalize.RosterStatsRows(stats.Rows()),
		Schedule: normalize.GameResults(schedule.Rows()),
	}
}
