package normalize

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/tables"
)

func TestRosterPlayerMapsAliases(t *testing.T) {
	rec := tables.Record{
		"PLAYER_player_id": "p-1",
		"PLAYER":           "Sam Forward",
		"#":                json.Number("23"),
		"DXV":              "77",
		"DXV LEVEL":        "High Major",
		"POS":              "F",
		"HT":               "6-8",
		"WT":               "220",
		"CL":               "So",
		"AGE":              "19.8",
		"HIGH SCHOOL":      "Central HS",
		"RSCI":             "45",
		"HOMETOWN":         "Olean, NY",
		"AAU":              "Team Takeover",
		"NATIONALITY":      "USA",
		"PLAYER_url":       "https://example.com/p-1",
	}

	p := RosterPlayer(rec)
	if p.PlayerID != "p-1" || p.Name != "Sam Forward" || p.JerseyNumber != "23" {
		t.Fatalf("unexpected identity fields %+v", p.Player)
	}
	if p.DXVRating != "77" || p.DXVLevel != "High Major" {
		t.Fatalf("unexpected rating fields %q %q", p.DXVRating, p.DXVLevel)
	}
	if p.HighSchool != "Central HS" || p.RSCIRanking != "45" || p.Hometown != "Olean, NY" || p.AAU != "Team Takeover" {
		t.Fatalf("unexpected background fields %+v", p)
	}
	if p.Stats != nil {
		t.Fatalf("roster rows should not carry stats")
	}
}

func TestRosterPlayerPrefersDXVi(t *testing.T) {
	p := RosterPlayer(tables.Record{"DXVi": "91", "DXV": "70"})
	if p.DXVRating != "91" {
		t.Fatalf("expected DXVi to win, got %q", p.DXVRating)
	}
}

func TestMissingFieldsDefaultToEmpty(t *testing.T) {
	p := TransferPlayer(tables.Record{})
	if p.Name != "" || p.TransferStatus != "" || p.CurrentTeam != "" {
		t.Fatalf("expected empty defaults, got %+v", p)
	}
	if !p.Stats.IsEmpty() {
		t.Fatalf("expected unreported stats to stay nil, got %+v", p.Stats)
	}
}

func TestTransferPlayerStatusAliases(t *testing.T) {
	underscore := TransferPlayer(tables.Record{"TR_STATUS": "Committed", "DXV_LEVEL": "Mid Major"})
	spaced := TransferPlayer(tables.Record{"TR STATUS": "Committed", "DXV LEVEL": "Mid Major"})
	if underscore.TransferStatus != "Committed" || spaced.TransferStatus != "Committed" {
		t.Fatalf("expected both status spellings to map, got %q / %q", underscore.TransferStatus, spaced.TransferStatus)
	}
	if underscore.DXVLevel != spaced.DXVLevel {
		t.Fatalf("expected both level spellings to map, got %q / %q", underscore.DXVLevel, spaced.DXVLevel)
	}
}

func TestTransferPlayerStats(t *testing.T) {
	p := TransferPlayer(tables.Record{
		"PLAYER": "Pat", "TEAM": "Canisius", "TEAM_team_id": "t9",
		"PTS": "12.1", "3P%": "38.0", "P40": "20.3",
	})
	if p.CurrentTeam != "Canisius" || p.TeamID != "t9" {
		t.Fatalf("unexpected team fields %+v", p)
	}
	if p.Stats.Points == nil || *p.Stats.Points != 12.1 {
		t.Fatalf("expected points 12.1, got %v", p.Stats.Points)
	}
	if p.Stats.FG3Percentage == nil || *p.Stats.FG3Percentage != 38 {
		t.Fatalf("expected 3P%% 38, got %v", p.Stats.FG3Percentage)
	}
	if p.Stats.PointsPer40 == nil || *p.Stats.PointsPer40 != 20.3 {
		t.Fatalf("expected P40 20.3, got %v", p.Stats.PointsPer40)
	}
	if p.Stats.Rebounds != nil {
		t.Fatalf("expected unreported rebounds to be nil")
	}
}

func TestInternationalPlayer(t *testing.T) {
	p := InternationalPlayer(tables.Record{
		"PLAYER": "Luka", "CLASS": "2026", "NCAA": "High", "NCAA_INTEREST": "Medium",
		"ENGLISH": "Fluent", "VC": json.Number("4"), "HIGH_SCHOOL": "Real Madrid", "HS_ST": "ESP",
	})
	if p.Class != "2026" || p.NCAALevel != "High" || p.NCAAInterest != "Medium" {
		t.Fatalf("unexpected readiness fields %+v", p)
	}
	if p.EnglishLevel != "Fluent" || p.VideoClips != "4" || p.HighSchool != "Real Madrid" || p.HSState != "ESP" {
		t.Fatalf("unexpected optional fields %+v", p)
	}
}

func TestRankedPlayerRank(t *testing.T) {
	ranked := RankedPlayer(tables.Record{"#": "12", "RSCI": "12T", "LEAGUE": "EYBL"})
	if ranked.Rank == nil || *ranked.Rank != 12 {
		t.Fatalf("expected rank 12, got %v", ranked.Rank)
	}
	if ranked.RSCIRank != "12T" || ranked.League != "EYBL" {
		t.Fatalf("unexpected labels %+v", ranked)
	}
	if ranked.Stats != nil {
		t.Fatalf("expected no stats when none reported")
	}

	unranked := RankedPlayer(tables.Record{"#": "N/A"})
	if unranked.Rank != nil || unranked.RankOrZero() != 0 {
		t.Fatalf("expected nil rank and zero fallback, got %v", unranked.Rank)
	}
	absent := RankedPlayer(tables.Record{})
	if absent.Rank != nil {
		t.Fatalf("expected nil rank when absent")
	}

	withStats := RankedPlayer(tables.Record{"#": "1", "PTS": "22"})
	if withStats.Stats == nil || *withStats.Stats.Points != 22 {
		t.Fatalf("expected attached stats, got %+v", withStats.Stats)
	}
}

func TestListsAssignPositionalIDs(t *testing.T) {
	rows := []tables.Record{
		{"PLAYER": "A"},
		{"PLAYER": "B", "PLAYER_player_id": "real"},
		{"PLAYER": "C"},
	}
	roster := RosterPlayers(rows)
	ids := []string{roster[0].PlayerID, roster[1].PlayerID, roster[2].PlayerID}
	if diff := cmp.Diff([]string{"0", "real", "2"}, ids); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
	if !roster[0].PositionalID || roster[1].PositionalID || !roster[2].PositionalID {
		t.Fatalf("expected only generated ids flagged positional")
	}
	if got := len(InternationalPlayers(nil)); got != 0 {
		t.Fatalf("expected empty list for nil rows, got %d", got)
	}
}

func TestRosterStatsRowsAttachStats(t *testing.T) {
	rows := RosterStatsRows([]tables.Record{{"PLAYER_player_id": "9", "GP": "10"}, {"PLAYER_player_id": "8"}})
	if rows[0].Stats == nil || *rows[0].Stats.GamesPlayed != 10 {
		t.Fatalf("expected games played 10, got %+v", rows[0].Stats)
	}
	if rows[1].Stats == nil || !rows[1].Stats.IsEmpty() {
		t.Fatalf("expected empty but present stats for stats row, got %+v", rows[1].Stats)
	}
}

// roundTrip marshals a normalized value and decodes it back into a record
// the way the table decoder would.
func roundTrip(t *testing.T, v any) tables.Record {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var rec tables.Record
	if err := dec.Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rec
}

func TestNormalizeIsIdempotentOnCanonicalRecords(t *testing.T) {
	rosterRaw := tables.Record{
		"PLAYER_player_id": "p-1", "PLAYER": "Sam", "#": "3", "DXVi": "80", "DXV LEVEL": "A",
		"CL": "Jr", "HIGH SCHOOL": "HS", "PTS": "11", "2P%": "55.5",
	}
	roster := RosterStatsRow(rosterRaw)
	if diff := cmp.Diff(roster, RosterStatsRow(roundTrip(t, roster))); diff != "" {
		t.Fatalf("roster not idempotent (-first +second):\n%s", diff)
	}

	transfer := TransferPlayer(tables.Record{"PLAYER": "T", "TR STATUS": "Available", "DXV": "60", "TEAM": "X", "REB": "4"})
	if diff := cmp.Diff(transfer, TransferPlayer(roundTrip(t, transfer))); diff != "" {
		t.Fatalf("transfer not idempotent (-first +second):\n%s", diff)
	}

	intl := InternationalPlayer(tables.Record{"PLAYER": "I", "CLASS": "2025", "NCAA": "D1", "HS_ST": "FR"})
	if diff := cmp.Diff(intl, InternationalPlayer(roundTrip(t, intl))); diff != "" {
		t.Fatalf("international not idempotent (-first +second):\n%s", diff)
	}

	ranked := RankedPlayer(tables.Record{"PLAYER": "R", "#": "4", "RSCI": "4", "TEAM": "Duke", "AST": "5"})
	if diff := cmp.Diff(ranked, RankedPlayer(roundTrip(t, ranked))); diff != "" {
		t.Fatalf("ranked not idempotent (-first +second):\n%s", diff)
	}

	unranked := RankedPlayer(tables.Record{"PLAYER": "U", "#": "N/A"})
	if diff := cmp.Diff(unranked, RankedPlayer(roundTrip(t, unranked))); diff != "" {
		t.Fatalf("unranked not idempotent (-first +second):\n%s", diff)
	}
}

func TestCanonicalAndAliasedRecordsAgree(t *testing.T) {
	aliased := tables.Record{"PLAYER_player_id": "5", "PLAYER": "Ann", "TR_STATUS": "Committed", "DXV": "50", "TEAM": "Y"}
	canonical := tables.Record{"player_id": "5", "name": "Ann", "transfer_status": "Committed", "dxv_rating": "50", "current_team": "Y"}
	if diff := cmp.Diff(TransferPlayer(aliased), TransferPlayer(canonical)); diff != "" {
		t.Fatalf("aliased and canonical differ (-aliased +canonical):\n%s", diff)
	}
}
