package testutil

import (
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources"
)

// SampleTeamJSON is a team export with roster (0), an unused table (1),
// stats (2) and schedule (3).
const SampleTeamJSON = `{
  "filename": "st_bonaventure_2024.html",
  "total_tables_found": 4,
  "tables_selected": 4,
  "target_indexes": [0, 1, 2, 3],
  "tables": [
    {
      "table_index": 0,
      "table_name": "Roster",
      "headers": ["#", "PLAYER", "POS", "CL", "DXVi"],
      "data": [
        {"#": "1", "PLAYER": "Ada Guard", "PLAYER_player_id": "p1", "POS": "G", "HT": "6-2", "WT": "185", "CL": "Jr", "DXVi": "82", "DXV LEVEL": "A10 Starter", "HOMETOWN": "Olean, NY"},
        {"#": "12", "PLAYER": "Bo Forward", "PLAYER_player_id": "p2", "POS": "F", "CL": "So", "DXVi": "41"},
        {"#": "30", "PLAYER": "Cy Center", "POS": "C", "CL": "Fr"}
      ]
    },
    {"table_index": 1, "table_name": "Team Totals", "headers": [], "data": [{"PTS": 2100}]},
    {
      "table_index": 2,
      "table_name": "Player Stats",
      "headers": ["PLAYER", "GP", "PTS", "REB", "AST", "3P%"],
      "data": [
        {"PLAYER": "Ada Guard", "PLAYER_player_id": "p1", "GP": 31, "GS": 31, "MIN": "33.1", "PTS": "15.4", "REB": 3.2, "AST": "4.8", "3P%": "38.5%"},
        {"PLAYER": "Ghost Walkon", "PLAYER_player_id": "p99", "GP": 2, "PTS": 0.5}
      ]
    },
    {
      "table_index": 3,
      "table_name": "Schedule",
      "headers": ["TYPE", "#", "DATE", "OPPONENT", "RES/TIME", "RECORD"],
      "data": [
        {"TYPE": "REG", "#": "1", "DATE": "11/4/2024", "OPPONENT": "vsCanisius", "RES/TIME": "W 70-56", "RECORD": "1-0", "RES/TIME_url": "https://stats.example/box/1"},
        {"TYPE": "REG", "#": "2", "DATE": "11/9/2024", "OPPONENT": "@Fordham", "RES/TIME": "L 60-66", "RECORD": "1-1"},
        {"TYPE": "REG", "#": "3", "DATE": "3/1/2025", "OPPONENT": "vs Dayton", "RES/TIME": "TBD"}
      ]
    }
  ]
}`

// SampleAvailableJSON is a flat transfer list of uncommitted players.
const SampleAvailableJSON = `{
  "table_name": "Transfer Portal",
  "headers": ["PLAYER", "TR STATUS", "DXV", "TEAM"],
  "row_count": 2,
  "data": [
    {"PLAYER": "Dee Wing", "PLAYER_player_id": "t1", "TR STATUS": "Entered", "DXV": "77", "TEAM": "Siena", "TEAM_team_id": "siena", "PTS": "11.0"},
    {"PLAYER": "Eli Post", "TR_STATUS": "Withdrawn", "DXV": "55", "TEAM": "Niagara"}
  ]
}`

// SampleCommittedJSON is a flat transfer list of committed players.
const SampleCommittedJSON = `{
  "table_name": "Transfer Portal Committed",
  "headers": ["PLAYER", "TR STATUS"],
  "row_count": 1,
  "data": [
    {"PLAYER": "Fay Point", "PLAYER_player_id": "t9", "TR STATUS": "Committed - Dayton", "DXV": "90", "TEAM": "Iona"}
  ]
}`

// SampleInternationalJSON is a table-array export of international prospects.
const SampleInternationalJSON = `{
  "filename": "international.html",
  "tables_found": 1,
  "tables_with_data": 1,
  "tables": [
    {
      "table_index": 0,
      "table_name": "International",
      "headers": ["PLAYER", "NATIONALITY", "NCAA", "NCAA_INTEREST", "ENGLISH"],
      "data": [
        {"PLAYER": "Gus Lindqvist", "NATIONALITY": "SWE", "CL": "2025", "NCAA": "High Major", "NCAA_INTEREST": "High", "ENGLISH": "Fluent", "VC": 4}
      ]
    }
  ]
}`

// SampleRankingsJSON is a table-array export of RSCI rankings.
const SampleRankingsJSON = `{
  "filename": "rsci.html",
  "tables_found": 1,
  "tables_with_data": 1,
  "tables": [
    {
      "table_index": 0,
      "table_name": "RSCI",
      "headers": ["#", "PLAYER", "RSCI", "LEAGUE"],
      "data": [
        {"#": "1", "PLAYER": "Hal Top", "PLAYER_player_id": "r1", "RSCI": "1", "LEAGUE": "EYBL", "TEAM": "Mac Irvin Fire", "PTS": "22.5"},
        {"#": "NR", "PLAYER": "Ivy Unranked", "RSCI": "-", "LEAGUE": "3SSB"}
      ]
    }
  ]
}`

// SampleDocuments returns the sample exports keyed by default document name.
func SampleDocuments() map[string][]byte {
	return map[string][]byte{
		sources.TeamDocument:               []byte(SampleTeamJSON),
		sources.TransfersAvailableDocument: []byte(SampleAvailableJSON),
		sources.TransfersCommittedDocument: []byte(SampleCommittedJSON),
		sources.InternationalDocument:      []byte(SampleInternationalJSON),
		sources.RankingsDocument:           []byte(SampleRankingsJSON),
	}
}
