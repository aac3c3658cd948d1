package normalize

// Source-key aliases per logical field, first match wins. Every list ends
// with the canonical JSON name so already-normalized records pass through
// unchanged.
var (
	aliasPlayerID    = []string{"PLAYER_player_id", "PLAYER_ID", "player_id"}
	aliasName        = []string{"PLAYER", "NAME", "name"}
	aliasHeight      = []string{"HT", "HEIGHT", "height"}
	aliasWeight      = []string{"WT", "WEIGHT", "weight"}
	aliasPosition    = []string{"POS", "POSITION", "position"}
	aliasAge         = []string{"AGE", "age"}
	aliasNationality = []string{"NATIONALITY", "nationality"}
	aliasURL         = []string{"PLAYER_url", "url"}

	aliasJersey         = []string{"#", "NO", "jersey_number"}
	aliasRosterDXV      = []string{"DXVi", "DXV", "dxv_rating"}
	aliasTransferDXV    = []string{"DXV", "dxv_rating"}
	aliasDXVLevel       = []string{"DXV LEVEL", "DXV_LEVEL", "dxv_level"}
	aliasClass          = []string{"CL", "CLASS", "class"}
	aliasHighSchool     = []string{"HIGH SCHOOL", "HIGH_SCHOOL", "high_school"}
	aliasRSCIRanking    = []string{"RSCI", "rsci_ranking"}
	aliasHometown       = []string{"HOMETOWN", "hometown"}
	aliasAAU            = []string{"AAU", "aau"}
	aliasTransferStatus = []string{"TR_STATUS", "TR STATUS", "transfer_status"}
	aliasCurrentTeam    = []string{"TEAM", "current_team"}
	aliasTeamID         = []string{"TEAM_team_id", "team_id"}
	aliasNCAALevel      = []string{"NCAA", "ncaa_level"}
	aliasNCAAInterest   = []string{"NCAA_INTEREST", "NCAA INTEREST", "ncaa_interest"}
	aliasEnglish        = []string{"ENGLISH", "english_level"}
	aliasVideoClips     = []string{"VC", "video_clips"}
	aliasHSState        = []string{"HS_ST", "HS ST", "hs_state"}
	aliasRank           = []string{"#", "rank"}
	aliasRSCIRank       = []string{"RSCI", "rsci_rank"}
	aliasLeague         = []string{"LEAGUE", "league"}
	aliasRankedTeam     = []string{"TEAM", "team"}
	aliasGameType       = []string{"TYPE", "type"}
	aliasGameNumber     = []string{"#", "game_number"}
	aliasGameDate       = []string{"DATE", "date"}
	aliasOpponent       = []string{"OPPONENT", "opponent"}
	aliasOpponentTeamID = []string{"OPPONENT_team_id", "opponent_team_id"}
	aliasOpponentURL    = []string{"OPPONENT_url", "opponent_url"}
	aliasResultOrTime   = []string{"RES/TIME", "RES_TIME", "result_or_time"}
	aliasRecord         = []string{"RECORD", "record"}
	aliasHighPoints     = []string{"HIGH POINTS", "HIGH_POINTS", "high_points"}
	aliasHighRebounds   = []string{"HIGH REBOUNDS", "HIGH_REBOUNDS", "high_rebounds"}
	aliasHighAssists    = []string{"HIGH ASSISTS", "HIGH_ASSISTS", "high_assists"}
	aliasPDFURL         = []string{"PDF_url", "pdf_url"}
	aliasBoxscoreURL    = []string{"RES/TIME_url", "boxscore_url"}
)

// Stat column aliases.
var (
	aliasGamesPlayed   = []string{"GP", "games_played"}
	aliasGamesStarted  = []string{"GS", "games_started"}
	aliasMinutes       = []string{"MIN", "MPG", "minutes"}
	aliasPoints        = []string{"PTS", "PPG", "points"}
	aliasRebounds      = []string{"REB", "RPG", "rebounds"}
	aliasAssists       = []string{"AST", "APG", "assists"}
	aliasPER           = []string{"PER", "per"}
	aliasSteals        = []string{"STL", "steals"}
	aliasBlocks        = []string{"BLK", "blocks"}
	aliasTurnovers     = []string{"TOV", "TO", "turnovers"}
	aliasFG2Made       = []string{"2PM", "fg2_made"}
	aliasFG2Attempted  = []string{"2PA", "fg2_attempted"}
	aliasFG2Percentage = []string{"2P%", "fg2_percentage"}
	aliasFG3Made       = []string{"3PM", "fg3_made"}
	aliasFG3Attempted  = []string{"3PA", "fg3_attempted"}
	aliasFG3Percentage = []string{"3P%", "fg3_percentage"}
	aliasFTMade        = []string{"FTM", "ft_made"}
	aliasFTAttempted   = []string{"FTA", "ft_attempted"}
	aliasFTPercentage  = []string{"FT%", "ft_percentage"}
	aliasPointsPer40   = []string{"P40", "points_per_40"}
	aliasReboundsPer40 = []string{"R40", "rebounds_per_40"}
	aliasAssistsPer40  = []string{"A40", "assists_per_40"}
)
