package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/app/recruiting"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/app/roster"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/app/schedule"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/gameutil"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/rating"
)

func newStateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Run one load and summarize what was published",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			state := st.State()
			d := state.Dashboard
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"phase":               state.Phase,
					"load_id":             state.LoadID,
					"loaded_at":           d.LoadedAt,
					"team":                d.Team != nil,
					"transfers_available": len(d.Transfers.Available),
					"transfers_committed": len(d.Transfers.Committed),
					"international":       len(d.International),
					"rankings":            len(d.Rankings),
				})
			}
			g := newGrid("Load "+state.LoadID, "DATASET", "ROWS")
			teamRows := 0
			if d.Team != nil {
				teamRows = len(d.Team.Roster)
			}
			g.add("roster", strconv.Itoa(teamRows))
			g.add("transfers available", strconv.Itoa(len(d.Transfers.Available)))
			g.add("transfers committed", strconv.Itoa(len(d.Transfers.Committed)))
			g.add("international", strconv.Itoa(len(d.International)))
			g.add("rankings", strconv.Itoa(len(d.Rankings)))
			return opts.printer(cmd.OutOrStdout()).render(g)
		},
	}
}

func newTeamCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "team",
		Short: "Show the team snapshot header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			team, err := roster.NewService(st).Team()
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), team)
			}
			if team == nil {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no team data")
				return err
			}
			g := newGrid(team.Name, "FIELD", "VALUE")
			g.add("file", team.Filename)
			g.add("roster", strconv.Itoa(len(team.Roster)))
			g.add("stats rows", strconv.Itoa(len(team.Stats)))
			g.add("games", strconv.Itoa(len(team.Schedule)))
			return opts.printer(cmd.OutOrStdout()).render(g)
		},
	}
}

func newRosterCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Print the roster joined with season stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			rows, err := roster.NewService(st).Rows()
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			g := newGrid("Roster", "#", "PLAYER", "POS", "CL", "DXV", "GP", "PTS", "REB", "AST", "3P%")
			for _, r := range rows {
				i := g.add(r.JerseyNumber, r.Name, r.Position, r.Class, r.DXV.Label,
					stat(r.Line.GamesPlayed), stat(r.Line.Points), stat(r.Line.Rebounds),
					stat(r.Line.Assists), pctStat(r.Line.FG3Percentage))
				g.shade(i, 4, r.DXV)
			}
			return opts.printer(cmd.OutOrStdout()).render(g)
		},
	}
}

func newScheduleCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print upcoming and recent games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			processed, err := schedule.NewService(st, schedule.Config{
				RecentLimit: opts.cfg.Dashboard.RecentLimit,
				StripLimit:  opts.cfg.Dashboard.StripLimit,
			}).Processed(limit)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), processed)
			}
			p := opts.printer(cmd.OutOrStdout())

			upcoming := newGrid("Upcoming", "DATE", "OPPONENT", "SITE")
			for _, game := range processed.Upcoming {
				upcoming.add(gameutil.FormatLongDate(game.Date), game.CleanOpponent, site(game.IsHome))
			}
			if err := p.render(upcoming); err != nil {
				return err
			}

			recent := newGrid("Recent", "DATE", "OPPONENT", "SITE", "RESULT", "RECORD")
			for _, game := range processed.Recent {
				opp := gameutil.ParseOpponent(game.Opponent)
				recent.add(game.Date, opp.Name, site(opp.IsHome), game.ResultOrTime, game.Record)
			}
			return p.render(recent)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of recent games; 0 uses RECENT_GAMES_LIMIT")
	return cmd
}

func newStripCmd(opts *options) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "strip",
		Short: "Print the recent-games strip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			strip, err := schedule.NewService(st, schedule.Config{
				RecentLimit: opts.cfg.Dashboard.RecentLimit,
				StripLimit:  opts.cfg.Dashboard.StripLimit,
			}).Strip(n)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), strip)
			}
			g := newGrid("Recent games", "DATE", "OPPONENT", "SITE", "RESULT")
			for _, game := range strip {
				result := string(game.Outcome.Kind)
				if game.Outcome.Score != "" {
					result += " " + game.Outcome.Score
				}
				g.add(game.ShortDate, game.CleanOpponent, site(game.IsHome), result)
			}
			return opts.printer(cmd.OutOrStdout()).render(g)
		},
	}
	cmd.Flags().IntVar(&n, "n", 0, "Number of games; 0 uses STRIP_GAMES_LIMIT")
	return cmd
}

func newTransfersCmd(opts *options) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "transfers",
		Short: "Print transfer portal entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			portal, err := recruiting.NewService(st).Transfers(status)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), portal)
			}
			p := opts.printer(cmd.OutOrStdout())
			if err := p.render(transferGrid("Available", portal.Available)); err != nil {
				return err
			}
			return p.render(transferGrid("Committed", portal.Committed))
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Case-insensitive status substring to match")
	return cmd
}

func transferGrid(title string, list []players.TransferPlayer) *grid {
	g := newGrid(title, "PLAYER", "POS", "CL", "TEAM", "STATUS", "DXV")
	for _, p := range list {
		sw := rating.DXVSwatch(p.DXVRating)
		i := g.add(p.Name, p.Position, p.Class, p.CurrentTeam, p.TransferStatus, sw.Label)
		g.shade(i, 5, sw)
	}
	return g
}

func newInternationalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "international",
		Short: "Print international prospects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			list, err := recruiting.NewService(st).International()
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			g := newGrid("International", "PLAYER", "POS", "HT", "NATIONALITY", "LEVEL", "INTEREST")
			for _, p := range list {
				g.add(p.Name, p.Position, p.Height, p.Nationality, p.NCAALevel, p.NCAAInterest)
			}
			return opts.printer(cmd.OutOrStdout()).render(g)
		},
	}
}

func newRankingsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rankings",
		Short: "Print RSCI rankings, unranked last",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			list, err := recruiting.NewService(st).Rankings()
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			g := newGrid("RSCI", "RANK", "PLAYER", "POS", "TEAM", "LEAGUE")
			for _, p := range list {
				g.add(rating.RankLabel(p.Rank), p.Name, p.Position, p.Team, p.League)
			}
			return opts.printer(cmd.OutOrStdout()).render(g)
		},
	}
}

func newColorCmd(opts *options) *cobra.Command {
	var dxv bool
	cmd := &cobra.Command{
		Use:   "color [value]",
		Short: "Show the ramp color for a percentile (0-1) or, with --dxv, a rating (0-100)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 1 {
				raw = strings.TrimSpace(args[0])
			}

			var sw rating.Swatch
			switch {
			case raw == "":
				sw = rating.PercentileColor(nil)
			case dxv:
				if _, err := strconv.ParseFloat(raw, 64); err != nil {
					return fmt.Errorf("invalid rating %q", raw)
				}
				sw = rating.DXVSwatch(raw)
			default:
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("invalid percentile %q", raw)
				}
				sw = rating.PercentileColor(&v)
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), sw)
			}
			g := newGrid("", "LABEL", "HEX", "CSS")
			i := g.add(sw.Label, sw.Color.Hex(), sw.CSS)
			g.shade(i, 0, sw)
			return opts.printer(cmd.OutOrStdout()).render(g)
		},
	}
	cmd.Flags().BoolVar(&dxv, "dxv", false, "Treat the value as a 0-100 DXV rating")
	return cmd
}

func site(home bool) string {
	if home {
		return "home"
	}
	return "away"
}
