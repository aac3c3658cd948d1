package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/aggregator"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/config"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/logging"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/server"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/store"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/theme"
)

const (
	appName    = "recruiting-dashboard"
	appVersion = "dev"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	source    string
	dataDir   string
	baseURL   string
	timeout   time.Duration
	team      string
	logLevel  string
	themeFile string
	asJSON    bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "dashctl",
		Short:         "Inspect recruiting dashboard data",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.source, "source", "", "Document source (file, http); defaults to DATA_SOURCE")
	flags.StringVar(&opts.dataDir, "data-dir", "", "Directory holding the documents; defaults to DATA_DIR")
	flags.StringVar(&opts.baseURL, "base-url", "", "Base URL for the http source; defaults to DATA_BASE_URL")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Per-document fetch timeout")
	flags.StringVar(&opts.team, "team", "", "Team name shown on the team snapshot")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.themeFile, "theme-file", "", "Theme preference file; defaults to the user config dir")
	flags.BoolVar(&opts.asJSON, "json", false, "Print JSON instead of tables")

	cmd.AddCommand(
		newStateCmd(opts),
		newTeamCmd(opts),
		newRosterCmd(opts),
		newScheduleCmd(opts),
		newStripCmd(opts),
		newTransfersCmd(opts),
		newInternationalCmd(opts),
		newRankingsCmd(opts),
		newColorCmd(opts),
		newThemeCmd(opts),
	)
	return cmd
}

// resolve layers explicit flags over the environment configuration.
func (o *options) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source.Kind = o.source
	}
	if flags.Changed("data-dir") {
		cfg.Source.Dir = o.dataDir
	}
	if flags.Changed("base-url") {
		cfg.Source.BaseURL = o.baseURL
	}
	if flags.Changed("timeout") {
		cfg.Source.Timeout = o.timeout
	}
	if flags.Changed("team") {
		cfg.Dashboard.TeamName = o.team
	}
	if cfg.Log.Level == "" || flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}

	o.cfg = cfg
	o.logger = logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  cmd.ErrOrStderr(),
		Service: "dashctl",
		Version: appVersion,
	})
	return nil
}

// load runs one aggregator load and returns the populated store. A failed
// load returns the user-facing message from the load state.
func (o *options) load(ctx context.Context) (*store.MemoryStore, error) {
	memoryStore := store.NewMemoryStore()
	src := server.NewSource(o.cfg.Source, o.logger, nil)
	agg := aggregator.New(src, memoryStore, o.logger, nil, aggregator.Config{
		Documents: o.cfg.Source.Documents,
		TeamName:  o.cfg.Dashboard.TeamName,
	})
	if err := agg.Load(ctx); err != nil {
		if msg := memoryStore.State().Error; msg != "" {
			return nil, fmt.Errorf("%s: %w", msg, err)
		}
		return nil, err
	}
	return memoryStore, nil
}

func (o *options) themeStore() (*theme.FileStore, error) {
	if o.themeFile != "" {
		return theme.NewFileStore(o.themeFile), nil
	}
	path, err := theme.DefaultPath(appName)
	if err != nil {
		return nil, fmt.Errorf("locate theme preference: %w", err)
	}
	return theme.NewFileStore(path), nil
}

// printer builds a table printer for out using the stored theme. An
// unreadable preference falls back to the terminal background.
func (o *options) printer(out io.Writer) *printer {
	p := newPrinter(out, theme.Light)
	mode := theme.Resolve("", p.renderer.HasDarkBackground())
	if fs, err := o.themeStore(); err == nil {
		if resolved, err := fs.Resolve(p.renderer.HasDarkBackground()); err == nil {
			mode = resolved
		} else {
			logging.Warn(o.logger, "theme preference unreadable", "error", err)
		}
	}
	p.mode = mode
	return p
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
