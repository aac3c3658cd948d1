// Package aggregator loads every dashboard document, normalizes them and
// publishes the result as one snapshot.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/logging"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources"
)

// DefaultTeamName labels the team snapshot when none is configured.
const DefaultTeamName = "St. Bonaventure"

// Store receives the outcome of each load. Writes for a generation other
// than the newest begun must be rejected.
type Store interface {
	Begin(gen uint64, loadID string) bool
	Publish(gen uint64, dashboard *domain.Dashboard) bool
	Fail(gen uint64, message string) bool
	State() domain.LoadState
}

// Config tunes an Aggregator.
type Config struct {
	Documents sources.Documents
	TeamName  string
}

// Aggregator runs load cycles. Loads may overlap; starting a load cancels
// the one in flight, and only the newest load can publish.
type Aggregator struct {
	source   sources.Source
	store    Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	docs     sources.Documents
	teamName string
	now      func() time.Time
	newID    func() string

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// New constructs an Aggregator.
func New(source sources.Source, store Store, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Aggregator {
	teamName := cfg.TeamName
	if teamName == "" {
		teamName = DefaultTeamName
	}
	return &Aggregator{
		source:   source,
		store:    store,
		logger:   logger,
		metrics:  recorder,
		docs:     cfg.Documents.WithDefaults(),
		teamName: teamName,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// State returns the store's current view.
func (a *Aggregator) State() domain.LoadState {
	return a.store.State()
}

// Refresh re-runs the load; it is the manual re-trigger.
func (a *Aggregator) Refresh(ctx context.Context) error {
	return a.Load(ctx)
}

// Load fetches all documents concurrently and publishes them together. If
// any fetch fails nothing is published and the error state is set; data
// from an earlier load stays visible.
func (a *Aggregator) Load(ctx context.Context) error {
	loadCtx, gen, loadID := a.begin(ctx)
	defer a.finish(gen)

	logger := logging.FromContext(ctx, a.logger)
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldLoadID, loadID), slog.Uint64(logging.FieldGeneration, gen))
	}
	start := a.now()

	payloads, err := a.fetchAll(loadCtx)
	if err != nil {
		return a.fail(logger, gen, start, ErrFetchFailed, err)
	}

	dashboard, err := Build(payloads, a.teamName)
	if err != nil {
		return a.fail(logger, gen, start, ErrDecodeFailed, err)
	}
	dashboard.LoadID = loadID
	dashboard.LoadedAt = a.now()

	if !a.store.Publish(gen, dashboard) {
		a.metrics.RecordLoad(metrics.OutcomeStale, time.Since(start))
		logging.Info(logger, "discarding superseded load")
		return ErrSuperseded
	}
	a.metrics.RecordLoad(metrics.OutcomeReady, time.Since(start))
	logging.Info(logger, "dashboard published",
		slog.Bool("team", dashboard.Team != nil),
		slog.Int("transfers_available", len(dashboard.Transfers.Available)),
		slog.Int("transfers_committed", len(dashboard.Transfers.Committed)),
		slog.Int("international", len(dashboard.International)),
		slog.Int("rankings", len(dashboard.Rankings)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

// begin assigns the next generation, cancels the load it supersedes and
// marks the store as loading.
func (a *Aggregator) begin(parent context.Context) (context.Context, uint64, string) {
	ctx, cancel := context.WithCancel(parent)
	loadID := a.newID()

	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	// Begin before cancel: once canceled, the old load must already be stale.
	a.store.Begin(a.gen, loadID)
	if a.cancel != nil {
		a.cancel()
	}
	a.cancel = cancel
	return ctx, a.gen, loadID
}

func (a *Aggregator) finish(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gen == gen && a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

func (a *Aggregator) fail(logger *slog.Logger, gen uint64, start time.Time, public error, cause error) error {
	if !a.store.Fail(gen, public.Error()) {
		a.metrics.RecordLoad(metrics.OutcomeStale, time.Since(start))
		logging.Info(logger, "superseded load ended", slog.Any("cause", cause))
		return ErrSuperseded
	}
	a.metrics.RecordLoad(metrics.OutcomeFailed, time.Since(start))
	logging.Error(logger, "dashboard load failed", cause)
	return fmt.Errorf("%w: %w", public, cause)
}

func (a *Aggregator) fetchAll(ctx context.Context) (Payloads, error) {
	names := a.docs.Names()
	bodies := make([][]byte, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			body, err := a.source.Fetch(gctx, name)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", name, err)
			}
			bodies[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Payloads{}, err
	}

	return Payloads{
		Team:               bodies[0],
		TransfersAvailable: bodies[1],
		TransfersCommitted: bodies[2],
		International:      bodies[3],
		Rankings:           bodies[4],
	}, nil
}

// IsSuperseded reports whether err came from a load replaced by a newer one.
func IsSuperseded(err error) bool {
	return errors.Is(err, ErrSuperseded)
}
