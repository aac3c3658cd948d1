// Package poller drives dashboard loads: one on boot, then optionally on a
// fixed interval.
package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/aggregator"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/logging"
)

// readyFailureLimit is how many failures in a row make the loop unready.
const readyFailureLimit = 3

// Loader runs one dashboard load.
type Loader interface {
	Load(ctx context.Context) error
}

// Poller loads the dashboard at startup and, when interval > 0, again on
// every tick.
type Poller struct {
	loader   Loader
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the load loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt,omitzero"`
	LastSuccess         time.Time `json:"lastSuccess,omitzero"`
	Superseded          int       `json:"superseded,omitempty"`
}

// IsReady reports whether a load has succeeded and the loop is not failing
// repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailureLimit
}

// New constructs a Poller. A non-positive interval disables periodic
// reloads; only the boot load runs.
func New(loader Loader, logger *slog.Logger, interval time.Duration) *Poller {
	if interval < 0 {
		interval = 0
	}
	return &Poller{
		loader:   loader,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// Interval returns the reload period; zero means reloads are disabled.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Start runs the boot load and the reload loop until ctx ends or Stop is
// called. Later calls are no-ops.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	go func() {
		defer close(p.exited)
		logging.Info(p.logger, "poller started", slog.Int64("interval_ms", p.interval.Milliseconds()))

		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			select {
			case <-p.done:
				cancel()
			case <-runCtx.Done():
			}
		}()

		p.loadOnce(runCtx)
		if p.interval == 0 {
			<-runCtx.Done()
			logging.Info(p.logger, "poller stopped")
			return
		}

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				logging.Info(p.logger, "poller stopped")
				return
			case <-ticker.C:
				p.loadOnce(runCtx)
			}
		}
	}()
}

// Stop halts the loop and waits for it to exit or for ctx to end.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})

	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-p.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Poller) loadOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	err := p.loader.Load(ctx)
	switch {
	case err == nil:
		p.recordSuccess(start)
		logging.Info(p.logger, "poller load complete",
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
	case aggregator.IsSuperseded(err):
		p.recordSuperseded()
		logging.Info(p.logger, "poller load superseded")
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		logging.Info(p.logger, "poller load canceled")
	default:
		p.recordFailure(err)
		logging.Error(p.logger, "poller load failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordSuperseded() {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.Superseded++
}

func (p *Poller) recordFailure(err error) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
