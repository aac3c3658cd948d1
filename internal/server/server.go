// Package server wires sources, the aggregator, the poller and the HTTP API
// into a runnable service.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/aggregator"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/app/recruiting"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/app/roster"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/app/schedule"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/config"
	httpserver "github.com/preston-bernstein/recruiting-dashboard-service/internal/http"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/http/handlers"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/http/middleware"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/logging"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/poller"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	aggregator    *aggregator.Aggregator
	httpServer    httpServer
	metricsServer httpServer
	loop          Loop
	metricsStop   func(context.Context) error
}

// New constructs a server reading documents from the configured source.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithSource(cfg, logger, nil)
}

// newServerWithSource lets tests inject the document source; it is still
// wrapped with retry and fetch metrics.
func newServerWithSource(cfg config.Config, logger *slog.Logger, src sources.Source) *Server {
	tel := buildMetrics(cfg, logger)

	if src == nil {
		src = NewSource(cfg.Source, logger, tel.recorder)
	} else {
		src = sources.NewRetrying(src, logger, tel.recorder, "custom", cfg.Source.RetryAttempts, cfg.Source.RetryBackoff)
	}

	memoryStore := store.NewMemoryStore()
	agg := aggregator.New(src, memoryStore, logger, tel.recorder, aggregator.Config{
		Documents: cfg.Source.Documents,
		TeamName:  cfg.Dashboard.TeamName,
	})
	plr := poller.New(agg, logger, cfg.RefreshInterval)

	var mounted http.Handler
	if tel.sharePort(cfg.Port) {
		mounted = tel.handler
	}
	httpSrv := buildHTTPServer(cfg, memoryStore, agg, logger, tel.recorder, plr, mounted)

	var metricsSrv httpServer
	if tel.handler != nil && !tel.sharePort(cfg.Port) {
		metricsSrv = newMetricsServer(tel.port, tel.handler)
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       tel.recorder,
		store:         memoryStore,
		aggregator:    agg,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		loop:          plr,
		metricsStop:   tel.shutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, loop Loop) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		loop:       loop,
	}
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, agg *aggregator.Aggregator, logger *slog.Logger, recorder *metrics.Recorder, plr Loop, metricsHandler http.Handler) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(handlers.Options{
		State:     memoryStore,
		Refresher: agg,
		Roster:    roster.NewService(memoryStore),
		Schedule: schedule.NewService(memoryStore, schedule.Config{
			RecentLimit: cfg.Dashboard.RecentLimit,
			StripLimit:  cfg.Dashboard.StripLimit,
		}),
		Recruiting: recruiting.NewService(memoryStore),
		Logger:     logger,
		StatusFn:   statusFn,
	})
	router := httpserver.NewRouter(handler, metricsHandler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	return newAPIServer(cfg.Port, wrapped)
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.loop.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.loop.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

type telemetry struct {
	recorder *metrics.Recorder
	handler  http.Handler
	shutdown func(context.Context) error
	port     string
}

// sharePort reports whether /metrics belongs on the API listener.
func (t telemetry) sharePort(apiPort string) bool {
	return t.handler != nil && (t.port == "" || t.port == apiPort)
}

func buildMetrics(cfg config.Config, logger *slog.Logger) telemetry {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any(logging.FieldError, err))
		return telemetry{recorder: metrics.NewRecorder()}
	}
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	if !recCfg.Enabled {
		handler = nil
	}
	return telemetry{recorder: rec, handler: handler, shutdown: shutdown, port: recCfg.Port}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
