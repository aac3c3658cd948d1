package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/config"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/testutil"
)

func metricsSetupSuccess(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	_ = ctx
	rec, shutdown := testutil.NewRecorderWithShutdown()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("dashboard_loads_total 1\n"))
	})
	if !cfg.Enabled {
		handler = nil
	}
	return rec, handler, shutdown, nil
}

func withMetricsSetup(t *testing.T, fn func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error)) {
	t.Helper()
	orig := metricsSetup
	metricsSetup = fn
	t.Cleanup(func() { metricsSetup = orig })
}

func TestNewServerHandlesMetricsSetupFailure(t *testing.T) {
	withMetricsSetup(t, func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	})

	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "9999"}
	srv := New(cfg, nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestMetricsServedOnSeparatePort(t *testing.T) {
	withMetricsSetup(t, metricsSetupSuccess)

	cfg := testConfig()
	cfg.Port = "4000"
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "9999"}
	srv := New(cfg, nil)

	if srv.metricsServer == nil || srv.metricsServer.Addr() != ":9999" {
		t.Fatalf("expected metrics server on :9999, got %+v", srv.metricsServer)
	}
	if srv.metricsStop == nil {
		t.Fatalf("expected metrics shutdown hook")
	}
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestMetricsMountedWhenPortsMatch(t *testing.T) {
	withMetricsSetup(t, metricsSetupSuccess)

	cfg := testConfig()
	cfg.Port = "4000"
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "4000"}
	srv := New(cfg, nil)

	if srv.metricsServer != nil {
		t.Fatalf("expected no separate metrics server")
	}
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRealMetricsSetupRecordsRequests(t *testing.T) {
	cfg := testConfig()
	cfg.Port = "4000"
	cfg.Metrics = config.MetricsConfig{Enabled: true, Port: "4000", ServiceName: "test"}
	srv := New(cfg, nil)
	defer func() { _ = srv.metricsStop(context.Background()) }()

	testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if body := rr.Body.String(); !strings.Contains(body, "http_requests_total") {
		t.Fatalf("expected http_requests_total in scrape, got %s", body)
	}
}
