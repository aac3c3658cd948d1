package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// DefaultServiceName is reported when TelemetryConfig.ServiceName is empty.
const DefaultServiceName = "recruiting-dashboard-service"

const (
	meterScope     = "github.com/preston-bernstein/recruiting-dashboard-service/internal/metrics"
	otlpPushPeriod = 15 * time.Second
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup builds a Recorder backed by an OpenTelemetry meter provider. The
// provider always feeds a Prometheus registry, served by the returned
// handler, and also pushes over OTLP/HTTP when an endpoint is configured.
// When disabled it returns an in-memory Recorder and a nil handler.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	promReader, scrape, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}
	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		push, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(push))
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, nil, nil, err
	}
	provider := sdkmetric.NewMeterProvider(append(opts, sdkmetric.WithResource(res))...)

	inst, err := instrumentFactory(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, err
	}
	return newRecorder(inst), scrape, provider.Shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(otlpPushPeriod)), nil
}

// prometheusComponents uses a private registry so repeated Setup calls do
// not collide on the global one.
func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	requests       metric.Int64Counter
	requestLatency metric.Float64Histogram
	fetches        metric.Int64Counter
	fetchErrors    metric.Int64Counter
	fetchLatency   metric.Float64Histogram
	loads          metric.Int64Counter
	loadLatency    metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(meterScope)

	var errs []error
	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		errs = append(errs, err)
		return c
	}
	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc))
		errs = append(errs, err)
		return h
	}

	inst := &otelInstruments{
		requests:       counter("http_requests_total", "API requests by method, path and status."),
		requestLatency: histogram("http_request_duration_ms", "API request latency in milliseconds."),
		fetches:        counter("document_fetches_total", "Document fetch attempts, retries included."),
		fetchErrors:    counter("document_fetch_errors_total", "Document fetch attempts that failed."),
		fetchLatency:   histogram("document_fetch_duration_ms", "Document fetch latency in milliseconds."),
		loads:          counter("dashboard_loads_total", "Finished load cycles by outcome."),
		loadLatency:    histogram("dashboard_load_duration_ms", "Load cycle latency in milliseconds."),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	observe(o.requests, o.requestLatency, duration,
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
}

func (o *otelInstruments) recordFetch(document string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	doc := attribute.String(AttrDocument, document)
	observe(o.fetches, o.fetchLatency, duration, doc)
	if err != nil {
		o.fetchErrors.Add(context.Background(), 1, metric.WithAttributes(doc))
	}
}

func (o *otelInstruments) recordLoad(outcome string, duration time.Duration) {
	if o == nil {
		return
	}
	observe(o.loads, o.loadLatency, duration, attribute.String(AttrOutcome, outcome))
}

// observe counts one event and records its latency under the same attributes.
func observe(count metric.Int64Counter, latency metric.Float64Histogram, d time.Duration, attrs ...attribute.KeyValue) {
	ctx := context.Background()
	set := metric.WithAttributeSet(attribute.NewSet(attrs...))
	count.Add(ctx, 1, set)
	latency.Record(ctx, float64(d.Microseconds())/1000, set)
}
