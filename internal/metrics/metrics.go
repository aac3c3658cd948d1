package metrics

import (
	"sync"
	"time"
)

type documentStats struct {
	fetches          int
	errors           int
	lastFetchLatency time.Duration
}

type loadStats struct {
	ready       int
	failed      int
	stale       int
	lastLatency time.Duration
}

// Recorder keeps in-memory counters for document fetches and load cycles,
// mirroring them into OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	docs  map[string]*documentStats
	loads loadStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		docs: make(map[string]*documentStats),
		otel: otel,
	}
}

// RecordFetch counts a single fetch attempt for a document.
func (r *Recorder) RecordFetch(document string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.docs[document]
	if !ok {
		stats = &documentStats{}
		r.docs[document] = stats
	}
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(document, duration, err)
	}
}

// RecordLoad counts a finished load cycle. outcome is one of the Outcome
// constants.
func (r *Recorder) RecordLoad(outcome string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	switch outcome {
	case OutcomeReady:
		r.loads.ready++
	case OutcomeFailed:
		r.loads.failed++
	case OutcomeStale:
		r.loads.stale++
	}
	r.loads.lastLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLoad(outcome, duration)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// DocumentSnapshot is a copy of the counters for one document.
type DocumentSnapshot struct {
	Fetches          int
	Errors           int
	LastFetchLatency time.Duration
}

// Document returns the counters recorded for a document.
func (r *Recorder) Document(document string) DocumentSnapshot {
	if r == nil {
		return DocumentSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.docs[document]
	if !ok || stats == nil {
		return DocumentSnapshot{}
	}
	return DocumentSnapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// LoadSnapshot is a copy of the load cycle counters.
type LoadSnapshot struct {
	Ready       int
	Failed      int
	Stale       int
	LastLatency time.Duration
}

// Loads returns the load cycle counters.
func (r *Recorder) Loads() LoadSnapshot {
	if r == nil {
		return LoadSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return LoadSnapshot{
		Ready:       r.loads.ready,
		Failed:      r.loads.failed,
		Stale:       r.loads.stale,
		LastLatency: r.loads.lastLatency,
	}
}
