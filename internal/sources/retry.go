package sources

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/logging"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/metrics"
)

const (
	defaultRetryAttempts = 1
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingSource wraps a Source with retry/backoff behavior and records
// every attempt.
type retryingSource struct {
	inner       Source
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetrying wraps the given source. maxAttempts <= 0 means a single
// attempt; backoff <= 0 uses the default linear step.
func NewRetrying(inner Source, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) Source {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingSource{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingSource) Fetch(ctx context.Context, document string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		body, err := r.inner.Fetch(ctx, document)
		r.recorder.RecordFetch(document, time.Since(start), err)
		if err == nil {
			logFetch(ctx, r.logger, slog.LevelDebug, r.name, document, "document fetched",
				slog.Int(logging.FieldAttempt, attempt),
				slog.Int(logging.FieldBytes, len(body)),
			)
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, lastErr
		}
		if statusErr, ok := AsStatusError(err); ok && statusErr.Permanent() {
			break
		}
		if attempt == r.maxAttempts {
			break
		}

		logFetch(ctx, r.logger, slog.LevelWarn, r.name, document, "document fetch retry",
			slog.Int(logging.FieldAttempt, attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Any(logging.FieldError, err),
		)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	logFetch(ctx, r.logger, slog.LevelWarn, r.name, document, "document fetch failed",
		slog.Any(logging.FieldError, lastErr),
	)
	return nil, lastErr
}
