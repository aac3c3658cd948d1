package teststubs

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources"
)

// StubSource is a test double for sources.Source. Documents missing from
// Docs fail with a 404 StatusError; Errs overrides per document.
type StubSource struct {
	Docs map[string][]byte
	Errs map[string]error
	// Gate, when set, holds every fetch until it is closed or the
	// context ends.
	Gate   chan struct{}
	Calls  atomic.Int32
	Notify chan struct{}

	notifyOnce sync.Once
}

// Fetch returns the configured document while tracking calls.
func (s *StubSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	s.Calls.Add(1)
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	if s.Gate != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.Gate:
		}
	}
	if err, ok := s.Errs[name]; ok && err != nil {
		return nil, err
	}
	body, ok := s.Docs[name]
	if !ok {
		return nil, &sources.StatusError{
			Source:     "stub",
			Document:   name,
			StatusCode: http.StatusNotFound,
			Message:    "not found",
		}
	}
	return body, nil
}

// StubLoader is a test double for anything that triggers a dashboard load.
type StubLoader struct {
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}

	notifyOnce sync.Once
}

// Load records the call and returns Err.
func (l *StubLoader) Load(ctx context.Context) error {
	_ = ctx
	l.Calls.Add(1)
	if l.Notify != nil {
		l.notifyOnce.Do(func() { close(l.Notify) })
	}
	return l.Err
}
