package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/poller"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	// POST /api/refresh holds the response until a whole load finishes.
	writeTimeout = 45 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout bounds gracefulShutdown; tests shorten it.
var shutdownTimeout = 10 * time.Second

// Loop is the background load loop the server starts and stops.
type Loop interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// httpServer is the part of *http.Server the server drives.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

// stdServer adapts *http.Server. When ln is set it is served instead of
// binding Addr.
type stdServer struct {
	srv *http.Server
	ln  net.Listener
}

// newAPIServer applies the API timeouts.
func newAPIServer(port string, h http.Handler) stdServer {
	return stdServer{srv: &http.Server{
		Addr:              ":" + port,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}}
}

// newMetricsServer serves scrapes only; it needs no write deadline.
func newMetricsServer(port string, h http.Handler) stdServer {
	return stdServer{srv: &http.Server{
		Addr:              ":" + port,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
	}}
}

func (s stdServer) ListenAndServe() error {
	if s.ln != nil {
		return s.srv.Serve(s.ln)
	}
	return s.srv.ListenAndServe()
}

func (s stdServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s stdServer) Addr() string                       { return s.srv.Addr }
func (s stdServer) Handler() http.Handler              { return s.srv.Handler }
