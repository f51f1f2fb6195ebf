// Package server exposes the shell engine over a small JSON HTTP API.
// One engine serves every request, so commands execute strictly one at a
// time and session state carries over between calls exactly as it would
// in an interactive session.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/juju/ratelimit"

	"github.com/websh-dev/websh/core/logger"
	"github.com/websh-dev/websh/core/shell"
)

// executeRequest is the POST /execute body.
type executeRequest struct {
	Command string `json:"command"`
}

// Params configures a Server.
type Params struct {
	Engine *shell.Engine
	Log    *logger.Logger
	// RequestsPerSecond refills the rate limit bucket and Burst is its
	// capacity. Zero on either disables limiting.
	RequestsPerSecond float64
	Burst             int64
}

// Server serializes HTTP commands onto a single shell engine.
type Server struct {
	mu     sync.Mutex
	engine *shell.Engine
	log    *logger.Logger
	bucket *ratelimit.Bucket
}

// New creates a Server from params.
func New(params Params) *Server {
	s := &Server{
		engine: params.Engine,
		log:    params.Log,
	}
	if params.RequestsPerSecond > 0 && params.Burst > 0 {
		s.bucket = ratelimit.NewBucketWithRate(params.RequestsPerSecond, params.Burst)
	}
	return s
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/execute", s.handleExecute)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		s.deny(w, r, http.StatusMethodNotAllowed, "method not allowed", start)
		return
	}
	if s.bucket != nil && s.bucket.TakeAvailable(1) == 0 {
		s.deny(w, r, http.StatusTooManyRequests, "too many requests", start)
		return
	}

	// A missing or malformed body behaves like an empty command line.
	var req executeRequest
	json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	result := s.engine.Execute(req.Command)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
	s.logRequest(r, http.StatusOK, start)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "ok")
}

func (s *Server) deny(w http.ResponseWriter, r *http.Request, status int, msg string, start time.Time) {
	http.Error(w, msg, status)
	s.logRequest(r, status, start)
}

func (s *Server) logRequest(r *http.Request, status int, start time.Time) {
	s.log.LogHTTPRequest(logger.HTTPRequest{
		Method:         r.Method,
		Path:           r.URL.Path,
		RemoteAddr:     r.RemoteAddr,
		Status:         status,
		DurationMicros: int64(time.Since(start) / time.Microsecond),
	})
}

// ListenAndServe serves the API on addr until ctx is canceled, then
// drains in-flight requests before returning.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
