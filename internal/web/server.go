// Package web hosts the DNA visualization form over HTTP.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/inodb/vibe-dna/internal/config"
	"github.com/inodb/vibe-dna/internal/pipeline"
)

const shutdownTimeout = 5 * time.Second

// formOverhead is the request body allowance on top of the sequence limit
// for field names and encoding.
const formOverhead = 1 << 10

// Server serves the sequence form and renders charts for each submission.
type Server struct {
	cfg      config.ServerConfig
	pipeline *pipeline.Pipeline
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server that runs submissions through p.
func NewServer(cfg config.ServerConfig, p *pipeline.Pipeline) *Server {
	s := &Server{
		cfg:      cfg,
		pipeline: p,
		logger:   zap.NewNop(),
	}
	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// SetLogger sets the logger for request and lifecycle messages.
func (s *Server) SetLogger(l *zap.Logger) {
	s.logger = l
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/", s.handleIndex)
	return s.logRequests(mux)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		errc <- s.server.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("graceful shutdown failed", zap.Error(err))
		if err := s.server.Close(); err != nil {
			return fmt.Errorf("close server: %w", err)
		}
	}
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.writePage(w, http.StatusOK, newPage(""))
	case http.MethodPost:
		s.handleSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.MaxSequenceLength)+formOverhead)
	if err := r.ParseForm(); err != nil {
		p := newPage("")
		p.DisplayError(fmt.Sprintf("Could not read the submitted form: %v", err))
		s.writePage(w, http.StatusRequestEntityTooLarge, p)
		return
	}

	input := r.PostFormValue("sequence")
	p := newPage(input)

	// Nothing is rendered until something is entered.
	if input == "" {
		s.writePage(w, http.StatusOK, p)
		return
	}

	if len(input) > s.cfg.MaxSequenceLength {
		p.DisplayError(fmt.Sprintf("The DNA sequence is too long (%d bases); the limit is %d.", len(input), s.cfg.MaxSequenceLength))
		s.writePage(w, http.StatusRequestEntityTooLarge, p)
		return
	}

	res, err := s.pipeline.Run(r.Context(), input, p)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		} else if !isInvalidSequence(err) {
			status = http.StatusInternalServerError
		}
		s.writePage(w, status, p)
		return
	}

	p.setSummary(res)
	s.writePage(w, http.StatusOK, p)
}

func (s *Server) writePage(w http.ResponseWriter, status int, p *page) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p.data); err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
