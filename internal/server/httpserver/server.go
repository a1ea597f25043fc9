// Package httpserver serves a documentation site over HTTP.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
	"git.home.luguber.info/inful/mkpy/internal/logfields"
	"git.home.luguber.info/inful/mkpy/internal/metrics"
	smw "git.home.luguber.info/inful/mkpy/internal/server/middleware"
	"git.home.luguber.info/inful/mkpy/internal/site"
)

const (
	readHeaderTimeout = 10 * time.Second
	healthPath        = "/-/healthz"
	metricsPath       = "/-/metrics"
)

// Options configures optional server wiring.
type Options struct {
	// Addr overrides the host:port from the site configuration.
	Addr string
	// MetricsHandler is mounted at /-/metrics when non-nil.
	MetricsHandler http.Handler
	// Recorder receives per-request metrics. Defaults to the site's recorder.
	Recorder metrics.Recorder
	Logger   *slog.Logger
}

// Server serves rendered pages, static files and the sitemap for one site.
type Server struct {
	site         *site.Site
	opts         Options
	errorAdapter *ferrors.HTTPErrorAdapter
	router       chi.Router

	mu  sync.Mutex
	srv *http.Server
	ln  net.Listener
}

// New wires the router for s. The site is held by the server and handed to
// every request handler; there is no package-level state.
func New(s *site.Site, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Recorder == nil {
		opts.Recorder = s.Recorder()
	}
	if opts.Addr == "" {
		opts.Addr = s.Config().Addr()
	}

	srv := &Server{
		site:         s,
		opts:         opts,
		errorAdapter: ferrors.NewHTTPErrorAdapter(opts.Logger),
	}
	srv.router = srv.routes()
	return srv
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(smw.Chain(s.opts.Logger, s.errorAdapter, s.site.RenderErrorPage, s.opts.Recorder))
	r.Use(chimw.GetHead)

	r.Get(healthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if s.opts.MetricsHandler != nil {
		r.Method(http.MethodGet, metricsPath, s.opts.MetricsHandler)
	}
	r.Get("/*", s.handleDocs)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the listen address and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return errors.New("server already started")
	}

	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryNetwork, fmt.Sprintf("failed to listen on %s", s.opts.Addr)).
			Fatal().WithContext("addr", s.opts.Addr).Build()
	}

	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	go func(srv *http.Server) {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.opts.Logger.Error("docs server error", logfields.Error(err))
		}
	}(s.srv)

	s.opts.Logger.Info("HTTP server started", logfields.URL("http://"+ln.Addr().String()))
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.opts.Addr
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.ln = nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("docs server shutdown: %w", err)
	}
	s.opts.Logger.Info("HTTP server stopped")
	return nil
}
