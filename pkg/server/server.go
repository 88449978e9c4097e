package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/sprout-ui/sprout/pkg/dom"
)

// Config configures a Server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// Title is the page title of the served shell.
	Title string

	// Root builds a fresh root node for each session. Required.
	Root func() *dom.Node

	// ContainerID is the id of the mount container in the page shell
	// (default "app").
	ContainerID string

	// Logger is the base logger (default slog.Default).
	Logger *slog.Logger

	// Registry receives the server's Prometheus metrics (default
	// prometheus.DefaultRegisterer). Metrics are registered once per
	// Server; give each Server in a process its own registry.
	Registry prometheus.Registerer
}

// Server serves the page shell and WebSocket sessions.
type Server struct {
	cfg      Config
	mux      *chi.Mux
	http     *http.Server
	upgrader websocket.Upgrader
	metrics  *metrics
	tracer   trace.Tracer
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// New creates a Server for the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Root == nil {
		return nil, errors.New("server: Config.Root is required")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ContainerID == "" {
		cfg.ContainerID = "app"
	}
	if cfg.Title == "" {
		cfg.Title = "sprout"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}

	s := &Server{
		cfg:      cfg,
		mux:      chi.NewRouter(),
		metrics:  newMetrics(cfg.Registry),
		tracer:   otel.Tracer("sprout"),
		logger:   cfg.Logger.With("component", "server"),
		sessions: make(map[string]*Session),
	}
	s.routes()
	s.http = &http.Server{Addr: cfg.Addr, Handler: s.mux}
	return s, nil
}

func (s *Server) routes() {
	s.mux.Use(chimiddleware.Recoverer)
	s.mux.Get("/", s.handleIndex)
	s.mux.Get("/healthz", s.handleHealth)
	s.mux.Get("/sprout/ws", s.handleWS)
	s.mux.Method(http.MethodGet, "/metrics", s.metricsHandler())
}

// Handler returns the server's HTTP handler, for mounting under an existing
// mux or for httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe runs the server until Shutdown or a listener error.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.cfg.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server and closes all sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for _, sess := range s.sessions {
		sess.close()
	}
	s.mu.Unlock()
	return s.http.Shutdown(ctx)
}

// SessionCount returns the number of active sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, s.cfg.Title, s.cfg.ContainerID, clientScript)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.metrics.wsErrors.WithLabelValues("upgrade").Inc()
		s.logger.Error("websocket upgrade failed", "err", err)
		return
	}

	sess := newSession(s, conn)
	s.addSession(sess)
	defer s.removeSession(sess)

	sess.run(r.Context())
}

func (s *Server) addSession(sess *Session) {
	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()
	s.metrics.activeSessions.Inc()
}

func (s *Server) removeSession(sess *Session) {
	s.mu.Lock()
	delete(s.sessions, sess.ID())
	s.mu.Unlock()
	s.metrics.activeSessions.Dec()
}

func (s *Server) metricsHandler() http.Handler {
	if g, ok := s.cfg.Registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// pageShell is the served HTML document: title, mount container, client
// script. The container starts empty; the session renders into it over the
// socket, so there is no hydration step.
const pageShell = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
<div id="%s"></div>
<script>%s</script>
</body>
</html>
`
