// Package server exposes a Decider over the lean poker player protocol: form
// posts on / and JSON frames on /ws.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/lox/leanbot/internal/protocol"
)

// Decider makes betting decisions. *strategy.Policy implements it.
type Decider interface {
	Decide(ctx context.Context, gs *protocol.GameState) (int, error)
	Showdown(ctx context.Context, gs *protocol.GameState)
}

// Server represents the player HTTP and WebSocket server
type Server struct {
	router   chi.Router
	decider  Decider
	version  string
	logger   *log.Logger
	clock    quartz.Clock
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

// Option configures a Server
type Option func(*Server)

// WithClock sets the clock used to time requests.
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

// New creates a server answering with decider and reporting version.
func New(decider Decider, version string, logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		decider: decider,
		version: version,
		logger:  logger.WithPrefix("server"),
		clock:   quartz.NewReal(),
		upgrader: websocket.Upgrader{
			// Game hosts connect from anywhere.
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		conns: make(map[string]*websocket.Conn),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleVersion)
	r.Post("/", s.handleAction)
	r.Get("/health", s.handleHealth)
	r.Get("/ws", s.handleWebSocket)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close closes every open WebSocket connection. http.Server.Shutdown does
// not track hijacked connections, so callers shutting down call both.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, conn := range s.conns {
		_ = conn.Close() // Ignore close errors during shutdown
		delete(s.conns, id)
	}
	return nil
}

// Connections returns the number of open WebSocket connections.
func (s *Server) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func (s *Server) track(id string, conn *websocket.Conn) {
	s.mu.Lock()
	s.conns[id] = conn
	total := len(s.conns)
	s.mu.Unlock()
	s.logger.Info("Client connected", "conn", id, "total", total)
}

func (s *Server) untrack(id string) {
	s.mu.Lock()
	delete(s.conns, id)
	total := len(s.conns)
	s.mu.Unlock()
	s.logger.Info("Client disconnected", "conn", id, "total", total)
}

// logRequests logs each request once it has been served.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := s.clock.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"latency", s.clock.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "OK") // Ignore write errors for health check
}
