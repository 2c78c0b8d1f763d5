// Package server exposes the chat engine and user registry over a JSON REST
// API: POST /chat for the request cycle, session history retrieval under
// /sessions, and user CRUD under /users.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tailored-agentic-units/chatbot/bot"
	"github.com/tailored-agentic-units/chatbot/observability"
	"github.com/tailored-agentic-units/chatbot/users"
)

// Request event emitted for every handled HTTP request.
const EventRequest observability.EventType = "server.request"

// Server is the HTTP transport in front of the chat engine.
type Server struct {
	engine   *bot.Engine
	registry *users.Registry
	observer observability.Observer
	router   *gin.Engine
	http     *http.Server
}

// Option configures a Server after construction.
type Option func(*Server)

// WithObserver overrides the default SlogObserver.
func WithObserver(o observability.Observer) Option {
	return func(s *Server) { s.observer = o }
}

// New creates a Server routing to the given engine and user registry.
func New(cfg *Config, engine *bot.Engine, registry *users.Registry, opts ...Option) *Server {
	s := &Server{
		engine:   engine,
		registry: registry,
		observer: observability.NewSlogObserver(slog.Default()),
	}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(s.observeRequests())

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)
	router.POST("/chat", s.handleChat)
	router.GET("/sessions", s.handleSessions)
	router.GET("/sessions/:session_id/history", s.handleHistory)

	router.POST("/users", s.handleCreateUser)
	router.GET("/users", s.handleListUsers)
	router.GET("/users/:user_id", s.handleGetUser)
	router.PUT("/users/:user_id", s.handleUpdateUser)
	router.DELETE("/users/:user_id", s.handleDeleteUser)

	s.router = router
	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until ListenAndServe returns. Blocks.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) observeRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.observer.OnEvent(c.Request.Context(), observability.Event{
			Type:      EventRequest,
			Level:     slog.LevelInfo,
			Timestamp: time.Now(),
			Source:    "server",
			Data: map[string]any{
				"method":      c.Request.Method,
				"path":        c.FullPath(),
				"status":      c.Writer.Status(),
				"duration_ms": time.Since(start).Milliseconds(),
			},
		})
	}
}
