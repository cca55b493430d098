// Package server exposes idea composition and wizard sessions over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/julianshen/buildgen/internal/idea"
	"github.com/julianshen/buildgen/internal/wizard"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// RateLimit is the sustained requests per second allowed across all
	// clients. Zero or less disables limiting.
	RateLimit float64
	Burst     int
	// SessionTTL is how long an idle session is kept.
	SessionTTL time.Duration
	// Compose defaults to idea.Compose.
	Compose wizard.Composer
	// Now defaults to time.Now.
	Now func() time.Time
}

// Server is the BuildGen HTTP API.
type Server struct {
	engine   *gin.Engine
	sessions *SessionStore
	compose  wizard.Composer
	ttl      time.Duration
}

// New builds the server and registers its routes.
func New(opts Options) *Server {
	if opts.Compose == nil {
		opts.Compose = idea.Compose
	}

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	s := &Server{
		engine:   gin.New(),
		sessions: NewSessionStore(opts.SessionTTL, opts.Now),
		compose:  opts.Compose,
		ttl:      opts.SessionTTL,
	}

	s.engine.Use(gin.Recovery(), requestID(), requestLogger(), rateLimit(rate.NewLimiter(limit, burst)))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.health)

	api := s.engine.Group("/api/v1")
	api.GET("/options", s.options)
	api.POST("/ideas", s.createIdea)

	sessions := api.Group("/sessions")
	sessions.POST("", s.createSession)
	sessions.GET("/:id", s.getSession)
	sessions.DELETE("/:id", s.deleteSession)
	sessions.PUT("/:id/selection", s.setSelection)
	sessions.POST("/:id/advance", s.advance)
	sessions.POST("/:id/retreat", s.retreat)
	sessions.POST("/:id/finish", s.finish)
	sessions.POST("/:id/reset", s.reset)
	sessions.PUT("/:id/tab", s.setTab)
	sessions.GET("/:id/idea", s.getIdea)
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Sessions returns the session store backing the API.
func (s *Server) Sessions() *SessionStore { return s.sessions }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
// Idle sessions are pruned in the background while it runs.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.pruneLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	slog.Info("http server stopped")
	return nil
}

func (s *Server) pruneLoop(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.Prune(); n > 0 {
				slog.DebugContext(ctx, "pruned idle sessions", "count", n, "remaining", s.sessions.Len())
			}
		}
	}
}
