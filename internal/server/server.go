// Package server implements the HTTP front-end of pathfinder.
//
// Each client creates a session holding its own engine and driver, edits
// the grid and controls the search over a small JSON API, and polls frames
// rendered as SVG, PNG, text, DOT or JSON.
//
//	POST   /api/sessions                 create a session
//	GET    /api/sessions/{id}            session state and current frame
//	DELETE /api/sessions/{id}            stop a session
//	PUT    /api/sessions/{id}/grid       replace the grid (JSON, TOML or ASCII map)
//	POST   /api/sessions/{id}/walls      add, remove or toggle a wall
//	PUT    /api/sessions/{id}/source     move the source
//	PUT    /api/sessions/{id}/target     move the target
//	POST   /api/sessions/{id}/start      start the search
//	POST   /api/sessions/{id}/step       single step
//	POST   /api/sessions/{id}/play       start or resume timed stepping
//	POST   /api/sessions/{id}/pause      pause timed stepping
//	POST   /api/sessions/{id}/reset      back to editing
//	PUT    /api/sessions/{id}/speed      steps per second
//	PUT    /api/sessions/{id}/algorithm  select an algorithm
//	GET    /api/sessions/{id}/frame.{svg,png,txt,json}
//	GET    /api/sessions/{id}/tree.{dot,svg}
//	GET    /api/algorithms
//	GET    /healthz
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathfinder/pkg/cache"
)

// Config configures the HTTP server.
type Config struct {
	Addr        string
	SessionTTL  time.Duration
	MaxSessions int

	// CacheEntries bounds the search tree layout cache. Zero selects
	// cache.DefaultMaxEntries; a negative value disables caching.
	CacheEntries int
}

// Server represents the HTTP server lifecycle.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	store      *Store
	cache      cache.Cache
}

// New constructs a Server with its session store and routes.
func New(logger *log.Logger, cfg Config) *Server {
	store := NewStore(cfg.SessionTTL, cfg.MaxSessions)
	c := cache.NewNull()
	if cfg.CacheEntries >= 0 {
		c = cache.NewMemoryCache(cfg.CacheEntries)
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(logger, store, c),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: logger,
		store:  store,
		cache:  c,
	}
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Store returns the session store.
func (s *Server) Store() *Store { return s.store }

// Run serves until ctx is done, then shuts down gracefully. Expired
// sessions are swept once a minute.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting http server", "addr", s.httpServer.Addr)
		err := s.httpServer.ListenAndServe()
		if err == http.ErrServerClosed {
			err = nil
		}
		errc <- err
	}()

	sweep := time.NewTicker(time.Minute)
	defer sweep.Stop()
	for {
		select {
		case err := <-errc:
			s.store.Close()
			_ = s.cache.Close()
			return err
		case <-sweep.C:
			if n := s.store.Cleanup(); n > 0 {
				s.logger.Debug("expired sessions removed", "count", n)
			}
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return s.Shutdown(shutdownCtx)
		}
	}
}

// Shutdown gracefully terminates all active connections and sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	err := s.httpServer.Shutdown(ctx)
	s.store.Close()
	if cerr := s.cache.Close(); err == nil {
		err = cerr
	}
	return err
}
