package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/pathfinder/pkg/engine"
	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
)

// Default session limits.
const (
	// DefaultTTL is how long an untouched session lives.
	DefaultTTL = 30 * time.Minute

	// DefaultMaxSessions bounds concurrent sessions; each owns a goroutine.
	DefaultMaxSessions = 64
)

// Session is one visualizer instance: an engine and the driver stepping it.
type Session struct {
	ID        string
	Driver    *engine.Driver
	CreatedAt time.Time

	cancel context.CancelFunc

	mu        sync.Mutex
	expiresAt time.Time
}

// Engine returns the session's engine.
func (s *Session) Engine() *engine.Engine { return s.Driver.Engine() }

// ExpiresAt returns when the session expires unless touched.
func (s *Session) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt
}

// IsExpired returns true if the session has expired at now.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt())
}

func (s *Session) touch(now time.Time, ttl time.Duration) {
	s.mu.Lock()
	s.expiresAt = now.Add(ttl)
	s.mu.Unlock()
}

// Store keeps sessions in memory. Every session's driver runs on its own
// goroutine until the session is deleted, expires or the store is closed.
type Store struct {
	ttl time.Duration
	max int
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore returns an empty store. Non-positive limits select the defaults.
func NewStore(ttl time.Duration, maxSessions int) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Store{
		ttl:      ttl,
		max:      maxSessions,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create starts a session over g. Expired sessions are swept first; if the
// store is still full the call fails.
func (st *Store) Create(g *grid.Grid, opts ...engine.DriverOption) (*Session, error) {
	st.Cleanup()

	st.mu.Lock()
	defer st.mu.Unlock()
	if len(st.sessions) >= st.max {
		return nil, errors.New(errors.ErrCodeLimitExceeded, "too many sessions (limit %d)", st.max)
	}

	ctx, cancel := context.WithCancel(context.Background())
	now := st.now()
	s := &Session{
		ID:        uuid.NewString(),
		Driver:    engine.NewDriver(engine.New(g), opts...),
		CreatedAt: now,
		cancel:    cancel,
		expiresAt: now.Add(st.ttl),
	}
	st.sessions[s.ID] = s
	go s.Driver.Run(ctx)
	return s, nil
}

// Get returns the live session with the given id and extends its lifetime.
func (st *Store) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	st.mu.Lock()
	s, ok := st.sessions[id]
	st.mu.Unlock()

	now := st.now()
	if !ok || s.IsExpired(now) {
		if ok {
			st.Delete(id)
		}
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	s.touch(now, st.ttl)
	return s, nil
}

// Delete stops and removes a session. It reports whether it existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if ok {
		s.Driver.Pause()
		s.cancel()
	}
	return ok
}

// Cleanup removes expired sessions and returns how many were removed.
func (st *Store) Cleanup() int {
	now := st.now()
	st.mu.Lock()
	var expired []string
	for id, s := range st.sessions {
		if s.IsExpired(now) {
			expired = append(expired, id)
		}
	}
	st.mu.Unlock()

	for _, id := range expired {
		st.Delete(id)
	}
	return len(expired)
}

// Len returns the number of sessions, expired ones included.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Close stops every session.
func (st *Store) Close() {
	st.mu.Lock()
	ids := make([]string, 0, len(st.sessions))
	for id := range st.sessions {
		ids = append(ids, id)
	}
	st.mu.Unlock()

	for _, id := range ids {
		st.Delete(id)
	}
}
