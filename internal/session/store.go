// Package session owns the trophic graphs behind the API. Each session holds
// exactly one graph and serializes every access to it, so the graph itself
// never needs to lock.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/terrascope/foodweb/internal/ecosystem"
)

var (
	// ErrNotFound is returned for an unknown session id.
	ErrNotFound = errors.New("session not found")

	// ErrLimitReached is returned when the store already holds its maximum
	// number of sessions.
	ErrLimitReached = errors.New("session limit reached")
)

// DefaultMaxSessions bounds a store created with a non-positive limit.
const DefaultMaxSessions = 1000

type Session struct {
	ID        string
	CreatedAt time.Time

	mu    sync.Mutex
	graph *ecosystem.Graph
}

// Do runs fn with exclusive access to the session graph.
func (s *Session) Do(fn func(g *ecosystem.Graph) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.graph)
}

// Replace swaps in a new graph, for example one built from a dataset.
func (s *Session) Replace(g *ecosystem.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.graph = g
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	max      int
	now      func() time.Time
}

func NewStore(maxSessions int) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}

	return &Store{
		sessions: make(map[string]*Session),
		max:      maxSessions,
		now:      time.Now,
	}
}

// Create registers a new session owning g. A nil g starts an empty graph.
func (s *Store) Create(g *ecosystem.Graph) (*Session, error) {
	if g == nil {
		g = ecosystem.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.max {
		return nil, fmt.Errorf("%w: %d", ErrLimitReached, s.max)
	}

	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		graph:     g,
	}
	s.sessions[sess.ID] = sess

	return sess, nil
}

func (s *Store) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	return sess, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	delete(s.sessions, id)

	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
