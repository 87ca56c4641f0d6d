// Package session keeps the search state of open views in memory.
// Nothing here is persisted; a restart unmounts every view.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/justsurfingit/job-portal-search/internal/search"
)

// ErrSessionNotFound is returned for any id that does not name a live session.
var ErrSessionNotFound = errors.New("session not found")

// DefaultCapacity bounds the number of live sessions when none is configured.
const DefaultCapacity = 1024

// Session is one mounted search view.
type Session struct {
	ID         uuid.UUID         `json:"id"`
	State      search.State      `json:"state"`
	Refinement search.Refinement `json:"refinement"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

func (s *Session) clone() Session {
	out := *s
	out.Refinement = s.Refinement.Clone()
	return out
}

// Store is a bounded LRU of sessions. Updates are serialized, so a session's
// transitions apply one at a time.
type Store struct {
	mu      sync.Mutex
	cache   *lru.Cache[uuid.UUID, *Session]
	now     func() time.Time
	onEvict func(id uuid.UUID)
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithEvictHook is called with the id of every session that leaves the store,
// whether evicted for capacity or deleted. It runs under the store lock and
// must not call back into the Store.
func WithEvictHook(fn func(id uuid.UUID)) Option {
	return func(s *Store) { s.onEvict = fn }
}

// NewStore creates a store holding at most capacity sessions.
func NewStore(capacity int, opts ...Option) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	cache, err := lru.NewWithEvict[uuid.UUID, *Session](capacity, func(id uuid.UUID, _ *Session) {
		if s.onEvict != nil {
			s.onEvict(id)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	s.cache = cache
	return s, nil
}

// Create mounts a new session with the initial search state.
func (s *Store) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		ID:         uuid.New(),
		State:      search.Mount(),
		Refinement: search.DefaultRefinement(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.cache.Add(sess.ID, sess)
	return sess.clone()
}

// Get returns a copy of the session.
func (s *Store) Get(id uuid.UUID) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.cache.Get(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return sess.clone(), nil
}

// Update applies fn to the session under the store lock. When fn returns an
// error the session is left unchanged.
func (s *Store) Update(id uuid.UUID, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.cache.Get(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	draft := sess.clone()
	if err := fn(&draft); err != nil {
		return sess.clone(), err
	}
	draft.ID = sess.ID
	draft.CreatedAt = sess.CreatedAt
	draft.UpdatedAt = s.now()
	*sess = draft
	return sess.clone(), nil
}

// Delete unmounts a session. It reports whether the session existed.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Remove(id)
}

// Len is the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}

// ParseID parses a session id from a path parameter.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed id %q", ErrSessionNotFound, raw)
	}
	return id, nil
}
