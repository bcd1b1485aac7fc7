// Package session keeps one Game per session id. Requests for the same
// session are serialised; idle sessions expire after a TTL and the least
// recently used session is evicted when the store is full.
package session

import (
	"container/list"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"text-rpg/internal/game"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Defaults used when Options leaves a field zero.
const (
	DefaultTTL = 30 * time.Minute
	DefaultMax = 1000
)

// Options configures a Store.
type Options struct {
	TTL     time.Duration
	Max     int
	NewGame func() *game.Game
	Logger  *slog.Logger
	// Now overrides the clock in tests.
	Now func() time.Time
}

type entry struct {
	id       string
	mu       sync.Mutex // serialises game access
	game     *game.Game
	lastSeen time.Time
	elem     *list.Element
}

// Store maps session ids to games.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	lru     *list.List // front = most recently used
	ttl     time.Duration
	max     int
	newGame func() *game.Game
	logger  *slog.Logger
	now     func() time.Time
}

// New creates an empty Store.
func New(opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Max <= 0 {
		opts.Max = DefaultMax
	}
	if opts.NewGame == nil {
		opts.NewGame = func() *game.Game { return game.New(game.Options{}) }
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		entries: make(map[string]*entry),
		lru:     list.New(),
		ttl:     opts.TTL,
		max:     opts.Max,
		newGame: opts.NewGame,
		logger:  opts.Logger,
		now:     opts.Now,
	}
}

// Create starts a new game under a fresh id and returns its opening
// Response. When the store is full the least recently used session is
// evicted first.
func (s *Store) Create() (string, game.Response) {
	return s.Add(s.newGame())
}

// Add registers a game built by the caller, starts it and returns its id.
func (s *Store) Add(g *game.Game) (string, game.Response) {
	resp := g.Start()
	e := &entry{id: uuid.NewString(), game: g}

	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.entries) >= s.max {
		oldest := s.lru.Back()
		if oldest == nil {
			break
		}
		victim := oldest.Value.(*entry)
		s.removeLocked(victim)
		s.logger.Info("session evicted", "id", victim.id, "reason", "capacity")
	}
	e.lastSeen = s.now()
	e.elem = s.lru.PushFront(e)
	s.entries[e.id] = e
	return e.id, resp
}

// Reset ends the current life of the game behind id, recording it as a
// quit, and replaces the game with a new one.
func (s *Store) Reset(id string) (game.Response, error) {
	var resp game.Response
	err := s.With(id, func(g *game.Game) {
		g.Quit()
		fresh := s.newGame()
		resp = fresh.Start()
		*g = *fresh
	})
	return resp, err
}

// With runs fn with exclusive access to the session's game.
func (s *Store) With(id string, fn func(g *game.Game)) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	e.lastSeen = s.now()
	s.lru.MoveToFront(e.elem)
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.game)
	return nil
}

// Remove drops a session. Unknown ids are ignored.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok {
		s.removeLocked(e)
	}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	n := 0
	// The back of the list is the least recently used; stop at the first
	// fresh entry.
	for el := s.lru.Back(); el != nil; {
		e := el.Value.(*entry)
		if e.lastSeen.After(cutoff) {
			break
		}
		prev := el.Prev()
		s.removeLocked(e)
		s.logger.Info("session evicted", "id", e.id, "reason", "idle")
		n++
		el = prev
	}
	return n
}

// Run sweeps expired sessions every half TTL until ctx is done.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) removeLocked(e *entry) {
	s.lru.Remove(e.elem)
	delete(s.entries, e.id)
}
