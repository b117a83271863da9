package store

import (
	"sync"
	"time"

	"tictactoe/internal/game"
)

// Session is one server-held game owned by a single client
type Session struct {
	mu sync.RWMutex

	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	game game.Game
}

// NewSession creates a session at a fresh game
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		game:      game.New(),
	}
}

// Game returns the current game value (thread-safe)
func (s *Session) Game() game.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game
}

// Update replaces the game with fn(game) and returns the new value.
// Calls on the same session are serialized.
func (s *Session) Update(now time.Time, fn func(game.Game) game.Game) game.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game = fn(s.game)
	s.UpdatedAt = now
	return s.game
}

// IdleSince returns the time of the last update (thread-safe)
func (s *Session) IdleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.UpdatedAt
}
