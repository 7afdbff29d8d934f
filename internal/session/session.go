package session

import (
	"sync"
	"time"

	"github.com/mway1/atomic"
)

// Session holds one game behind its own lock. A game is only touched while
// the lock is held, so moves on one session never interleave.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *atomic.Game
	updatedAt time.Time
}

// Move submits a move to the session's game.
func (s *Session) Move(from, to atomic.Square) (*atomic.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.game.Move(from, to)
	if err == nil {
		s.updatedAt = time.Now()
	}
	return res, err
}

// Do runs fn with exclusive access to the game. fn must not retain g.
func (s *Session) Do(fn func(g *atomic.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := fn(s.game)
	if err == nil {
		s.updatedAt = time.Now()
	}
	return err
}

// Snapshot is a consistent read of a session's game.
type Snapshot struct {
	Board     *atomic.Board
	Turn      atomic.Color
	Outcome   atomic.Outcome
	Method    atomic.Method
	UpdatedAt time.Time
}

// Snapshot returns a copy of the current game state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Board:     s.game.Board(),
		Turn:      s.game.Turn(),
		Outcome:   s.game.Outcome(),
		Method:    s.game.Method(),
		UpdatedAt: s.updatedAt,
	}
}
