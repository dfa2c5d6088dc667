package domain

import (
	"errors"
	"fmt"
	"time"
)

// Errors returned by domain operations.
var (
	ErrMoveOutOfRange = errors.New("move out of range")
)

// Entry is one board snapshot in the history together with the cell that
// was played to reach it. LastMove is nil for the initial empty board.
type Entry struct {
	Board    Board `json:"board"`
	LastMove *int  `json:"last_move,omitempty"`
}

// Game owns the move history, the pointer to the displayed move and the
// order in which the move list is shown.
type Game struct {
	History    []Entry `json:"history"`
	Current    int     `json:"current"`
	Descending bool    `json:"descending"`
}

// New returns a game holding only the empty board, with X to move.
func New() Game {
	return Game{History: []Entry{{}}}
}

// Squares returns the board at the current move.
func (g *Game) Squares() Board {
	return g.History[g.Current].Board
}

// XIsNext reports whether X moves at the current pointer.
func (g *Game) XIsNext() bool {
	return g.Current%2 == 0
}

// Play discards every entry after the current move, appends next as the new
// latest entry and moves the pointer onto it.
func (g *Game) Play(next Board, cell int) {
	history := make([]Entry, g.Current+1, g.Current+2)
	copy(history, g.History[:g.Current+1])
	history = append(history, Entry{Board: next, LastMove: &cell})
	g.History = history
	g.Current = len(history) - 1
}

// JumpTo moves the pointer to an earlier or later entry without touching
// the history.
func (g *Game) JumpTo(move int) error {
	if move < 0 || move >= len(g.History) {
		return fmt.Errorf("%w: %d of %d", ErrMoveOutOfRange, move, len(g.History))
	}
	g.Current = move
	return nil
}

// ToggleOrder flips the order of the move list.
func (g *Game) ToggleOrder() {
	g.Descending = !g.Descending
}

// Session is a game bound to one browser session.
type Session struct {
	ID      string    `json:"id"`
	Game    Game      `json:"game"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// NewSession returns a session with a fresh game.
func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, Game: New(), Created: now, Updated: now}
}

// Clone returns a deep copy so callers cannot mutate stored history.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Game.History = make([]Entry, len(s.Game.History))
	copy(cp.Game.History, s.Game.History)
	return &cp
}
