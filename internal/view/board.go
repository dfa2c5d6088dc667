// Package view projects game state into what a frontend shows: the board
// cells with their highlight, the status line and the move list. Both the
// HTML templates and the terminal UI render from these values.
package view

import "github.com/jaminalder/tictactoe-time-travel/internal/domain"

const size = 3

// Cell is one rendered board square.
type Cell struct {
	Index     int
	Value     string
	Highlight bool
}

// Board renders one snapshot for the player whose turn it is.
type Board struct {
	squares     domain.Board
	xIsNext     bool
	currentMove int
	line        domain.Line
	won         bool
}

// NewBoard evaluates squares once; every derived value is read from it.
func NewBoard(squares domain.Board, xIsNext bool, currentMove int) Board {
	line, won := domain.Evaluate(squares)
	return Board{squares: squares, xIsNext: xIsNext, currentMove: currentMove, line: line, won: won}
}

// ForGame renders the board at the game's current move.
func ForGame(g *domain.Game) Board {
	return NewBoard(g.Squares(), g.XIsNext(), g.Current)
}

// Click plays cell i for the player to move and hands the next snapshot to
// onPlay. Clicks on a decided board, an occupied cell or outside the board
// are ignored.
func (b Board) Click(i int, onPlay func(next domain.Board, cell int)) {
	if b.won || i < 0 || i >= len(b.squares) || b.squares[i] != domain.Empty {
		return
	}
	next := b.squares
	if b.xIsNext {
		next[i] = domain.X
	} else {
		next[i] = domain.O
	}
	onPlay(next, i)
}

// Winner returns the winning line, if any.
func (b Board) Winner() (domain.Line, bool) {
	return b.line, b.won
}

// Status is the line shown above the board.
func (b Board) Status() string {
	switch {
	case b.won:
		return "Winner: " + b.squares[b.line[0]].String()
	case b.currentMove == 9:
		return "Draw"
	case b.xIsNext:
		return "Next player: X"
	default:
		return "Next player: O"
	}
}

// Rows returns the cells in row-major order, three per row.
func (b Board) Rows() [][]Cell {
	rows := make([][]Cell, size)
	for r := range rows {
		rows[r] = make([]Cell, size)
		for c := range rows[r] {
			i := r*size + c
			rows[r][c] = Cell{
				Index:     i,
				Value:     b.squares[i].String(),
				Highlight: b.won && b.line.Contains(i),
			}
		}
	}
	return rows
}

// Play routes a click on cell through the board at g's current move into
// g.Play. It reports whether the click produced a move.
func Play(g *domain.Game, cell int) (played bool) {
	ForGame(g).Click(cell, func(next domain.Board, i int) {
		g.Play(next, i)
		played = true
	})
	return played
}
