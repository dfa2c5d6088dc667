// Package tui is a terminal frontend for the game built on Bubble Tea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaminalder/tictactoe-time-travel/internal/domain"
	"github.com/jaminalder/tictactoe-time-travel/internal/view"
)

type focus int

const (
	focusBoard focus = iota
	focusMoves
)

// Model holds one game plus the cursor state of the terminal UI.
type Model struct {
	game     domain.Game
	cursor   int // board cell under the cursor
	focus    focus
	selected int // index into the displayed move list
}

// New returns a model with a fresh game and the cursor on the centre cell.
func New() Model {
	return Model{game: domain.New(), cursor: 4}
}

// Game returns the game driven by the model.
func (m Model) Game() domain.Game {
	return m.game
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.switchFocus()
		return m, nil
	case "o":
		m.toggleOrder()
		return m, nil
	case "n":
		return New(), nil
	}

	if m.focus == focusMoves {
		m.updateMoves(key.String())
	} else {
		m.updateBoard(key.String())
	}
	return m, nil
}

func (m *Model) updateBoard(key string) {
	row, col := m.cursor/3, m.cursor%3
	switch key {
	case "up", "k":
		row = max(row-1, 0)
	case "down", "j":
		row = min(row+1, 2)
	case "left", "h":
		col = max(col-1, 0)
	case "right", "l":
		col = min(col+1, 2)
	case "enter", " ":
		view.Play(&m.game, m.cursor)
		return
	}
	m.cursor = row*3 + col
}

func (m *Model) updateMoves(key string) {
	moves := view.Moves(&m.game)
	m.selected = min(max(m.selected, 0), len(moves)-1)
	switch key {
	case "up", "k":
		m.selected = max(m.selected-1, 0)
	case "down", "j":
		m.selected = min(m.selected+1, len(moves)-1)
	case "enter", " ":
		if mv := moves[m.selected]; !mv.Current {
			_ = m.game.JumpTo(mv.Move)
		}
	}
}

// switchFocus moves focus between the board and the move list. Entering the
// list selects the current move.
func (m *Model) switchFocus() {
	if m.focus == focusMoves {
		m.focus = focusBoard
		return
	}
	m.focus = focusMoves
	m.selectCurrent()
}

// toggleOrder flips the move list and keeps the same move selected.
func (m *Model) toggleOrder() {
	m.game.ToggleOrder()
	m.selected = len(m.game.History) - 1 - m.selected
}

func (m *Model) selectCurrent() {
	for i, mv := range view.Moves(&m.game) {
		if mv.Current {
			m.selected = i
			return
		}
	}
}
