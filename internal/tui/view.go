package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaminalder/tictactoe-time-travel/internal/view"
)

var (
	winStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")).Bold(true)
	xStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD"))
	oStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF79C6"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C")).Bold(true)
	currentStyle = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const help = "arrows/hjkl move • enter play/jump • tab board/moves • o order • n new • q quit"

func (m Model) View() string {
	b := view.ForGame(&m.game)

	board := lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Render(b.Status()),
		"",
		m.renderBoard(b),
	)
	info := lipgloss.JoinVertical(lipgloss.Left,
		"["+view.OrderLabel(m.game.Descending)+"]",
		m.renderMoves(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Render(board), " ", panelStyle.Render(info)),
		helpStyle.Render(help),
	) + "\n"
}

func (m Model) renderBoard(b view.Board) string {
	rows := b.Rows()
	lines := make([]string, 0, 2*len(rows)-1)
	for r, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = m.renderCell(cell)
		}
		lines = append(lines, strings.Join(cells, "│"))
		if r < len(rows)-1 {
			lines = append(lines, "───┼───┼───")
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCell(cell view.Cell) string {
	text := " " + cell.Value + " "
	if cell.Value == "" {
		text = "   "
	}

	style := lipgloss.NewStyle()
	switch {
	case cell.Highlight:
		style = winStyle
	case cell.Value == "X":
		style = xStyle
	case cell.Value == "O":
		style = oStyle
	}
	if m.focus == focusBoard && cell.Index == m.cursor {
		style = style.Inherit(cursorStyle)
	}
	return style.Render(text)
}

func (m Model) renderMoves() string {
	moves := view.Moves(&m.game)
	lines := make([]string, len(moves))
	for i, mv := range moves {
		marker := "  "
		if m.focus == focusMoves && i == m.selected {
			marker = "> "
		}
		label := mv.Label
		if mv.Current {
			label = currentStyle.Render(label)
		}
		lines[i] = marker + label
	}
	return strings.Join(lines, "\n")
}
