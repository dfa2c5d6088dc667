package view

import (
	"fmt"

	"github.com/jaminalder/tictactoe-time-travel/internal/domain"
)

// Move is one entry of the move list. Current entries are labels only;
// the others jump to Move when activated.
type Move struct {
	Move    int
	Label   string
	Current bool
}

// Moves lists every history entry, reversed when the game shows the list
// in descending order.
func Moves(g *domain.Game) []Move {
	moves := make([]Move, len(g.History))
	for m, e := range g.History {
		moves[m] = Move{Move: m, Label: moveLabel(m, e, m == g.Current), Current: m == g.Current}
	}
	if g.Descending {
		for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
			moves[i], moves[j] = moves[j], moves[i]
		}
	}
	return moves
}

func moveLabel(m int, e domain.Entry, current bool) string {
	switch {
	case current:
		return fmt.Sprintf("You are at move #%d", m)
	case m == 0 || e.LastMove == nil:
		return "Go to game start"
	default:
		row, col := *e.LastMove/size+1, *e.LastMove%size+1
		return fmt.Sprintf("Go to move (%d, %d) #%d", row, col, m)
	}
}

// OrderLabel is the caption of the order toggle.
func OrderLabel(descending bool) string {
	if descending {
		return "Descending"
	}
	return "Ascending"
}
