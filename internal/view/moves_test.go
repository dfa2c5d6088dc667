package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaminalder/tictactoe-time-travel/internal/domain"
)

func labels(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Label
	}
	return out
}

func TestMoves(t *testing.T) {
	t.Run("New game lists only the current start", func(t *testing.T) {
		g := domain.New()
		moves := Moves(&g)
		require.Len(t, moves, 1)
		assert.Equal(t, Move{Move: 0, Label: "You are at move #0", Current: true}, moves[0])
	})

	t.Run("Labels carry 1-based row and column", func(t *testing.T) {
		// Given: moves on cells 0, 4 and 7
		g := domain.New()
		playAll(t, &g, 0, 4, 7)

		// When: listing moves
		moves := Moves(&g)

		// Then: past moves link and the current one is a label
		assert.Equal(t, []string{
			"Go to game start",
			"Go to move (1, 1) #1",
			"Go to move (2, 2) #2",
			"You are at move #3",
		}, labels(moves))
		assert.False(t, moves[1].Current)
		assert.Equal(t, 1, moves[1].Move)
		assert.True(t, moves[3].Current)
	})

	t.Run("Current marker follows a jump", func(t *testing.T) {
		// Given: two moves, then a jump to the start
		g := domain.New()
		playAll(t, &g, 2, 6)
		require.NoError(t, g.JumpTo(0))

		// When: listing moves
		moves := Moves(&g)

		// Then: the start is current and later moves remain reachable
		assert.Equal(t, []string{
			"You are at move #0",
			"Go to move (1, 3) #1",
			"Go to move (3, 1) #2",
		}, labels(moves))
	})

	t.Run("Descending order reverses the list", func(t *testing.T) {
		// Given: two moves
		g := domain.New()
		playAll(t, &g, 2, 6)
		asc := Moves(&g)

		// When: toggling to descending
		g.ToggleOrder()
		desc := Moves(&g)

		// Then: the list is reversed with the same content
		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
	})

	t.Run("Toggling twice restores the original list", func(t *testing.T) {
		g := domain.New()
		playAll(t, &g, 1, 3, 5)
		before := Moves(&g)

		g.ToggleOrder()
		g.ToggleOrder()

		assert.Equal(t, before, Moves(&g))
	})
}

func TestOrderLabel(t *testing.T) {
	assert.Equal(t, "Ascending", OrderLabel(false))
	assert.Equal(t, "Descending", OrderLabel(true))
}
