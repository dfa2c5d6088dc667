package domain

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// String returns the mark shown for the cell, or "" when it is empty.
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Board is a fixed 3x3 board stored row-major (index = row*3 + col).
type Board [9]Cell

// Full reports whether every cell holds a mark.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// Line is a triple of cell indices that wins when uniformly filled.
type Line [3]int

// Contains reports whether cell index i is part of the line.
func (l Line) Contains(i int) bool {
	return l[0] == i || l[1] == i || l[2] == i
}

// Lines lists every winning triple in evaluation order.
var Lines = [8]Line{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// Evaluate returns the first line in Lines whose three cells hold the same
// mark. The boolean is false when no line is complete.
func Evaluate(b Board) (Line, bool) {
	for _, ln := range Lines {
		a := b[ln[0]]
		if a != Empty && a == b[ln[1]] && a == b[ln[2]] {
			return ln, true
		}
	}
	return Line{}, false
}
