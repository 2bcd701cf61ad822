package chess

import (
	"math/bits"
	"strings"
)

// Square is a board index row*8+col. Row 0 is rank 8, row 7 is rank 1.
type Square int8

// NoSquare marks the absence of a square (no en passant target, no selection).
const NoSquare Square = -1

// NewSquare returns the square at (row, col), or NoSquare if off the board.
func NewSquare(row, col int) Square {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return NoSquare
	}
	return Square(row*BoardSize + col)
}

// Row returns the row (0 = rank 8).
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Col returns the column (0 = file a).
func (s Square) Col() int {
	return int(s) % BoardSize
}

// OnBoard reports whether s addresses one of the 64 cells.
func (s Square) OnBoard() bool {
	return s >= 0 && s < NumCells
}

// Offset returns the square dr rows and dc columns away, or NoSquare.
func (s Square) Offset(dr, dc int) Square {
	if !s.OnBoard() {
		return NoSquare
	}
	return NewSquare(s.Row()+dr, s.Col()+dc)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col()), byte('8' - s.Row())})
}

// ParseSquare converts an algebraic name such as "e4" to a Square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return NewSquare(int('8'-rank), int(file-'a')), true
}

// SquareSet is an unordered set of squares.
type SquareSet uint64

// NewSquareSet builds a set from the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	var set SquareSet
	for _, sq := range squares {
		set = set.Add(sq)
	}
	return set
}

// Add returns the set with sq included. Off-board squares are ignored.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.OnBoard() {
		return s
	}
	return s | 1<<uint(sq)
}

// Remove returns the set without sq.
func (s SquareSet) Remove(sq Square) SquareSet {
	if !sq.OnBoard() {
		return s
	}
	return s &^ (1 << uint(sq))
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.OnBoard() && s&(1<<uint(sq)) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty reports whether the set has no squares.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// Union returns the squares in either set.
func (s SquareSet) Union(other SquareSet) SquareSet {
	return s | other
}

// Intersect returns the squares in both sets.
func (s SquareSet) Intersect(other SquareSet) SquareSet {
	return s & other
}

// SubsetOf reports whether every square of s is also in other.
func (s SquareSet) SubsetOf(other SquareSet) bool {
	return s&^other == 0
}

// Squares returns the members in ascending index order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, Square(bits.TrailingZeros64(v)))
	}
	return out
}

// String returns the members as a space-separated list of algebraic names.
func (s SquareSet) String() string {
	names := make([]string, 0, s.Len())
	for _, sq := range s.Squares() {
		names = append(names, sq.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}
