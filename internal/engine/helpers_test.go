package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// mustBoard parses fen or aborts the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// sq converts an algebraic name to a Square, panicking on typos in test tables.
func sq(name string) chess.Square {
	s, ok := chess.ParseSquare(name)
	if !ok {
		panic("bad square in test: " + name)
	}
	return s
}

// squares builds a SquareSet from algebraic names.
func squares(names ...string) chess.SquareSet {
	var set chess.SquareSet
	for _, name := range names {
		set = set.Add(sq(name))
	}
	return set
}
