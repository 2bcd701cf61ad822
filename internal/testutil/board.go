package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MustBoard parses a FEN string and returns the board.
// It calls t.Fatal if the FEN is malformed.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return board
}

// MustSquare converts an algebraic name such as "e4" to a Square.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square %q", name)
	}
	return sq
}

// Squares builds a SquareSet from algebraic names.
func Squares(t testing.TB, names ...string) chess.SquareSet {
	t.Helper()
	var set chess.SquareSet
	for _, name := range names {
		set = set.Add(MustSquare(t, name))
	}
	return set
}

// MustMove parses a UCI move such as "e2e4" or "e7e8q".
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, ok := chess.ParseMove(text)
	if !ok {
		t.Fatalf("invalid move %q", text)
	}
	return m
}
