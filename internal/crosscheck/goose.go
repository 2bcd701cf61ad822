package crosscheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GooseOracle generates moves with the GooseEngine move generator.
type GooseOracle struct{}

// Name returns the oracle name.
func (GooseOracle) Name() string { return GooseName }

// LegalMoves returns the legal moves in UCI form, sorted.
func (GooseOracle) LegalMoves(fen string) ([]string, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("goose: %v: %w", err, errors.ErrOracle)
	}
	var moves []string
	for _, m := range board.GenerateMoves() {
		moves = append(moves, strings.ToLower(m.String()))
	}
	sort.Strings(moves)
	return moves, nil
}

// Perft counts leaf nodes to depth.
func (GooseOracle) Perft(fen string, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return 0, fmt.Errorf("goose: %v: %w", err, errors.ErrOracle)
	}
	return uint64(goosemg.Perft(board, depth)), nil
}
