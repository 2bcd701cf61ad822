package crosscheck

import (
	"fmt"
	"sort"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// NotnilOracle generates moves with github.com/notnil/chess.
type NotnilOracle struct{}

// Name returns the oracle name.
func (NotnilOracle) Name() string { return NotnilName }

func (NotnilOracle) position(fen string) (*notnil.Position, error) {
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notnil: %v: %w", err, errors.ErrOracle)
	}
	return notnil.NewGame(opt).Position(), nil
}

// LegalMoves returns the legal moves in UCI form, sorted.
func (o NotnilOracle) LegalMoves(fen string) ([]string, error) {
	pos, err := o.position(fen)
	if err != nil {
		return nil, err
	}
	var moves []string
	for _, m := range pos.ValidMoves() {
		moves = append(moves, notnil.UCINotation{}.Encode(pos, m))
	}
	sort.Strings(moves)
	return moves, nil
}

// Perft counts leaf nodes to depth.
func (o NotnilOracle) Perft(fen string, depth int) (uint64, error) {
	pos, err := o.position(fen)
	if err != nil {
		return 0, err
	}
	return notnilPerft(pos, depth), nil
}

func notnilPerft(pos *notnil.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += notnilPerft(pos.Update(m), depth-1)
	}
	return nodes
}
