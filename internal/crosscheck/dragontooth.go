package crosscheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DragontoothOracle generates moves with github.com/dylhunn/dragontoothmg.
type DragontoothOracle struct{}

// Name returns the oracle name.
func (DragontoothOracle) Name() string { return DragontoothName }

// parse converts a panic inside the FEN parser into an error.
func (DragontoothOracle) parse(fen string) (board dragontoothmg.Board, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dragontooth: %v: %w", r, errors.ErrOracle)
		}
	}()
	return dragontoothmg.ParseFen(fen), nil
}

// LegalMoves returns the legal moves in UCI form, sorted.
func (o DragontoothOracle) LegalMoves(fen string) ([]string, error) {
	board, err := o.parse(fen)
	if err != nil {
		return nil, err
	}
	var moves []string
	for _, m := range board.GenerateLegalMoves() {
		moves = append(moves, strings.ToLower(m.String()))
	}
	sort.Strings(moves)
	return moves, nil
}

// Perft counts leaf nodes to depth.
func (o DragontoothOracle) Perft(fen string, depth int) (uint64, error) {
	board, err := o.parse(fen)
	if err != nil {
		return 0, err
	}
	return dragontoothPerft(&board, depth), nil
}

func dragontoothPerft(board *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := board.Apply(m)
		nodes += dragontoothPerft(board, depth-1)
		unapply()
	}
	return nodes
}
