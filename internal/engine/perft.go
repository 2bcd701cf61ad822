package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := GenerateMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		scratch := *board
		ApplyMove(&scratch, move)
		AdvanceTurn(&scratch)
		nodes += Perft(&scratch, depth-1)
	}
	return nodes
}

// PerftAfter plays move on a copy of board and counts the subtree below it.
func PerftAfter(board *chess.Board, move chess.Move, depth int) uint64 {
	scratch := *board
	ApplyMove(&scratch, move)
	AdvanceTurn(&scratch)
	return Perft(&scratch, depth-1)
}
