package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the pseudo moves of the piece on sq that do not leave
// its own king attacked. Each candidate is played on a value copy of the
// board; the live board is never modified.
func LegalMoves(board *chess.Board, sq chess.Square) chess.SquareSet {
	piece := board.Get(sq)
	if piece == chess.Empty {
		return 0
	}
	colour := chess.ExtractColour(piece)

	var legal chess.SquareSet
	for _, to := range PseudoMoves(board, sq).Squares() {
		if tryMove(board, sq, to, colour) {
			legal = legal.Add(to)
		}
	}
	return legal
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	scratch := *board
	// The promotion kind cannot affect the mover's own king.
	ApplyMove(&scratch, chess.Move{From: from, To: to, Promotion: chess.Queen})
	return !IsKingUnderAttack(&scratch, colour)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, sq := range board.Squares(colour).Squares() {
		for _, to := range PseudoMoves(board, sq).Squares() {
			if tryMove(board, sq, to, colour) {
				return true
			}
		}
	}
	return false
}

// AllLegalMoves maps every square of the given colour that has a legal move
// to its destination set.
func AllLegalMoves(board *chess.Board, colour chess.Colour) map[chess.Square]chess.SquareSet {
	moves := make(map[chess.Square]chess.SquareSet)
	for _, sq := range board.Squares(colour).Squares() {
		if legal := LegalMoves(board, sq); !legal.IsEmpty() {
			moves[sq] = legal
		}
	}
	return moves
}

// GenerateMoves lists every legal move for the side to move, including
// castling and one entry per promotion kind.
func GenerateMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	var moves []chess.Move
	for _, from := range board.Squares(colour).Squares() {
		promotes := chess.ExtractPiece(board.Get(from)) == chess.Pawn
		for _, to := range LegalMoves(board, from).Squares() {
			if promotes && to.Row() == chess.PromotionRow(colour) {
				for _, kind := range chess.PromotionPieces {
					moves = append(moves, chess.Move{From: from, To: to, Promotion: kind})
				}
				continue
			}
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	for _, dir := range []chess.Direction{chess.Kingside, chess.Queenside} {
		if plan, ok := planCastle(board, dir); ok {
			moves = append(moves, chess.Move{From: plan.kingFrom, To: plan.kingTo})
		}
	}
	return moves
}
