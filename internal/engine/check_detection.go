package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsKingUnderAttack returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsKingUnderAttack(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttackedBy(board, king, colour.Opposite())
}

// IsSquareAttackedBy returns true if a piece of byColour could capture on sq.
//
// For a square holding a piece not of byColour this is exactly "sq is in the
// pseudo-move set of some byColour piece". For empty squares pawns count by
// their capture diagonals, not their pushes.
func IsSquareAttackedBy(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.OnBoard() {
		return false
	}

	// Pawns attack from one row behind the target, relative to their direction.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRow := -byColour.Forward()
	if board.Get(sq.Offset(pawnRow, -1)) == pawn || board.Get(sq.Offset(pawnRow, 1)) == pawn {
		return true
	}

	if attackedByStep(board, sq, chess.MakeColouredPiece(byColour, chess.Knight), knightOffsets) {
		return true
	}
	if attackedByStep(board, sq, chess.MakeColouredPiece(byColour, chess.King), kingOffsets) {
		return true
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if attackedBySlider(board, sq, chess.MakeColouredPiece(byColour, chess.Bishop), queen, diagonalDirs) {
		return true
	}
	return attackedBySlider(board, sq, chess.MakeColouredPiece(byColour, chess.Rook), queen, straightDirs)
}

// AttackersOf returns the squares of byColour pieces attacking sq.
func AttackersOf(board *chess.Board, sq chess.Square, byColour chess.Colour) chess.SquareSet {
	if !sq.OnBoard() {
		return 0
	}
	scratch := board.Copy()
	if !scratch.Get(sq).BelongsTo(byColour.Opposite()) {
		// Stand-in target so pawn captures register and pushes do not.
		scratch.Set(sq, chess.MakeColouredPiece(byColour.Opposite(), chess.Knight))
	}
	var attackers chess.SquareSet
	for _, from := range scratch.Squares(byColour).Squares() {
		if PseudoMoves(scratch, from).Has(sq) {
			attackers = attackers.Add(from)
		}
	}
	return attackers
}

// attackedByStep checks knight or king attacks.
func attackedByStep(board *chess.Board, sq chess.Square, attacker chess.Piece, offsets [][2]int) bool {
	for _, offset := range offsets {
		if board.Get(sq.Offset(offset[0], offset[1])) == attacker {
			return true
		}
	}
	return false
}

// attackedBySlider walks each ray from sq until the first occupied square.
func attackedBySlider(board *chess.Board, sq chess.Square, slider, queen chess.Piece, dirs [][2]int) bool {
	for _, dir := range dirs {
		target := sq.Offset(dir[0], dir[1])
		for target != chess.NoSquare {
			piece := board.Get(target)
			if piece != chess.Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			target = target.Offset(dir[0], dir[1])
		}
	}
	return false
}
