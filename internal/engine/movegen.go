package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction sets as (row, col) deltas.
var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirections = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// PseudoMoves returns the destinations reachable by the piece on sq under
// its movement rule, ignoring whether the mover's own king is left attacked.
// Castling is not included; see CanCastle.
func PseudoMoves(board *chess.Board, sq chess.Square) chess.SquareSet {
	piece := board.Get(sq)
	if piece == chess.Empty {
		return 0
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnMoves(board, sq, colour)
	case chess.Knight:
		return stepMoves(board, sq, colour, knightOffsets)
	case chess.Bishop:
		return slidingMoves(board, sq, colour, diagonalDirs)
	case chess.Rook:
		return slidingMoves(board, sq, colour, straightDirs)
	case chess.Queen:
		return slidingMoves(board, sq, colour, queenDirections)
	case chess.King:
		return stepMoves(board, sq, colour, kingOffsets)
	}
	return 0
}

// pawnMoves generates pushes, the double step, diagonal captures and en passant.
func pawnMoves(board *chess.Board, sq chess.Square, colour chess.Colour) chess.SquareSet {
	var moves chess.SquareSet
	dir := colour.Forward()

	// Forward move
	one := sq.Offset(dir, 0)
	if one != chess.NoSquare && board.Get(one) == chess.Empty {
		moves = moves.Add(one)

		// Double push from starting row
		startRow := chess.WhitePawnRow
		if colour == chess.Black {
			startRow = chess.BlackPawnRow
		}
		if sq.Row() == startRow {
			two := sq.Offset(2*dir, 0)
			if board.Get(two) == chess.Empty {
				moves = moves.Add(two)
			}
		}
	}

	// Captures
	captureRow := chess.WhiteCaptureRow
	if colour == chess.Black {
		captureRow = chess.BlackCaptureRow
	}
	for dc := -1; dc <= 1; dc += 2 {
		target := sq.Offset(dir, dc)
		if target == chess.NoSquare {
			continue
		}
		if board.Get(target).BelongsTo(colour.Opposite()) {
			moves = moves.Add(target)
		}
		// En passant only from the capture row onto the recorded target.
		if sq.Row() == captureRow && target == board.EnPassant && board.Get(target) == chess.Empty {
			moves = moves.Add(target)
		}
	}
	return moves
}

// stepMoves handles single-step pieces (knight, king).
func stepMoves(board *chess.Board, sq chess.Square, colour chess.Colour, offsets [][2]int) chess.SquareSet {
	var moves chess.SquareSet
	for _, offset := range offsets {
		target := sq.Offset(offset[0], offset[1])
		if target == chess.NoSquare {
			continue
		}
		if !board.Get(target).BelongsTo(colour) {
			moves = moves.Add(target)
		}
	}
	return moves
}

// slidingMoves ray-casts along each direction, stopping at the first occupied
// square and including it only when it holds an enemy piece.
func slidingMoves(board *chess.Board, sq chess.Square, colour chess.Colour, dirs [][2]int) chess.SquareSet {
	var moves chess.SquareSet
	for _, dir := range dirs {
		target := sq.Offset(dir[0], dir[1])
		for target != chess.NoSquare {
			piece := board.Get(target)
			if piece != chess.Empty {
				if !piece.BelongsTo(colour) {
					moves = moves.Add(target)
				}
				break // Blocked
			}
			moves = moves.Add(target)
			target = target.Offset(dir[0], dir[1])
		}
	}
	return moves
}
