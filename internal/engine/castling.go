package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlePlan describes the squares involved in one castling request.
type castlePlan struct {
	colour   chess.Colour
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
}

// planCastle checks the castling preconditions for the side to move, in
// order, and returns the plan if they all hold.
func planCastle(board *chess.Board, dir chess.Direction) (castlePlan, bool) {
	colour := board.ToMove
	if !board.Castling.Has(chess.CastlingRight(colour, dir)) {
		return castlePlan{}, false
	}
	// The king must still stand on its home square.
	king := chess.NewSquare(chess.HomeRow(colour), 4)
	if board.Get(king) != chess.MakeColouredPiece(colour, chess.King) {
		return castlePlan{}, false
	}

	step, rookCol := 1, chess.BoardSize-1
	if dir == chess.Queenside {
		step, rookCol = -1, 0
	}

	kingTo := king.Offset(0, 2*step)
	rookFrom := chess.NewSquare(king.Row(), rookCol)
	if board.Get(rookFrom) != chess.MakeColouredPiece(colour, chess.Rook) {
		return castlePlan{}, false
	}

	// Every square strictly between king and rook must be empty.
	for col := king.Col() + step; col != rookCol; col += step {
		if board.At(king.Row(), col) != chess.Empty {
			return castlePlan{}, false
		}
	}

	// The king may not start in, pass through, or land on an attacked square.
	opponent := colour.Opposite()
	for i := 0; i <= 2; i++ {
		if IsSquareAttackedBy(board, king.Offset(0, i*step), opponent) {
			return castlePlan{}, false
		}
	}

	return castlePlan{
		colour:   colour,
		kingFrom: king,
		kingTo:   kingTo,
		rookFrom: rookFrom,
		rookTo:   king.Offset(0, step),
	}, true
}

// CanCastle reports whether the side to move may castle in the given direction.
func CanCastle(board *chess.Board, dir chess.Direction) bool {
	_, ok := planCastle(board, dir)
	return ok
}

// CastleTarget returns the square the king lands on when castling in dir,
// or NoSquare if castling is not currently possible.
func CastleTarget(board *chess.Board, dir chess.Direction) chess.Square {
	plan, ok := planCastle(board, dir)
	if !ok {
		return chess.NoSquare
	}
	return plan.kingTo
}

// PerformCastling castles the side to move. A failed precondition is a silent
// no-op and returns false. The active colour is not changed.
func PerformCastling(board *chess.Board, dir chess.Direction) bool {
	plan, ok := planCastle(board, dir)
	if !ok {
		return false
	}

	// Move king
	king := board.Get(plan.kingFrom)
	board.Set(plan.kingFrom, chess.Empty)
	board.Set(plan.kingTo, king)

	// Move rook
	rook := board.Get(plan.rookFrom)
	board.Set(plan.rookFrom, chess.Empty)
	board.Set(plan.rookTo, rook)

	board.Castling &^= chess.CastlingRightsOf(plan.colour)
	board.EnPassant = chess.NoSquare
	return true
}

// updateCastlingRightsForRook removes castling rights when a rook leaves or
// is captured on its home corner.
func updateCastlingRightsForRook(board *chess.Board, sq chess.Square) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		row := chess.HomeRow(colour)
		switch sq {
		case chess.NewSquare(row, chess.BoardSize-1):
			board.Castling &^= chess.CastlingRight(colour, chess.Kingside)
		case chess.NewSquare(row, 0):
			board.Castling &^= chess.CastlingRight(colour, chess.Queenside)
		}
	}
}

// castleDirectionFor returns the direction of a two-column king move.
func castleDirectionFor(from, to chess.Square) (chess.Direction, bool) {
	if from.Row() != to.Row() {
		return chess.Kingside, false
	}
	switch to.Col() - from.Col() {
	case 2:
		return chess.Kingside, true
	case -2:
		return chess.Queenside, true
	}
	return chess.Kingside, false
}
