package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveResult describes the side effects of an applied move.
type MoveResult struct {
	// The piece that moved (as it stood on the origin square).
	Piece chess.Piece

	// The captured piece and where it stood (differs from the destination
	// for en passant). CapturedOn is NoSquare when nothing was captured.
	Captured   chess.Piece
	CapturedOn chess.Square

	EnPassant bool

	// Castle is set when a king moved two columns; the rook was moved too.
	Castle          bool
	CastleDirection chess.Direction

	// PromotionPending is set when a pawn reached the last row and the move
	// carried no promotion kind. The pawn stays on the destination until
	// Promote is called.
	PromotionPending bool
	Promoted         chess.Piece
}

// ApplyMove applies an already validated move to the board: relocation,
// capture, en passant pawn removal, castling rook relocation, promotion,
// castling rights and en passant bookkeeping. The active colour is not
// changed; see AdvanceTurn.
func ApplyMove(board *chess.Board, move chess.Move) MoveResult {
	piece := board.Get(move.From)
	colour := chess.ExtractColour(piece)
	kind := chess.ExtractPiece(piece)

	result := MoveResult{
		Piece:      piece,
		Captured:   board.Get(move.To),
		CapturedOn: chess.NoSquare,
	}
	if result.Captured != chess.Empty {
		result.CapturedOn = move.To
	}

	// Handle en passant capture
	if kind == chess.Pawn && move.To == board.EnPassant && result.Captured == chess.Empty &&
		move.From.Col() != move.To.Col() {
		capturedOn := chess.NewSquare(move.From.Row(), move.To.Col())
		result.Captured = board.Get(capturedOn)
		result.CapturedOn = capturedOn
		result.EnPassant = true
		board.Set(capturedOn, chess.Empty)
	}

	// Move the piece
	board.Set(move.From, chess.Empty)
	board.Set(move.To, piece)

	if kind == chess.King {
		if dir, ok := castleDirectionFor(move.From, move.To); ok {
			moveCastlingRook(board, move.From, dir)
			result.Castle = true
			result.CastleDirection = dir
		}
		board.Castling &^= chess.CastlingRightsOf(colour)
	}
	updateCastlingRightsForRook(board, move.From)
	updateCastlingRightsForRook(board, move.To)

	// Set en passant square only after a double pawn push
	board.EnPassant = chess.NoSquare
	if kind == chess.Pawn && abs(move.To.Row()-move.From.Row()) == 2 {
		board.EnPassant = chess.NewSquare((move.From.Row()+move.To.Row())/2, move.From.Col())
	}

	// Handle promotion
	if kind == chess.Pawn && move.To.Row() == chess.PromotionRow(colour) {
		if chess.IsPromotionPiece(move.Promotion) {
			promoted := chess.MakeColouredPiece(colour, move.Promotion)
			board.Set(move.To, promoted)
			result.Promoted = promoted
		} else {
			result.PromotionPending = true
		}
	}

	return result
}

// moveCastlingRook moves the corner rook next to a king that just moved two
// columns from kingFrom.
func moveCastlingRook(board *chess.Board, kingFrom chess.Square, dir chess.Direction) {
	step, rookCol := 1, chess.BoardSize-1
	if dir == chess.Queenside {
		step, rookCol = -1, 0
	}
	rookFrom := chess.NewSquare(kingFrom.Row(), rookCol)
	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.Empty)
	board.Set(kingFrom.Offset(0, step), rook)
}

// Promote replaces the pawn on sq with the given piece kind.
func Promote(board *chess.Board, sq chess.Square, kind chess.Piece) error {
	pawn := board.Get(sq)
	if chess.ExtractPiece(pawn) != chess.Pawn {
		return fmt.Errorf("no pawn on %s: %w", sq, errors.ErrInvalidPromotion)
	}
	colour := chess.ExtractColour(pawn)
	if sq.Row() != chess.PromotionRow(colour) {
		return fmt.Errorf("pawn on %s is not on the last row: %w", sq, errors.ErrInvalidPromotion)
	}
	if !chess.IsPromotionPiece(kind) {
		return fmt.Errorf("cannot promote to %s: %w", kind, errors.ErrInvalidPromotion)
	}
	board.Set(sq, chess.MakeColouredPiece(colour, kind))
	return nil
}

// AdvanceTurn hands the move to the other side. Clocks are left as they are.
func AdvanceTurn(board *chess.Board) {
	board.ToMove = board.ToMove.Opposite()
}

// PlayMove validates a move for the side to move, applies it and advances
// the turn. A king move of two columns is treated as castling. Pawn moves to
// the last row must carry a promotion kind.
func PlayMove(board *chess.Board, move chess.Move) error {
	piece := board.Get(move.From)
	if !piece.BelongsTo(board.ToMove) {
		return fmt.Errorf("%s: no %s piece on %s: %w", move, board.ToMove, move.From, errors.ErrIllegalMove)
	}

	if chess.ExtractPiece(piece) == chess.King {
		if dir, ok := castleDirectionFor(move.From, move.To); ok && CastleTarget(board, dir) == move.To {
			PerformCastling(board, dir)
			AdvanceTurn(board)
			return nil
		}
	}

	if !LegalMoves(board, move.From).Has(move.To) {
		return fmt.Errorf("%s: %w", move, errors.ErrIllegalMove)
	}

	promoting := chess.ExtractPiece(piece) == chess.Pawn &&
		move.To.Row() == chess.PromotionRow(chess.ExtractColour(piece))
	if promoting && !chess.IsPromotionPiece(move.Promotion) {
		return fmt.Errorf("%s: promotion kind required: %w", move, errors.ErrInvalidPromotion)
	}
	if !promoting && move.Promotion != chess.Empty {
		return fmt.Errorf("%s: not a promotion: %w", move, errors.ErrInvalidPromotion)
	}

	ApplyMove(board, move)
	AdvanceTurn(board)
	return nil
}
