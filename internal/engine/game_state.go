package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Status classifies the position for the side it refers to.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
	InsufficientMaterial
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "ongoing"
	}
}

// GameState is the evaluated status and the colour it applies to
// (the checked, mated or stalemated side).
type GameState struct {
	Status Status
	Colour chess.Colour
}

// IsTerminal reports whether no further moves can be played.
func (g GameState) IsTerminal() bool {
	switch g.Status {
	case Checkmate, Stalemate, InsufficientMaterial:
		return true
	}
	return false
}

// String returns the display text, empty while nothing is to report.
func (g GameState) String() string {
	switch g.Status {
	case Checkmate:
		return fmt.Sprintf("%s Checkmate!", g.Colour)
	case Check:
		return fmt.Sprintf("%s Check", g.Colour)
	case Stalemate:
		return "Stalemate"
	case InsufficientMaterial:
		return "Draw"
	default:
		return ""
	}
}

// CheckmateStatus returns the colour that is checkmated, if any. White is
// examined first, then Black.
func CheckmateStatus(board *chess.Board) (chess.Colour, bool) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if IsCheckmate(board, colour) {
			return colour, true
		}
	}
	return chess.White, false
}

// IsCheckmate returns true if colour's king is attacked and no legal move exists.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsKingUnderAttack(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
// Castling counts as a move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	if IsKingUnderAttack(board, colour) || HasLegalMoves(board, colour) {
		return false
	}
	if board.ToMove == colour && (CanCastle(board, chess.Kingside) || CanCastle(board, chess.Queenside)) {
		return false
	}
	return true
}

// Evaluate reports checkmate for either side, otherwise check, stalemate or
// a dead draw for the side to move.
func Evaluate(board *chess.Board) GameState {
	if colour, mated := CheckmateStatus(board); mated {
		return GameState{Status: Checkmate, Colour: colour}
	}

	colour := board.ToMove
	if IsKingUnderAttack(board, colour) {
		return GameState{Status: Check, Colour: colour}
	}
	if IsStalemate(board, colour) {
		return GameState{Status: Stalemate, Colour: colour}
	}
	if HasInsufficientMaterial(board) {
		return GameState{Status: InsufficientMaterial, Colour: colour}
	}
	return GameState{Status: Ongoing, Colour: colour}
}
