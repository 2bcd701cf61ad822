// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a coloured piece.
// Unknown characters return Empty.
func ConvertFENCharToPiece(c byte) chess.Piece {
	var kind chess.Piece
	switch unicode.ToLower(rune(c)) {
	case 'k':
		kind = chess.King
	case 'q':
		kind = chess.Queen
	case 'r':
		kind = chess.Rook
	case 'n':
		kind = chess.Knight
	case 'b':
		kind = chess.Bishop
	case 'p':
		kind = chess.Pawn
	default:
		return chess.Empty
	}
	if unicode.IsLower(rune(c)) {
		return chess.B(kind)
	}
	return chess.W(kind)
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := colouredPiece.Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string.
// Malformed input is reported as an *errors.FENError wrapping errors.ErrInvalidFEN.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, errors.NewFENError(0, fen, fmt.Sprintf("expected 4 to 6 fields, got %d", len(parts)))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	parseClocks(board, parts[4:])

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// The board index and the string index advance independently.
func parsePiecePositions(board *chess.Board, positions string) error {
	i := 0
	rowStart := 0
	for idx := 0; idx < len(positions); idx++ {
		c := positions[idx]
		switch {
		case c == '/':
			if i-rowStart != chess.BoardSize {
				return errors.NewFENError(1, positions, fmt.Sprintf("rank %d has %d squares", rowStart/chess.BoardSize+1, i-rowStart))
			}
			rowStart = i
		case c >= '1' && c <= '8':
			i += int(c - '0')
		default:
			piece := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return errors.NewFENError(1, positions, fmt.Sprintf("invalid piece character %q", c))
			}
			if i >= chess.NumCells {
				return errors.NewFENError(1, positions, "too many squares")
			}
			board.Cells[i] = piece
			i++
		}
		if i-rowStart > chess.BoardSize || i > chess.NumCells {
			return errors.NewFENError(1, positions, "rank overflows the board")
		}
	}
	if i != chess.NumCells || i-rowStart != chess.BoardSize {
		return errors.NewFENError(1, positions, fmt.Sprintf("placement covers %d squares", i))
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return errors.NewFENError(2, field, "active colour must be w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	rights, ok := chess.ParseCastlingRights(field)
	if !ok {
		return errors.NewFENError(3, field, "castling field must be - or letters from KQkq")
	}
	board.Castling = rights
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return errors.NewFENError(4, field, "en passant target must be - or a square")
	}
	board.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
// Non-numeric or missing values leave the clocks unset.
func parseClocks(board *chess.Board, parts []string) {
	if len(parts) == 0 {
		return
	}
	halfmove, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return
	}
	board.HalfmoveClock = uint(halfmove)
	board.MoveNumber = 1
	board.ClocksKnown = true
	if len(parts) > 1 {
		if fullmove, err := strconv.ParseUint(parts[1], 10, 32); err == nil {
			board.MoveNumber = uint(fullmove)
		}
	}
}

// BoardToFEN converts a board to a full six-field FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	sb.WriteByte(' ')
	if board.ClocksKnown {
		fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)
	} else {
		sb.WriteString("0 1")
	}

	return sb.String()
}

// PlacementToFEN returns only the piece placement field.
func PlacementToFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.At(row, col)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
