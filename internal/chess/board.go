package chess

import "strings"

// CastlingRights is the set of four castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the flag for a colour and direction.
func CastlingRight(colour Colour, dir Direction) CastlingRights {
	switch {
	case colour == White && dir == Kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case dir == Kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// CastlingRightsOf returns both flags of one colour.
func CastlingRightsOf(colour Colour) CastlingRights {
	return CastlingRight(colour, Kingside) | CastlingRight(colour, Queenside)
}

// Has reports whether every flag in r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String returns the FEN castling field, "-" when empty.
func (c CastlingRights) String() string {
	var sb strings.Builder
	for _, f := range []struct {
		flag   CastlingRights
		letter byte
	}{
		{WhiteKingside, 'K'},
		{WhiteQueenside, 'Q'},
		{BlackKingside, 'k'},
		{BlackQueenside, 'q'},
	} {
		if c.Has(f.flag) {
			sb.WriteByte(f.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ParseCastlingRights parses a FEN castling field.
func ParseCastlingRights(field string) (CastlingRights, bool) {
	if field == "-" {
		return NoCastling, true
	}
	if field == "" {
		return NoCastling, false
	}
	var rights CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		default:
			return NoCastling, false
		}
	}
	return rights, true
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The 64 cells, index row*8+col.
	Cells [NumCells]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling flags.
	Castling CastlingRights

	// The square skipped by the previous ply's double pawn step, or NoSquare.
	EnPassant Square

	// Clocks carried from FEN. They are informational only and are not
	// advanced by move execution. ClocksKnown is false when the FEN did not
	// supply numeric values.
	HalfmoveClock uint
	MoveNumber    uint
	ClocksKnown   bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:    White,
		EnPassant: NoSquare,
	}
}

// Get returns the piece at the given square; off-board squares read as Empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Empty
	}
	return b.Cells[sq]
}

// Set places a piece at the given square.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Cells[sq] = piece
	}
}

// At returns the piece at (row, col).
func (b *Board) At(row, col int) Piece {
	return b.Get(NewSquare(row, col))
}

// Copy creates a deep copy of the board. All state is held by value so the
// copy shares no mutable storage with b.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing locates the king of the given colour by linear scan.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for i, p := range b.Cells {
		if p == king {
			return Square(i), true
		}
	}
	return NoSquare, false
}

// Squares returns the set of squares occupied by the given colour.
func (b *Board) Squares(colour Colour) SquareSet {
	var set SquareSet
	for i, p := range b.Cells {
		if p.BelongsTo(colour) {
			set = set.Add(Square(i))
		}
	}
	return set
}
