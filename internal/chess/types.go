// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the FEN active-colour letter.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Forward returns the row delta a pawn of this colour advances by.
// White moves toward row 0, Black toward row 7.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Piece is a signed piece code. The magnitude is the kind (Pawn..King),
// the sign is the colour (positive White, negative Black), zero is Empty.
type Piece int8

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceNames = [...]string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece.
func (p Piece) String() string {
	kind := ExtractPiece(p)
	if int(kind) >= len(pieceNames) {
		return "Unknown"
	}
	if p == Empty {
		return pieceNames[Empty]
	}
	return ExtractColour(p).String() + " " + pieceNames[kind]
}

// IsEmpty returns true for the empty square code.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	kind := ExtractPiece(p)
	if int(kind) < len(letters) {
		return letters[kind]
	}
	return '?'
}

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	piece = ExtractPiece(piece)
	if colour == Black {
		return -piece
	}
	return piece
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
// Empty reports White; callers check IsEmpty first.
func ExtractColour(colouredPiece Piece) Colour {
	if colouredPiece < 0 {
		return Black
	}
	return White
}

// ExtractPiece extracts the piece kind from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	if colouredPiece < 0 {
		return -colouredPiece
	}
	return colouredPiece
}

// BelongsTo reports whether p is a non-empty piece of the given colour.
func (p Piece) BelongsTo(colour Colour) bool {
	if p == Empty {
		return false
	}
	return ExtractColour(p) == colour
}

// PromotionPieces is the fixed cyclable order offered when a pawn promotes.
var PromotionPieces = [4]Piece{Queen, Knight, Bishop, Rook}

// IsPromotionPiece reports whether kind is a legal promotion target.
func IsPromotionPiece(kind Piece) bool {
	for _, p := range PromotionPieces {
		if p == kind {
			return true
		}
	}
	return false
}

// Direction selects the castling side.
type Direction int

const (
	Kingside Direction = iota
	Queenside
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	if d == Kingside {
		return "kingside"
	}
	return "queenside"
}

// Constants for board dimensions.
const (
	BoardSize = 8
	NumCells  = BoardSize * BoardSize

	// Pawn home and en passant capture rows in row-from-top coordinates.
	WhitePawnRow    = 6
	BlackPawnRow    = 1
	WhiteCaptureRow = 3
	BlackCaptureRow = 4
)

// HomeRow returns the back row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PromotionRow returns the row on which a pawn of the given colour promotes.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}
