package chess

import "unicode"

// Move is a from/to pair with an optional promotion kind.
type Move struct {
	From Square
	To   Square

	// The piece kind promoted to (Empty if not a promotion or not yet chosen).
	Promotion Piece
}

// String returns the long algebraic (UCI) form, e.g. "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(unicode.ToLower(rune(m.Promotion.Letter())))
	}
	return s
}

// ParseMove parses a UCI move such as "e2e4" or "a7a8n".
func ParseMove(text string) (Move, bool) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, false
	}
	from, ok := ParseSquare(text[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := ParseSquare(text[2:4])
	if !ok {
		return Move{}, false
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			m.Promotion = Queen
		case 'n':
			m.Promotion = Knight
		case 'b':
			m.Promotion = Bishop
		case 'r':
			m.Promotion = Rook
		default:
			return Move{}, false
		}
	}
	return m, true
}
