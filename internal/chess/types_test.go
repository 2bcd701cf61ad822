package chess

import "testing"

func TestPieceColour(t *testing.T) {
	tests := []struct {
		piece  Piece
		colour Colour
		kind   Piece
		name   string
	}{
		{W(Pawn), White, Pawn, "White Pawn"},
		{B(Knight), Black, Knight, "Black Knight"},
		{W(King), White, King, "White King"},
		{B(Queen), Black, Queen, "Black Queen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractColour(tt.piece); got != tt.colour {
				t.Errorf("ExtractColour(%d) = %v; want %v", tt.piece, got, tt.colour)
			}
			if got := ExtractPiece(tt.piece); got != tt.kind {
				t.Errorf("ExtractPiece(%d) = %v; want %v", tt.piece, got, tt.kind)
			}
			if got := tt.piece.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			if !tt.piece.BelongsTo(tt.colour) || tt.piece.BelongsTo(tt.colour.Opposite()) {
				t.Errorf("BelongsTo(%v) wrong for %v", tt.colour, tt.piece)
			}
		})
	}

	if Empty.BelongsTo(White) || Empty.BelongsTo(Black) {
		t.Error("Empty belongs to a colour")
	}
	if got := Empty.String(); got != "Empty" {
		t.Errorf("Empty.String() = %q; want Empty", got)
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if White.Forward() != -1 || Black.Forward() != 1 {
		t.Errorf("Forward() = %d, %d; want -1, 1", White.Forward(), Black.Forward())
	}
	if White.Letter() != 'w' || Black.Letter() != 'b' {
		t.Error("Letter() mismatch")
	}
	if HomeRow(White) != 7 || PromotionRow(White) != 0 {
		t.Errorf("White home/promotion rows = %d/%d; want 7/0", HomeRow(White), PromotionRow(White))
	}
	if HomeRow(Black) != 0 || PromotionRow(Black) != 7 {
		t.Errorf("Black home/promotion rows = %d/%d; want 0/7", HomeRow(Black), PromotionRow(Black))
	}
}

func TestIsPromotionPiece(t *testing.T) {
	for _, kind := range []Piece{Queen, Knight, Bishop, Rook} {
		if !IsPromotionPiece(kind) {
			t.Errorf("IsPromotionPiece(%v) = false", kind)
		}
	}
	for _, kind := range []Piece{Empty, Pawn, King, B(Queen)} {
		if IsPromotionPiece(kind) {
			t.Errorf("IsPromotionPiece(%d) = true", kind)
		}
	}
}
