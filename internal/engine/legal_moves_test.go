package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want chess.SquareSet
	}{
		{
			name: "pinned bishop cannot move",
			fen:  "4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1",
			from: "e2",
			want: 0,
		},
		{
			name: "pinned rook moves along the pin",
			fen:  "4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: squares("e3", "e4", "e5", "e6", "e7", "e8"),
		},
		{
			name: "king cannot stay on the checking ray",
			fen:  "4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
			from: "e1",
			want: squares("d2", "e2", "f2"),
		},
		{
			name: "king cannot capture a defended piece",
			fen:  "8/8/8/8/8/4k3/4q3/4K3 w - - 0 1",
			from: "e1",
			want: 0,
		},
		{
			name: "only blocking moves out of check",
			fen:  "4r1k1/8/8/8/8/8/8/R3K3 w - - 0 1",
			from: "a1",
			want: 0,
		},
		{
			name: "blocking piece",
			fen:  "4r1k1/8/8/8/8/8/8/3NK3 w - - 0 1",
			from: "d1",
			want: squares("e3"),
		},
		{
			name: "en passant exposing the king",
			fen:  "8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
			from: "e5",
			want: squares("e6"),
		},
		{
			name: "en passant resolving check",
			fen:  "8/8/8/3pP3/4K3/8/8/7k w - d6 0 1",
			from: "e5",
			want: squares("d6"),
		},
		{
			name: "empty square",
			fen:  InitialFEN,
			from: "e4",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			before := *board
			got := LegalMoves(board, sq(tt.from))
			if got != tt.want {
				t.Errorf("LegalMoves(%s) = %v, want %v", tt.from, got, tt.want)
			}
			if *board != before {
				t.Error("LegalMoves modified the board")
			}
		})
	}
}

var invariantFENs = []string{
	InitialFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
	"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
}

// Every legal move is a pseudo move that leaves the mover's king safe, and
// every rejected pseudo move leaves it attacked.
func TestLegalMoves_Invariant(t *testing.T) {
	for _, fen := range invariantFENs {
		board := mustBoard(t, fen)
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, from := range board.Squares(colour).Squares() {
				pseudo := PseudoMoves(board, from)
				legal := LegalMoves(board, from)
				if !legal.SubsetOf(pseudo) {
					t.Errorf("%s: LegalMoves(%v) = %v not a subset of %v", fen, from, legal, pseudo)
				}
				for _, to := range pseudo.Squares() {
					scratch := *board
					ApplyMove(&scratch, chess.Move{From: from, To: to, Promotion: chess.Queen})
					safe := !IsKingUnderAttack(&scratch, colour)
					if safe != legal.Has(to) {
						t.Errorf("%s: %v%v legal = %v, king safe = %v", fen, from, to, legal.Has(to), safe)
					}
				}
			}
		}
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, true},
		{"initial black", InitialFEN, chess.Black, true},
		{"mated king", "8/8/8/8/8/4k3/4q3/4K3 w - - 0 1", chess.White, false},
		{"stalemated king", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Black, false},
		{"no pieces", "8/8/8/8/8/8/8/8 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := HasLegalMoves(board, tt.colour); got != tt.want {
				t.Errorf("HasLegalMoves(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestAllLegalMoves(t *testing.T) {
	board := mustBoard(t, InitialFEN)
	moves := AllLegalMoves(board, chess.White)
	if len(moves) != 10 {
		t.Errorf("len(AllLegalMoves()) = %d, want 10", len(moves))
	}
	if got, want := moves[sq("g1")], squares("f3", "h3"); got != want {
		t.Errorf("AllLegalMoves()[g1] = %v, want %v", got, want)
	}
	if _, ok := moves[sq("e1")]; ok {
		t.Error("AllLegalMoves() includes the blocked king")
	}
}

func TestGenerateMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"initial position", InitialFEN, 20},
		{"promotions count once per kind", "8/4P3/8/8/8/8/8/k3K3 w - - 0 1", 4 + 5},
		{"castling both sides", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", 26},
		{"checkmated side", "8/8/8/8/8/4k3/4q3/4K3 w - - 0 1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if got := len(GenerateMoves(board)); got != tt.want {
				t.Errorf("len(GenerateMoves()) = %d, want %d: %v", got, tt.want, GenerateMoves(board))
			}
		})
	}
}
