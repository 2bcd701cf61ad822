package engine

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

func move(text string) chess.Move {
	m, ok := chess.ParseMove(text)
	if !ok {
		panic("bad move in test: " + text)
	}
	return m
}

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		move       string
		wantFEN    string
		wantResult MoveResult
	}{
		{
			name:    "quiet move",
			fen:     "4k3/8/8/8/8/8/8/4K1N1 w - - 0 1",
			move:    "g1f3",
			wantFEN: "4k3/8/8/8/8/5N2/8/4K3 w - - 0 1",
			wantResult: MoveResult{
				Piece:      chess.W(chess.Knight),
				CapturedOn: chess.NoSquare,
			},
		},
		{
			name:    "king step",
			fen:     "4k3/8/8/8/8/5n2/8/4K1N1 w - - 0 1",
			move:    "e1f2",
			wantFEN: "4k3/8/8/8/8/5n2/5K2/6N1 w - - 0 1",
			wantResult: MoveResult{
				Piece:      chess.W(chess.King),
				CapturedOn: chess.NoSquare,
			},
		},
		{
			name:    "capture records the piece",
			fen:     "4k3/8/8/8/8/5n2/8/4K1N1 w - - 0 1",
			move:    "g1f3",
			wantFEN: "4k3/8/8/8/8/5N2/8/4K3 w - - 0 1",
			wantResult: MoveResult{
				Piece:      chess.W(chess.Knight),
				Captured:   chess.B(chess.Knight),
				CapturedOn: sq("f3"),
			},
		},
		{
			name:    "double step sets en passant target",
			fen:     "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
			move:    "e2e4",
			wantFEN: "4k3/8/8/8/4P3/8/8/4K3 w - e3 0 1",
			wantResult: MoveResult{
				Piece:      chess.W(chess.Pawn),
				CapturedOn: chess.NoSquare,
			},
		},
		{
			name:    "en passant removes the passed pawn",
			fen:     "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			move:    "e5d6",
			wantFEN: "4k3/8/3P4/8/8/8/8/4K3 w - - 0 1",
			wantResult: MoveResult{
				Piece:      chess.W(chess.Pawn),
				Captured:   chess.B(chess.Pawn),
				CapturedOn: sq("d5"),
				EnPassant:  true,
			},
		},
		{
			name:    "king two columns moves the rook",
			fen:     "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			move:    "e1g1",
			wantFEN: "4k3/8/8/8/8/8/8/R4RK1 w - - 0 1",
			wantResult: MoveResult{
				Piece:           chess.W(chess.King),
				CapturedOn:      chess.NoSquare,
				Castle:          true,
				CastleDirection: chess.Kingside,
			},
		},
		{
			name:    "queenside castling move",
			fen:     "r3k3/8/8/8/8/8/8/4K3 b q - 0 1",
			move:    "e8c8",
			wantFEN: "2kr4/8/8/8/8/8/8/4K3 b - - 0 1",
			wantResult: MoveResult{
				Piece:           chess.B(chess.King),
				CapturedOn:      chess.NoSquare,
				Castle:          true,
				CastleDirection: chess.Queenside,
			},
		},
		{
			name:    "king move clears both rights",
			fen:     "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			move:    "e1e2",
			wantFEN: "4k3/8/8/8/8/8/4K3/R6R w - - 0 1",
			wantResult: MoveResult{
				Piece:      chess.W(chess.King),
				CapturedOn: chess.NoSquare,
			},
		},
		{
			name:    "rook move clears its right",
			fen:     "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			move:    "a1a5",
			wantFEN: "4k3/8/8/R7/8/8/8/4K2R w K - 0 1",
			wantResult: MoveResult{
				Piece:      chess.W(chess.Rook),
				CapturedOn: chess.NoSquare,
			},
		},
		{
			name:    "capturing a home rook clears the opponent right",
			fen:     "r3k2r/8/8/8/8/8/8/4K2R w Kkq - 0 1",
			move:    "h1h8",
			wantFEN: "r3k2R/8/8/8/8/8/8/4K3 w q - 0 1",
			wantResult: MoveResult{
				Piece:      chess.W(chess.Rook),
				Captured:   chess.B(chess.Rook),
				CapturedOn: sq("h8"),
			},
		},
		{
			name:    "promotion with kind",
			fen:     "8/4P3/8/8/8/8/8/k3K3 w - - 0 1",
			move:    "e7e8n",
			wantFEN: "4N3/8/8/8/8/8/8/k3K3 w - - 0 1",
			wantResult: MoveResult{
				Piece:      chess.W(chess.Pawn),
				CapturedOn: chess.NoSquare,
				Promoted:   chess.W(chess.Knight),
			},
		},
		{
			name:    "promotion without kind is pending",
			fen:     "8/8/8/8/8/8/3p4/k3K3 b - - 0 1",
			move:    "d2d1",
			wantFEN: "8/8/8/8/8/8/8/k2pK3 b - - 0 1",
			wantResult: MoveResult{
				Piece:            chess.B(chess.Pawn),
				CapturedOn:       chess.NoSquare,
				PromotionPending: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := ApplyMove(board, move(tt.move))
			if diff := cmp.Diff(tt.wantResult, got); diff != "" {
				t.Errorf("ApplyMove(%s) result mismatch (-want +got):\n%s", tt.move, diff)
			}
			if fen := BoardToFEN(board); fen != tt.wantFEN {
				t.Errorf("ApplyMove(%s) FEN = %q, want %q", tt.move, fen, tt.wantFEN)
			}
		})
	}
}

func TestEnPassantLifetime(t *testing.T) {
	board := mustBoard(t, "rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	if err := PlayMove(board, move("e2e4")); err != nil {
		t.Fatalf("PlayMove(e2e4) error = %v", err)
	}
	if board.EnPassant != sq("e3") {
		t.Fatalf("EnPassant = %v, want e3", board.EnPassant)
	}
	if !LegalMoves(board, sq("d4")).Has(sq("e3")) {
		t.Fatalf("LegalMoves(d4) = %v, want e3 included", LegalMoves(board, sq("d4")))
	}

	// Capture on the next ply.
	captured := board.Copy()
	if err := PlayMove(captured, move("d4e3")); err != nil {
		t.Fatalf("PlayMove(d4e3) error = %v", err)
	}
	if got := captured.Get(sq("e4")); got != chess.Empty {
		t.Errorf("e4 = %v after en passant, want Empty", got)
	}
	if got := captured.Get(sq("e3")); got != chess.B(chess.Pawn) {
		t.Errorf("e3 = %v after en passant, want Black Pawn", got)
	}

	// Any other ply discards the opportunity.
	if err := PlayMove(board, move("g8f6")); err != nil {
		t.Fatalf("PlayMove(g8f6) error = %v", err)
	}
	if err := PlayMove(board, move("g1f3")); err != nil {
		t.Fatalf("PlayMove(g1f3) error = %v", err)
	}
	if board.EnPassant != chess.NoSquare {
		t.Errorf("EnPassant = %v, want NoSquare", board.EnPassant)
	}
	if LegalMoves(board, sq("d4")).Has(sq("e3")) {
		t.Error("en passant still available after an intervening ply")
	}
}

func TestPromote(t *testing.T) {
	board := mustBoard(t, "8/8/8/8/8/8/8/k2pK3 b - - 0 1")
	if err := Promote(board, sq("d1"), chess.Rook); err != nil {
		t.Fatalf("Promote() error = %v", err)
	}
	if got := board.Get(sq("d1")); got != chess.B(chess.Rook) {
		t.Errorf("d1 = %v, want Black Rook", got)
	}

	tests := []struct {
		name string
		fen  string
		at   string
		kind chess.Piece
	}{
		{"not a pawn", "8/8/8/8/8/8/8/k2rK3 b - - 0 1", "d1", chess.Queen},
		{"pawn not on last row", "8/8/8/8/8/8/3p4/k3K3 b - - 0 1", "d2", chess.Queen},
		{"king is not a promotion kind", "8/8/8/8/8/8/8/k2pK3 b - - 0 1", "d1", chess.King},
		{"pawn is not a promotion kind", "8/8/8/8/8/8/8/k2pK3 b - - 0 1", "d1", chess.Pawn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			err := Promote(board, sq(tt.at), tt.kind)
			if !stderrors.Is(err, errors.ErrInvalidPromotion) {
				t.Errorf("Promote() error = %v, want ErrInvalidPromotion", err)
			}
		})
	}
}

func TestAdvanceTurn(t *testing.T) {
	board := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 5 9")
	AdvanceTurn(board)
	if board.ToMove != chess.Black {
		t.Errorf("ToMove = %v, want Black", board.ToMove)
	}
	if board.HalfmoveClock != 5 || board.MoveNumber != 9 {
		t.Errorf("clocks = %d %d, want 5 9", board.HalfmoveClock, board.MoveNumber)
	}
	AdvanceTurn(board)
	if board.ToMove != chess.White {
		t.Errorf("ToMove = %v, want White", board.ToMove)
	}
}

func TestPlayMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantErr error
		wantFEN string
	}{
		{
			name:    "legal move advances the turn",
			fen:     InitialFEN,
			move:    "e2e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "moving the opponent's piece",
			fen:     InitialFEN,
			move:    "e7e5",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "moving from an empty square",
			fen:     InitialFEN,
			move:    "e4e5",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "destination not reachable",
			fen:     InitialFEN,
			move:    "e2e5",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "pinned piece",
			fen:     "4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1",
			move:    "e2d3",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "castling by king move",
			fen:     "4k3/8/8/8/8/8/8/4K2R w K - 0 1",
			move:    "e1g1",
			wantFEN: "4k3/8/8/8/8/8/8/5RK1 b - - 0 1",
		},
		{
			name:    "castling through check",
			fen:     "4kr2/8/8/8/8/8/8/4K2R w K - 0 1",
			move:    "e1g1",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "promotion requires a kind",
			fen:     "8/4P3/8/8/8/8/8/k3K3 w - - 0 1",
			move:    "e7e8",
			wantErr: errors.ErrInvalidPromotion,
		},
		{
			name:    "promotion kind on a normal move",
			fen:     InitialFEN,
			move:    "e2e4q",
			wantErr: errors.ErrInvalidPromotion,
		},
		{
			name:    "promotion",
			fen:     "8/4P3/8/8/8/8/8/k3K3 w - - 0 1",
			move:    "e7e8q",
			wantFEN: "4Q3/8/8/8/8/8/8/k3K3 b - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			before := *board
			err := PlayMove(board, move(tt.move))
			if tt.wantErr != nil {
				if !stderrors.Is(err, tt.wantErr) {
					t.Fatalf("PlayMove(%s) error = %v, want %v", tt.move, err, tt.wantErr)
				}
				if *board != before {
					t.Errorf("rejected move changed the board to %q", BoardToFEN(board))
				}
				return
			}
			if err != nil {
				t.Fatalf("PlayMove(%s) error = %v", tt.move, err)
			}
			if got := BoardToFEN(board); got != tt.wantFEN {
				t.Errorf("PlayMove(%s) FEN = %q, want %q", tt.move, got, tt.wantFEN)
			}
		})
	}
}
