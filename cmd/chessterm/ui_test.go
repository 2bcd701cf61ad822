package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/session"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func newTestUI(t *testing.T, fen string) *ui {
	t.Helper()
	s, err := session.New(fen, session.WithName("ui"))
	testutil.AssertNoError(t, err)
	u := newUI(s)
	u.board.SetRect(0, 0, 40, boardHeight+1)
	return u
}

func TestSquareAt(t *testing.T) {
	u := newTestUI(t, "")
	tests := []struct {
		x, y int
		want string
	}{
		{2, 0, "a8"},
		{4, 0, "a8"},
		{5, 0, "b8"},
		{25, 7, "h1"},
		{14, 4, "e4"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			testutil.AssertEqual(t, u.squareAt(tt.x, tt.y), testutil.MustSquare(t, tt.want))
		})
	}

	for _, pos := range [][2]int{{0, 0}, {1, 3}, {26, 0}, {5, 8}} {
		testutil.AssertEqual(t, u.squareAt(pos[0], pos[1]), chess.NoSquare, "position %v", pos)
	}
}

func TestDrawBoard(t *testing.T) {
	u := newTestUI(t, "")
	screen := tcell.NewSimulationScreen("UTF-8")
	testutil.AssertNoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, boardHeight+1)

	u.s.Click(testutil.MustSquare(t, "e2"))
	u.drawBoard(screen, 0, 0, 40, boardHeight+1)

	content := func(x, y int) (rune, tcell.Color) {
		r, _, style, _ := screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		return r, bg
	}

	r, _ := content(0, 0)
	testutil.AssertEqual(t, r, '8')
	r, _ = content(leftMargin+1, chess.BoardSize)
	testutil.AssertEqual(t, r, 'a')

	r, bg := content(leftMargin+4*squareWidth+1, 6) // e2
	testutil.AssertEqual(t, r, 'P')
	testutil.AssertEqual(t, bg, selectedSquare)

	r, bg = content(leftMargin+4*squareWidth+1, 4) // e4
	testutil.AssertEqual(t, r, ' ')
	testutil.AssertEqual(t, bg, moveSquare)

	r, bg = content(leftMargin+1, 7) // a1
	testutil.AssertEqual(t, r, 'R')
	testutil.AssertEqual(t, bg, darkSquare)
}

func TestHandleMouse(t *testing.T) {
	u := newTestUI(t, "")

	click := func(x, y int) {
		t.Helper()
		ev := tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
		_, rest := u.handleMouse(tview.MouseMove, ev)
		if rest == nil {
			t.Fatal("non-click consumed")
		}
		_, rest = u.handleMouse(tview.MouseLeftClick, ev)
		if rest != nil {
			t.Fatal("click on the board not consumed")
		}
	}

	click(leftMargin+4*squareWidth, 6) // e2
	click(leftMargin+4*squareWidth, 4) // e4
	testutil.AssertEqual(t, u.s.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
}

func TestHandleKey_Castle(t *testing.T) {
	u := newTestUI(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	if u.handleKey(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone)) != nil {
		t.Error("castling key not consumed")
	}
	testutil.AssertEqual(t, u.s.FEN(), "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1")

	if u.handleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) == nil {
		t.Error("unbound key consumed")
	}

	// White has no rights left once both sides have castled.
	u.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	testutil.AssertEqual(t, u.s.FEN(), "2kr3r/8/8/8/8/8/8/R4RK1 w - - 0 1")
	u.handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	testutil.AssertEqual(t, u.msg, "cannot castle queenside")
	testutil.AssertContains(t, u.status.GetText(false), "cannot castle queenside")
}

func TestHandleKey_Promotion(t *testing.T) {
	u := newTestUI(t, "8/4P3/8/8/8/8/8/k3K3 w - - 0 1")
	u.s.Click(testutil.MustSquare(t, "e7"))
	u.s.Click(testutil.MustSquare(t, "e8"))
	u.refresh()
	testutil.AssertContains(t, u.status.GetText(false), "Promote: [Q] N B R")

	u.handleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	testutil.AssertContains(t, u.status.GetText(false), "Promote: Q N B [R]")
	u.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	board := u.s.Board()
	testutil.AssertEqual(t, board.Get(testutil.MustSquare(t, "e8")), chess.W(chess.Rook))
	testutil.AssertEqual(t, board.ToMove, chess.Black)
}
