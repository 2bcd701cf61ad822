package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const (
	leftMargin  = 2 // rank label and a space
	squareWidth = 3
	boardHeight = chess.BoardSize + 1 // ranks plus the file labels
)

// Square colours and piece foregrounds.
var (
	lightSquare    = tcell.ColorBurlyWood
	darkSquare     = tcell.ColorSaddleBrown
	selectedSquare = tcell.ColorYellow
	moveSquare     = tcell.ColorGreen
	checkedSquare  = tcell.ColorRed
	whitePieces    = tcell.ColorWhite
	blackPieces    = tcell.ColorBlack
	labelColour    = tcell.ColorGray
)

// ui is the full screen board.
type ui struct {
	app    *tview.Application
	board  *tview.Box
	status *tview.TextView
	s      *session.Session
	msg    string
}

func newUI(s *session.Session) *ui {
	u := &ui{
		app:    tview.NewApplication(),
		board:  tview.NewBox(),
		status: tview.NewTextView(),
		s:      s,
	}
	u.board.SetDrawFunc(u.drawBoard)
	u.board.SetMouseCapture(u.handleMouse)
	u.app.SetInputCapture(u.handleKey)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(u.board, boardHeight+1, 0, true).
		AddItem(u.status, 3, 0, false)
	u.app.SetRoot(layout, true).EnableMouse(true)
	u.updateStatus()
	return u
}

func (u *ui) run() error {
	return u.app.Run()
}

// squareAt maps a screen position inside the board box to a square.
func (u *ui) squareAt(x, y int) chess.Square {
	bx, by, _, _ := u.board.GetInnerRect()
	x -= bx + leftMargin
	y -= by
	if x < 0 || y < 0 {
		return chess.NoSquare
	}
	return chess.NewSquare(y, x/squareWidth)
}

func (u *ui) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}
	sq := u.squareAt(event.Position())
	if sq == chess.NoSquare {
		return action, event
	}
	u.msg = ""
	u.s.Click(sq)
	u.refresh()
	return action, nil
}

func (u *ui) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		u.app.Stop()
		return nil
	}

	if u.s.State() == session.PromotionPending {
		switch event.Key() {
		case tcell.KeyLeft:
			u.s.CyclePromotion(-1)
		case tcell.KeyRight:
			u.s.CyclePromotion(1)
		case tcell.KeyEnter:
			if err := u.s.ConfirmPromotion(); err != nil {
				u.msg = err.Error()
			}
		default:
			return event
		}
		u.refresh()
		return nil
	}

	if event.Key() != tcell.KeyRune {
		return event
	}
	dir := chess.Kingside
	switch event.Rune() {
	case 'k', 'K':
	case 'q', 'Q':
		dir = chess.Queenside
	default:
		return event
	}
	u.msg = ""
	if !u.s.Castle(dir) {
		u.msg = fmt.Sprintf("cannot castle %s", dir)
	}
	u.refresh()
	return nil
}

// refresh updates the status text and schedules a redraw.
func (u *ui) refresh() {
	u.updateStatus()
	go u.app.Draw()
}

func (u *ui) updateStatus() {
	board := u.s.Board()
	text := fmt.Sprintf("%s to move", board.ToMove)
	if state := u.s.StatusText(); state != "" {
		text += "  " + state
	}
	if u.s.State() == session.PromotionPending {
		text += "\n" + promotionPrompt(u.s) + "  (left/right, enter)"
	} else if u.msg != "" {
		text += "\n" + u.msg
	}
	u.status.SetText(text)
}

// drawBoard draws the ranks top down with White at the bottom.
func (u *ui) drawBoard(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	board := u.s.Board()
	opts := renderOptions(u.s, false)
	labels := tcell.StyleDefault.Foreground(labelColour)

	for row := 0; row < chess.BoardSize; row++ {
		screen.SetContent(x, y+row, rune('0'+chess.BoardSize-row), nil, labels)
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.NewSquare(row, col)
			bg := lightSquare
			if (row+col)%2 == 1 {
				bg = darkSquare
			}
			switch {
			case sq == opts.Selected:
				bg = selectedSquare
			case opts.Highlights.Has(sq):
				bg = moveSquare
			case sq == opts.Checked:
				bg = checkedSquare
			}
			drawSquare(screen, x+leftMargin+col*squareWidth, y+row, board.Get(sq), bg)
		}
	}
	for col := 0; col < chess.BoardSize; col++ {
		screen.SetContent(x+leftMargin+col*squareWidth+1, y+chess.BoardSize, rune('a'+col), nil, labels)
	}
	return x, y, width, height
}

// drawSquare fills one square and centres the piece letter in it.
func drawSquare(screen tcell.Screen, x, y int, piece chess.Piece, bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	letter := ' '
	if piece != chess.Empty {
		letter = rune(piece.Letter())
		fg := whitePieces
		if chess.ExtractColour(piece) == chess.Black {
			fg = blackPieces
		}
		style = style.Foreground(fg).Bold(true)
	}
	screen.SetContent(x, y, ' ', nil, style)
	screen.SetContent(x+1, y, letter, nil, style)
	screen.SetContent(x+2, y, ' ', nil, style)
}
