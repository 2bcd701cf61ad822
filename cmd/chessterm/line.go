package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/render"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// renderOptions marks the session's selection, destinations and checked king.
func renderOptions(s *session.Session, noColour bool) render.Options {
	opts := render.DefaultOptions()
	opts.Selected = s.Selected()
	opts.Highlights = s.ValidMoves()
	opts.Checked = s.Checked()
	opts.NoColour = noColour
	return opts
}

// promotionPrompt lists the promotion choices with the current one bracketed.
func promotionPrompt(s *session.Session) string {
	var sb strings.Builder
	sb.WriteString("Promote:")
	for _, kind := range s.PromotionChoices() {
		letter := kind.Letter()
		if kind == s.PromotionChoice() {
			fmt.Fprintf(&sb, " [%c]", letter)
		} else {
			fmt.Fprintf(&sb, " %c", letter)
		}
	}
	return sb.String()
}

// runLine plays a session from text commands, one per line, redrawing the
// board after each.
//
//	e2          click a square
//	O-O, k      castle kingside
//	O-O-O, q    castle queenside
//	+ / -       cycle the promotion choice
//	= or empty  confirm the promotion; a letter (q, n, b, r) picks and confirms
//	fen         print the position
//	quit        stop
func runLine(s *session.Session, in io.Reader, out io.Writer, noColour bool) error {
	board := s.Board()
	w := output.NewTextWriter(out, renderOptions(s, noColour))
	if err := w.WritePosition(&board); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "quit" || cmd == "exit" {
			break
		}

		msg := execute(s, cmd)
		board = s.Board()
		w.SetOptions(renderOptions(s, noColour))
		if err := w.WritePosition(&board); err != nil {
			return err
		}
		if s.State() == session.PromotionPending {
			msg = promotionPrompt(s)
		}
		if msg != "" {
			fmt.Fprintln(out, msg)
		}
	}
	return scanner.Err()
}

// execute applies one command and returns a message for the player.
func execute(s *session.Session, cmd string) string {
	if s.State() == session.PromotionPending {
		return promote(s, cmd)
	}

	switch strings.ToLower(cmd) {
	case "":
		return ""
	case "fen":
		return s.FEN()
	case "o-o", "0-0", "k":
		return castle(s, chess.Kingside)
	case "o-o-o", "0-0-0", "q":
		return castle(s, chess.Queenside)
	}

	sq, ok := chess.ParseSquare(strings.ToLower(cmd))
	if !ok {
		return fmt.Sprintf("unknown command %q", cmd)
	}
	if s.Status().IsTerminal() {
		return "game over: " + s.StatusText()
	}
	if s.Click(sq) == session.Ignored && s.State() == session.Idle {
		return fmt.Sprintf("no %s piece on %s", s.Board().ToMove, sq)
	}
	return ""
}

func castle(s *session.Session, dir chess.Direction) string {
	if !s.Castle(dir) {
		return fmt.Sprintf("cannot castle %s", dir)
	}
	return ""
}

// promote handles input while a promotion choice is pending.
func promote(s *session.Session, cmd string) string {
	switch cmd {
	case "+":
		s.CyclePromotion(1)
		return ""
	case "-":
		s.CyclePromotion(-1)
		return ""
	case "", "=":
	default:
		if len(cmd) != 1 || !selectPromotion(s, cmd[0]) {
			return "choose one of q, n, b, r"
		}
	}
	if err := s.ConfirmPromotion(); err != nil {
		return err.Error()
	}
	return ""
}

// selectPromotion cycles to the piece with the given letter.
func selectPromotion(s *session.Session, letter byte) bool {
	for range s.PromotionChoices() {
		if s.PromotionChoice().Letter() == strings.ToUpper(string(letter))[0] {
			return true
		}
		s.CyclePromotion(1)
	}
	return false
}
