// Package render draws boards as text.
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Options controls board rendering.
type Options struct {
	// Destinations to mark, normally the selected piece's valid moves.
	Highlights chess.SquareSet

	// The selected square, or NoSquare.
	Selected chess.Square

	// Checked marks a king square in check, or NoSquare.
	Checked chess.Square

	// NoColour disables ANSI colours; markers are still drawn.
	NoColour bool
}

// DefaultOptions returns options with nothing selected.
func DefaultOptions() Options {
	return Options{Selected: chess.NoSquare, Checked: chess.NoSquare}
}

// Square backgrounds and piece foregrounds.
var (
	lightBg     = color.BgHiWhite
	darkBg      = color.BgWhite
	highlightBg = color.BgGreen
	selectedBg  = color.BgYellow
	checkedBg   = color.BgRed
	whitePiece  = []color.Attribute{color.FgHiBlue, color.Bold}
	blackPiece  = []color.Attribute{color.FgBlack, color.Bold}
)

const files = "   a  b  c  d  e  f  g  h"

// Text writes the board with rank and file labels, White at the bottom.
//
// Each cell is three characters wide. A selected piece is drawn as "[P]",
// a highlighted destination as "(p)" or "(.)", other cells as " p ".
func Text(w io.Writer, board *chess.Board, opts Options) error {
	label := paint(opts.NoColour, color.FgHiBlack)

	var sb strings.Builder
	sb.WriteString(label.Sprint(files))
	sb.WriteByte('\n')
	for row := 0; row < chess.BoardSize; row++ {
		rank := label.Sprint(strconv.Itoa(chess.BoardSize - row))
		sb.WriteString(rank)
		sb.WriteByte(' ')
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteString(cell(board, chess.NewSquare(row, col), opts))
		}
		sb.WriteByte(' ')
		sb.WriteString(rank)
		sb.WriteByte('\n')
	}
	sb.WriteString(label.Sprint(files))
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// cell renders one square as a single coloured run.
func cell(board *chess.Board, sq chess.Square, opts Options) string {
	bg := lightBg
	if (sq.Row()+sq.Col())%2 == 1 {
		bg = darkBg
	}
	left, right := " ", " "
	switch {
	case sq == opts.Selected:
		bg, left, right = selectedBg, "[", "]"
	case opts.Highlights.Has(sq):
		bg, left, right = highlightBg, "(", ")"
	case sq == opts.Checked:
		bg = checkedBg
	}

	attrs := []color.Attribute{bg}
	letter := "."
	if piece := board.Get(sq); piece != chess.Empty {
		letter = string(engine.ColouredPieceToFENLetter(piece))
		if chess.ExtractColour(piece) == chess.White {
			attrs = append(attrs, whitePiece...)
		} else {
			attrs = append(attrs, blackPiece...)
		}
	}
	return paint(opts.NoColour, attrs...).Sprint(left + letter + right)
}

// paint builds a color whose output does not depend on the global
// terminal detection.
func paint(noColour bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if noColour {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

// Plain renders the board without colour.
func Plain(board *chess.Board) string {
	var sb strings.Builder
	opts := DefaultOptions()
	opts.NoColour = true
	_ = Text(&sb, board, opts)
	return sb.String()
}
