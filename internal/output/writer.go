// Package output writes positions and perft results as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/render"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different output formats (text, JSON).
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(board *chess.Board) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter draws positions as a text board followed by a status line.
type TextWriter struct {
	w    io.Writer
	opts render.Options
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, opts render.Options) *TextWriter {
	return &TextWriter{w: w, opts: opts}
}

// SetOptions replaces the render options used for later positions.
func (tw *TextWriter) SetOptions(opts render.Options) {
	tw.opts = opts
}

// WritePosition writes the board and a status line.
func (tw *TextWriter) WritePosition(board *chess.Board) error {
	if err := render.Text(tw.w, board, tw.opts); err != nil {
		return err
	}
	_, err := fmt.Fprintln(tw.w, StatusLine(board))
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// StatusLine describes the side to move and any check, mate or draw.
func StatusLine(board *chess.Board) string {
	line := fmt.Sprintf("%s to move", board.ToMove)
	if text := engine.Evaluate(board).String(); text != "" {
		line += " | " + text
	}
	return line
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*PositionJSON
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches positions into an array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WritePosition buffers a position (or writes it immediately in single mode).
// The board is converted at once, so later changes to it are not reflected.
func (jw *JSONWriter) WritePosition(board *chess.Board) error {
	if jw.single {
		return encode(jw.w, PositionToJSON(board))
	}
	jw.positions = append(jw.positions, PositionToJSON(board))
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}
	err := encode(jw.w, &PositionsJSON{Positions: jw.positions})
	jw.positions = jw.positions[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
