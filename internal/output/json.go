package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/crosscheck"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// PositionJSON represents a position in JSON format.
type PositionJSON struct {
	FEN        string              `json:"fen"`
	SideToMove string              `json:"sideToMove"` // "white" or "black"
	Castling   string              `json:"castling"`
	EnPassant  string              `json:"enPassant,omitempty"`
	Status     string              `json:"status"`
	Text       string              `json:"text,omitempty"`
	MoveCount  int                 `json:"moveCount"`
	Moves      map[string][]string `json:"moves"` // origin square -> destinations
}

// PositionsJSON holds multiple positions for array output.
type PositionsJSON struct {
	Positions []*PositionJSON `json:"positions"`
}

// PerftJSON represents a perft run in JSON format.
type PerftJSON struct {
	FEN    string       `json:"fen"`
	Depth  int          `json:"depth"`
	Nodes  uint64       `json:"nodes"`
	Divide []DivideJSON `json:"divide,omitempty"`
	Oracle *OracleJSON  `json:"oracle,omitempty"`
}

// DivideJSON is the node count below one root move.
type DivideJSON struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// OracleJSON records a comparison against a reference generator.
type OracleJSON struct {
	Name    string   `json:"name"`
	Nodes   uint64   `json:"nodes"`
	Agree   bool     `json:"agree"`
	Missing []string `json:"missing,omitempty"`
	Extra   []string `json:"extra,omitempty"`
}

// PositionToJSON converts a board to JSON format.
func PositionToJSON(board *chess.Board) *PositionJSON {
	state := engine.Evaluate(board)
	pj := &PositionJSON{
		FEN:        engine.BoardToFEN(board),
		SideToMove: colourName(board.ToMove),
		Castling:   board.Castling.String(),
		Status:     state.Status.String(),
		Text:       state.String(),
		Moves:      make(map[string][]string),
	}
	if board.EnPassant != chess.NoSquare {
		pj.EnPassant = board.EnPassant.String()
	}

	for _, m := range engine.GenerateMoves(board) {
		from := m.From.String()
		to := m.To.String()
		// Promotion kinds share a destination.
		if dests := pj.Moves[from]; len(dests) > 0 && dests[len(dests)-1] == to {
			continue
		}
		pj.Moves[from] = append(pj.Moves[from], to)
	}
	for _, dests := range pj.Moves {
		pj.MoveCount += len(dests)
	}
	return pj
}

// NewPerftJSON converts a divide to JSON format.
func NewPerftJSON(board *chess.Board, depth int, results []perft.Result) *PerftJSON {
	pj := &PerftJSON{
		FEN:   engine.BoardToFEN(board),
		Depth: depth,
		Nodes: perft.Total(results),
	}
	for _, r := range results {
		pj.Divide = append(pj.Divide, DivideJSON{Move: r.Move.String(), Nodes: r.Nodes})
	}
	return pj
}

// SetOracle records an oracle comparison.
func (pj *PerftJSON) SetOracle(nodes crosscheck.PerftDiff, moves crosscheck.Diff) {
	pj.Oracle = &OracleJSON{
		Name:    nodes.Oracle,
		Nodes:   nodes.Theirs,
		Agree:   nodes.Agree() && moves.Empty(),
		Missing: moves.Missing,
		Extra:   moves.Extra,
	}
}

// WritePosition writes a single position as indented JSON.
func WritePosition(w io.Writer, board *chess.Board) error {
	return encode(w, PositionToJSON(board))
}

// WritePerft writes a perft result as indented JSON.
func WritePerft(w io.Writer, pj *PerftJSON) error {
	return encode(w, pj)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
