// Package crosscheck compares the rules engine against independent move
// generators.
package crosscheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Oracle is a reference move generator addressed by FEN.
type Oracle interface {
	Name() string
	// LegalMoves returns the legal moves of the side to move in UCI form.
	LegalMoves(fen string) ([]string, error)
	Perft(fen string, depth int) (uint64, error)
}

// Oracle names accepted by New.
const (
	NotnilName      = "notnil"
	DragontoothName = "dragontooth"
	GooseName       = "goose"
)

// New returns the oracle registered under name.
func New(name string) (Oracle, error) {
	switch strings.ToLower(name) {
	case NotnilName:
		return NotnilOracle{}, nil
	case DragontoothName:
		return DragontoothOracle{}, nil
	case GooseName:
		return GooseOracle{}, nil
	}
	return nil, errors.Wrapf(errors.ErrOracle, "unknown oracle %q", name)
}

// Names lists the available oracles.
func Names() []string {
	return []string{NotnilName, DragontoothName, GooseName}
}

// Diff lists where our move list and an oracle's disagree.
type Diff struct {
	Oracle  string
	FEN     string
	Missing []string // Oracle moves we do not generate
	Extra   []string // Our moves the oracle rejects
}

// Empty reports whether both generators agree.
func (d Diff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

func (d Diff) String() string {
	if d.Empty() {
		return fmt.Sprintf("%s: agree on %s", d.Oracle, d.FEN)
	}
	return fmt.Sprintf("%s: %s missing [%s] extra [%s]", d.Oracle, d.FEN,
		strings.Join(d.Missing, " "), strings.Join(d.Extra, " "))
}

// UCIMoves returns our legal moves for the side to move, sorted.
func UCIMoves(board *chess.Board) []string {
	moves := engine.GenerateMoves(board)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// Compare checks the move list of board against oracle.
func Compare(board *chess.Board, oracle Oracle) (Diff, error) {
	fen := engine.BoardToFEN(board)
	theirs, err := oracle.LegalMoves(fen)
	if err != nil {
		return Diff{}, err
	}
	diff := Diff{Oracle: oracle.Name(), FEN: fen}

	ours := make(map[string]bool)
	for _, m := range UCIMoves(board) {
		ours[m] = true
	}
	seen := make(map[string]bool)
	for _, m := range theirs {
		seen[m] = true
		if !ours[m] {
			diff.Missing = append(diff.Missing, m)
		}
	}
	for m := range ours {
		if !seen[m] {
			diff.Extra = append(diff.Extra, m)
		}
	}
	sort.Strings(diff.Missing)
	sort.Strings(diff.Extra)
	return diff, nil
}

// PerftDiff pairs our node count with an oracle's.
type PerftDiff struct {
	Oracle string
	Depth  int
	Ours   uint64
	Theirs uint64
}

// Agree reports whether the counts match.
func (p PerftDiff) Agree() bool {
	return p.Ours == p.Theirs
}

// ComparePerft counts nodes to depth with both generators.
func ComparePerft(board *chess.Board, oracle Oracle, depth int) (PerftDiff, error) {
	theirs, err := oracle.Perft(engine.BoardToFEN(board), depth)
	if err != nil {
		return PerftDiff{}, err
	}
	return PerftDiff{
		Oracle: oracle.Name(),
		Depth:  depth,
		Ours:   engine.Perft(board, depth),
		Theirs: theirs,
	}, nil
}
