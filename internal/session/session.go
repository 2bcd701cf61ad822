// Package session holds the live board and the click driven selection
// state used by interactive front ends.
package session

import (
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// State is the selection state of a session.
type State int

const (
	Idle State = iota
	PieceSelected
	PromotionPending
)

func (s State) String() string {
	switch s {
	case PieceSelected:
		return "piece selected"
	case PromotionPending:
		return "promotion pending"
	default:
		return "idle"
	}
}

// Event reports what a click did.
type Event int

const (
	Ignored Event = iota
	Selected
	Deselected
	Moved
	Castled
	PromotionStarted
)

func (e Event) String() string {
	switch e {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case Moved:
		return "moved"
	case Castled:
		return "castled"
	case PromotionStarted:
		return "promotion started"
	default:
		return "ignored"
	}
}

// Session is one game in progress. It is not safe for concurrent use.
type Session struct {
	name   string
	log    zerolog.Logger
	board  *chess.Board
	state  State
	status engine.GameState

	selected   chess.Square
	validMoves chess.SquareSet

	promotionSquare chess.Square
	promotionIndex  int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithName names the session in log output.
func WithName(name string) Option {
	return func(s *Session) {
		s.name = name
	}
}

// New starts a session from fen, or from the initial position if fen is empty.
func New(fen string, opts ...Option) (*Session, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}

	s := &Session{
		log:             zerolog.Nop(),
		board:           board,
		selected:        chess.NoSquare,
		promotionSquare: chess.NoSquare,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.name == "" {
		s.name = petname.Generate(2, "-")
	}
	s.log = s.log.With().Str("session", s.name).Logger()
	s.status = engine.Evaluate(board)

	s.log.Info().Str("fen", fen).Str("status", s.status.Status.String()).Msg("session started")
	return s, nil
}

// Click handles a square selection from the front end. Clicks are ignored
// once the game is over.
func (s *Session) Click(sq chess.Square) Event {
	if sq == chess.NoSquare || s.status.IsTerminal() {
		return Ignored
	}

	switch s.state {
	case PromotionPending:
		return Ignored

	case PieceSelected:
		if sq == s.selected {
			return Ignored
		}
		if !s.validMoves.Has(sq) {
			s.log.Debug().Str("from", s.selected.String()).Str("to", sq.String()).Msg("deselected")
			s.clearSelection()
			return Deselected
		}
		return s.execute(s.selected, sq)
	}

	if !s.board.Get(sq).BelongsTo(s.board.ToMove) {
		return Ignored
	}
	s.selected = sq
	s.validMoves = s.movesFrom(sq)
	s.state = PieceSelected
	s.log.Debug().Str("from", sq.String()).Int("moves", s.validMoves.Len()).Msg("selected")
	return Selected
}

// movesFrom is the legal destination set of the piece on sq, including the
// king's castling destinations.
func (s *Session) movesFrom(sq chess.Square) chess.SquareSet {
	moves := engine.LegalMoves(s.board, sq)
	if king, ok := s.board.FindKing(s.board.ToMove); !ok || sq != king {
		return moves
	}
	for _, dir := range []chess.Direction{chess.Kingside, chess.Queenside} {
		moves = moves.Add(engine.CastleTarget(s.board, dir))
	}
	return moves
}

// execute plays a move already known to be in the valid set.
func (s *Session) execute(from, to chess.Square) Event {
	s.clearSelection()

	if chess.ExtractPiece(s.board.Get(from)) == chess.King {
		for _, dir := range []chess.Direction{chess.Kingside, chess.Queenside} {
			if engine.CastleTarget(s.board, dir) == to {
				s.castle(dir)
				return Castled
			}
		}
	}

	result := engine.ApplyMove(s.board, chess.Move{From: from, To: to})
	logEvent := s.log.Info().Str("from", from.String()).Str("to", to.String())
	if result.CapturedOn != chess.NoSquare {
		logEvent = logEvent.Str("captured", result.Captured.String())
	}

	if result.PromotionPending {
		s.state = PromotionPending
		s.promotionSquare = to
		s.promotionIndex = 0
		logEvent.Msg("promotion pending")
		return PromotionStarted
	}

	logEvent.Msg("moved")
	s.finishPly()
	return Moved
}

// Castle castles the side to move. It returns false, leaving the turn
// unchanged, when castling in dir is not possible, a promotion is pending or
// the game is over.
func (s *Session) Castle(dir chess.Direction) bool {
	if s.state == PromotionPending || s.status.IsTerminal() {
		return false
	}
	if !engine.CanCastle(s.board, dir) {
		s.log.Debug().Str("direction", dir.String()).Msg("castling refused")
		return false
	}
	s.clearSelection()
	s.castle(dir)
	return true
}

func (s *Session) castle(dir chess.Direction) {
	engine.PerformCastling(s.board, dir)
	s.log.Info().Str("direction", dir.String()).Msg("castled")
	s.finishPly()
}

// PromotionChoices returns the cyclable promotion kinds in order.
func (s *Session) PromotionChoices() []chess.Piece {
	return chess.PromotionPieces[:]
}

// PromotionChoice returns the currently highlighted promotion kind.
func (s *Session) PromotionChoice() chess.Piece {
	return chess.PromotionPieces[s.promotionIndex]
}

// PromotionSquare returns the square of the pawn awaiting promotion, or NoSquare.
func (s *Session) PromotionSquare() chess.Square {
	return s.promotionSquare
}

// CyclePromotion moves the highlighted choice by delta, wrapping at both ends.
func (s *Session) CyclePromotion(delta int) {
	if s.state != PromotionPending {
		return
	}
	n := len(chess.PromotionPieces)
	s.promotionIndex = ((s.promotionIndex+delta)%n + n) % n
}

// ConfirmPromotion substitutes the highlighted piece and finishes the ply.
func (s *Session) ConfirmPromotion() error {
	if s.state != PromotionPending {
		return errors.ErrNoPromotionPending
	}
	kind := s.PromotionChoice()
	if err := engine.Promote(s.board, s.promotionSquare, kind); err != nil {
		return errors.Wrapf(err, "confirm promotion on %s", s.promotionSquare)
	}
	s.log.Info().Str("to", s.promotionSquare.String()).Str("piece", s.board.Get(s.promotionSquare).String()).Msg("promoted")

	s.state = Idle
	s.promotionSquare = chess.NoSquare
	s.promotionIndex = 0
	s.finishPly()
	return nil
}

// finishPly hands the move over and re-evaluates the position.
func (s *Session) finishPly() {
	engine.AdvanceTurn(s.board)
	s.status = engine.Evaluate(s.board)
	if s.status.Status != engine.Ongoing {
		s.log.Info().Str("status", s.status.Status.String()).Str("colour", s.status.Colour.String()).Msg("status")
	}
}

func (s *Session) clearSelection() {
	s.state = Idle
	s.selected = chess.NoSquare
	s.validMoves = 0
}

// State returns the selection state.
func (s *Session) State() State { return s.state }

// Board returns a copy of the live board.
func (s *Session) Board() chess.Board { return *s.board }

// Selected returns the selected square, or NoSquare.
func (s *Session) Selected() chess.Square { return s.selected }

// ValidMoves returns the destinations of the selected piece.
func (s *Session) ValidMoves() chess.SquareSet { return s.validMoves }

// Status returns the status evaluated after the last completed ply.
func (s *Session) Status() engine.GameState { return s.status }

// StatusText is the display text of Status, empty while nothing is to report.
func (s *Session) StatusText() string { return s.status.String() }

// FEN returns the live position.
func (s *Session) FEN() string { return engine.BoardToFEN(s.board) }

// Name returns the session name.
func (s *Session) Name() string { return s.name }

// Checked returns the square of the king in check, or NoSquare.
func (s *Session) Checked() chess.Square {
	switch s.status.Status {
	case engine.Check, engine.Checkmate:
		if king, ok := s.board.FindKing(s.status.Colour); ok {
			return king
		}
	}
	return chess.NoSquare
}
