package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/lk16/checkers/internal/checkers"
)

// ClickOutcome describes what a click on the board did.
type ClickOutcome int

const (
	// ClickIgnored means nothing was selected and the square holds no movable piece.
	ClickIgnored ClickOutcome = iota

	// ClickSelected means the square was selected as the source of the next move.
	ClickSelected

	// ClickMoved means the selected piece was moved to the square.
	ClickMoved

	// ClickRejected means the move from the selected square was illegal. The selection is cleared.
	ClickRejected
)

func (o ClickOutcome) String() string {
	switch o {
	case ClickSelected:
		return "selected"
	case ClickMoved:
		return "moved"
	case ClickRejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// ClickResult is returned by Session.Click.
type ClickResult struct {
	Outcome ClickOutcome

	// Result is only set when Outcome is ClickMoved.
	Result *checkers.MoveResult
}

// Session is a single game guarded by its own lock, plus the square selected by the player.
type Session struct {
	// ID identifies the session in a Manager
	ID uuid.UUID

	// game is the underlying rules engine, protected by mutex
	game *checkers.Game

	// selected is the square picked by the first click of a move
	selected    checkers.Square
	hasSelected bool

	mutex  sync.Mutex
	logger *slog.Logger
}

// New creates a session with a game in the starting position.
func New() *Session {
	return newWithGame(checkers.NewGame())
}

// NewFromString creates a session from a position string, see checkers.NewGameFromString.
func NewFromString(s string) (*Session, error) {
	game, err := checkers.NewGameFromString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return newWithGame(game), nil
}

func newWithGame(game *checkers.Game) *Session {
	id := uuid.New()
	return &Session{
		ID:     id,
		game:   game,
		logger: slog.With("game", id.String()),
	}
}

// CurrentPlayer returns the side to move.
func (s *Session) CurrentPlayer() checkers.Player {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.game.CurrentPlayer()
}

// WinningPlayer returns the winner or checkers.NoPlayer.
func (s *Session) WinningPlayer() checkers.Player {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.game.WinningPlayer()
}

// IsGameOver reports whether a side ran out of pieces.
func (s *Session) IsGameOver() (bool, checkers.Player) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.game.IsGameOver()
}

// PieceAt returns the piece on a square.
func (s *Session) PieceAt(sq checkers.Square) checkers.Piece {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.game.PieceAt(sq)
}

// Board returns a copy of the board.
func (s *Session) Board() checkers.Board {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.game.Board()
}

// IsLegal checks a move without applying it.
func (s *Session) IsLegal(from, to checkers.Square) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.game.IsLegal(from, to)
}

// LegalMoves returns the legal moves of the side to move.
func (s *Session) LegalMoves() []checkers.Move {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.game.LegalMoves()
}

// Move validates and applies a move. The selection is cleared.
func (s *Session) Move(from, to checkers.Square) (checkers.MoveResult, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.hasSelected = false
	return s.move(from, to)
}

// move applies a move. It assumes mutex is locked.
func (s *Session) move(from, to checkers.Square) (checkers.MoveResult, error) {
	result, err := s.game.PlayMove(from, to)
	if err != nil {
		s.logger.Debug("move rejected", "from", from, "to", to, "error", err)
		return checkers.MoveResult{}, err
	}

	s.logger.Debug("move applied", "move", result.Move, "next", result.NextPlayer)

	if result.Promoted {
		s.logger.Debug("piece promoted", "square", result.Move.To, "piece", result.Piece)
	}

	if result.Continue {
		s.logger.Info("capture must be continued", "square", result.Move.To, "player", result.NextPlayer)

		// The piece that has to continue stays selected.
		s.selected = result.Move.To
		s.hasSelected = true
	}

	if result.Winner != checkers.NoPlayer {
		s.logger.Info("game over", "winner", result.Winner)
	}

	return result, nil
}

// Click handles a click on a square. Without a selection, a square holding a movable piece gets
// selected and anything else is ignored. With a selection, the move from the selected square to
// the clicked square is attempted and the selection is cleared, whether the move was legal or not.
func (s *Session) Click(sq checkers.Square) ClickResult {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.hasSelected {
		if !s.game.IsOccupiedByMovablePiece(sq) {
			return ClickResult{Outcome: ClickIgnored}
		}

		s.selected = sq
		s.hasSelected = true
		return ClickResult{Outcome: ClickSelected}
	}

	from := s.selected
	s.hasSelected = false

	result, err := s.move(from, sq)
	if err != nil {
		return ClickResult{Outcome: ClickRejected}
	}

	return ClickResult{Outcome: ClickMoved, Result: &result}
}

// Selected returns the selected square, if any.
func (s *Session) Selected() (checkers.Square, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.selected, s.hasSelected
}

// Reset restarts the game and clears the selection.
func (s *Session) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.game.Reset()
	s.hasSelected = false
	s.logger.Info("game reset")
}

// Status returns the turn indicator text.
func (s *Session) Status() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if over, winner := s.game.IsGameOver(); over {
		return fmt.Sprintf("%s wins!", winner)
	}

	if sq, chained := s.game.ChainSquare(); chained {
		return fmt.Sprintf("%s's move, continue capturing with %s", s.game.CurrentPlayer(), sq)
	}

	return fmt.Sprintf("%s's move", s.game.CurrentPlayer())
}

// String returns the position string of the game.
func (s *Session) String() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.game.String()
}
