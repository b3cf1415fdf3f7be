package checkers

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is returned when a move is rejected by the rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver is returned when a move is attempted after one side has won.
	ErrGameOver = errors.New("game is over")
)

// MoveResult describes the outcome of an applied move.
type MoveResult struct {
	// Move is the move that was applied, including the removed pieces.
	Move Move

	// Piece is the piece standing on Move.To after the move.
	Piece Piece

	// Promoted indicates the moving man was crowned.
	Promoted bool

	// Continue indicates the mover keeps the turn and must capture again with the same piece.
	Continue bool

	// NextPlayer is the side to move after this move.
	NextPlayer Player

	// Winner is set when the move removed the last opposing piece.
	Winner Player
}

// Apply performs a move that was validated with IsLegal. It panics if the move is not even
// structurally possible. Nothing else is checked, so applying an unvalidated move corrupts the game.
func (g *Game) Apply(from, to Square) MoveResult {
	mustInBounds(from)
	mustInBounds(to)

	piece := g.board.PieceAt(from)
	if piece == Empty {
		panic(fmt.Sprintf("apply %s-%s: no piece on %s", from, to, from))
	}

	if g.board.PieceAt(to) != Empty {
		panic(fmt.Sprintf("apply %s-%s: %s is occupied", from, to, to))
	}

	dir, _, ok := DirectionTo(from, to)
	if !ok {
		panic(fmt.Sprintf("apply %s-%s: not a diagonal move", from, to))
	}

	mover := piece.Owner()
	move := Move{
		From:     from,
		To:       to,
		Captured: g.capturedOnRay(from, to, dir, mover),
	}

	g.board.SetPiece(from, Empty)
	g.board.SetPiece(to, piece)

	for _, sq := range move.Captured {
		g.board.SetPiece(sq, Empty)
	}

	promoted := piece.IsMan() && to.Row == mover.BackRank()
	if promoted {
		piece = piece.Crowned()
		g.board.SetPiece(to, piece)
	}

	result := MoveResult{
		Move:     move,
		Piece:    piece,
		Promoted: promoted,
	}

	g.chained = false

	switch {
	case g.board.Count(mover.Opponent()) == 0:
		g.winner = mover
		g.turn = mover.Opponent()
	case move.IsCapture() && g.board.CanCaptureFrom(to):
		g.chained = true
		g.chainSquare = to
		g.turn = mover
		result.Continue = true
	default:
		g.turn = mover.Opponent()
	}

	result.NextPlayer = g.turn
	result.Winner = g.winner
	return result
}

// capturedOnRay returns the opposing pieces between from and to.
func (g *Game) capturedOnRay(from, to Square, dir Direction, mover Player) []Square {
	var captured []Square

	walk(from, dir, func(sq Square) bool {
		if sq == to {
			return false
		}
		if g.board.PieceAt(sq).IsOpponentOf(mover) {
			captured = append(captured, sq)
		}
		return true
	})

	return captured
}

// PlayMove validates a move and applies it.
func (g *Game) PlayMove(from, to Square) (MoveResult, error) {
	if g.winner != NoPlayer {
		return MoveResult{}, fmt.Errorf("%w: %s won", ErrGameOver, g.winner)
	}

	if !g.IsLegal(from, to) {
		return MoveResult{}, fmt.Errorf("%w: %s-%s", ErrIllegalMove, from, to)
	}

	return g.Apply(from, to), nil
}
