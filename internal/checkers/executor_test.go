package checkers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// apply is shorthand for Apply with squares in field notation.
func apply(g *Game, from, to string) MoveResult {
	return g.Apply(ParseSquareMust(from), ParseSquareMust(to))
}

func TestApply_SimpleMove(t *testing.T) {
	g := NewGame()

	require.True(t, isLegal(g, "a3", "b4"))
	result := apply(g, "a3", "b4")

	require.Equal(t, Empty, g.PieceAt(ParseSquareMust("a3")))
	require.Equal(t, WhiteMan, g.PieceAt(ParseSquareMust("b4")))
	require.Equal(t, Black, g.CurrentPlayer())
	require.Equal(t, Black, result.NextPlayer)
	require.False(t, result.Continue)
	require.False(t, result.Promoted)
	require.False(t, result.Move.IsCapture())
	require.Equal(t, NoPlayer, result.Winner)
	require.Equal(t, "a3-b4", result.Move.String())
}

func TestApply_Capture(t *testing.T) {
	g := gameWith(Black, map[string]Piece{
		"c5": BlackMan,
		"d4": WhiteMan,
		"h2": WhiteMan,
	})

	whiteBefore := g.board.Count(White)
	blackBefore := g.board.Count(Black)

	result := apply(g, "c5", "e3")

	require.Equal(t, Empty, g.PieceAt(ParseSquareMust("d4")))
	require.Equal(t, BlackMan, g.PieceAt(ParseSquareMust("e3")))
	require.Equal(t, whiteBefore-1, g.board.Count(White))
	require.Equal(t, blackBefore, g.board.Count(Black))
	require.Equal(t, []Square{ParseSquareMust("d4")}, result.Move.Captured)
	require.False(t, result.Continue)
	require.Equal(t, White, g.CurrentPlayer())
}

func TestApply_ChainCapture(t *testing.T) {
	g := gameWith(White, map[string]Piece{
		"e3": WhiteMan,
		"a1": WhiteMan,
		"d4": BlackMan,
		"d6": BlackMan,
		"h8": BlackMan,
	})

	result := apply(g, "e3", "c5")
	require.True(t, result.Continue)
	require.Equal(t, White, result.NextPlayer)
	require.Equal(t, White, g.CurrentPlayer())

	chainSquare, chained := g.ChainSquare()
	require.True(t, chained)
	require.Equal(t, ParseSquareMust("c5"), chainSquare)

	// Only the capturing piece may move, and only by capturing again.
	require.False(t, g.IsOccupiedByMovablePiece(ParseSquareMust("a1")))
	require.True(t, g.IsOccupiedByMovablePiece(ParseSquareMust("c5")))
	require.False(t, isLegal(g, "a1", "b2"))
	require.False(t, isLegal(g, "c5", "b6"))
	require.True(t, isLegal(g, "c5", "e7"))

	result = apply(g, "c5", "e7")
	require.False(t, result.Continue)
	require.Equal(t, Black, g.CurrentPlayer())
	require.Equal(t, 1, g.board.Count(Black))

	_, chained = g.ChainSquare()
	require.False(t, chained)
}

func TestApply_PromotionWhite(t *testing.T) {
	g := gameWith(White, map[string]Piece{
		"c7": WhiteMan,
		"g5": BlackMan,
	})

	result := apply(g, "c7", "b8")
	require.True(t, result.Promoted)
	require.Equal(t, WhiteKing, result.Piece)
	require.Equal(t, WhiteKing, g.PieceAt(ParseSquareMust("b8")))
	require.Equal(t, Black, g.CurrentPlayer())
}

func TestApply_PromotionBlack(t *testing.T) {
	g := gameWith(Black, map[string]Piece{
		"d2": BlackMan,
		"b6": WhiteMan,
	})

	result := apply(g, "d2", "c1")
	require.True(t, result.Promoted)
	require.Equal(t, BlackKing, g.PieceAt(ParseSquareMust("c1")))
}

func TestApply_PromotionByCapture(t *testing.T) {
	g := gameWith(White, map[string]Piece{
		"b6": WhiteMan,
		"c7": BlackMan,
		"h4": BlackMan,
	})

	result := apply(g, "b6", "d8")
	require.True(t, result.Promoted)
	require.Equal(t, WhiteKing, g.PieceAt(ParseSquareMust("d8")))
	require.Equal(t, Empty, g.PieceAt(ParseSquareMust("c7")))
	require.False(t, result.Continue)
}

func TestApply_KingDoesNotPromoteAgain(t *testing.T) {
	g := gameWith(Black, map[string]Piece{
		"e3": BlackKing,
		"a7": WhiteMan,
	})

	result := apply(g, "e3", "d2")
	require.False(t, result.Promoted)
	require.Equal(t, BlackKing, g.PieceAt(ParseSquareMust("d2")))
}

func TestApply_KingLongCapture(t *testing.T) {
	g := gameWith(White, map[string]Piece{
		"a1": WhiteKing,
		"b2": BlackMan,
		"d4": BlackMan,
		"d8": BlackMan,
	})

	result := apply(g, "a1", "e5")
	require.Equal(t, []Square{ParseSquareMust("b2"), ParseSquareMust("d4")}, result.Move.Captured)
	require.Equal(t, Empty, g.PieceAt(ParseSquareMust("b2")))
	require.Equal(t, Empty, g.PieceAt(ParseSquareMust("d4")))
	require.Equal(t, WhiteKing, g.PieceAt(ParseSquareMust("e5")))
	require.Equal(t, 1, g.board.Count(Black))
	require.False(t, result.Continue)
	require.Equal(t, Black, g.CurrentPlayer())
}

func TestApply_KingContinuationInAnyDirection(t *testing.T) {
	// After a1xc3 the king can continue over d2, which is not on the row of the first jump.
	g := gameWith(White, map[string]Piece{
		"a1": WhiteKing,
		"b2": BlackMan,
		"d2": BlackMan,
		"h8": BlackMan,
	})

	result := apply(g, "a1", "c3")
	require.True(t, result.Continue)
	require.Equal(t, White, g.CurrentPlayer())
	require.True(t, isLegal(g, "c3", "e1"))

	result = apply(g, "c3", "e1")
	require.False(t, result.Continue)
	require.Equal(t, Black, g.CurrentPlayer())
}

func TestApply_Win(t *testing.T) {
	g := gameWith(White, map[string]Piece{
		"c5": WhiteMan,
		"d6": BlackMan,
	})

	result := apply(g, "c5", "e7")
	require.Equal(t, White, result.Winner)
	require.Equal(t, White, g.WinningPlayer())

	over, winner := g.IsGameOver()
	require.True(t, over)
	require.Equal(t, White, winner)

	require.Empty(t, g.LegalMoves())

	_, err := g.PlayMove(ParseSquareMust("e7"), ParseSquareMust("d8"))
	require.ErrorIs(t, err, ErrGameOver)
}

func TestApply_BlackWins(t *testing.T) {
	g := gameWith(Black, map[string]Piece{
		"c5": BlackMan,
		"d4": WhiteMan,
	})

	apply(g, "c5", "e3")

	over, winner := g.IsGameOver()
	require.True(t, over)
	require.Equal(t, Black, winner)
	require.Equal(t, Black, g.WinningPlayer())
}

func TestApply_ContractViolations(t *testing.T) {
	g := NewGame()

	require.Panics(t, func() { apply(g, "a5", "b4") })
	require.Panics(t, func() { apply(g, "b2", "c3") })
	require.Panics(t, func() { apply(g, "a3", "a4") })
	require.Panics(t, func() { g.Apply(Square{Row: 8, Col: 1}, ParseSquareMust("b4")) })

	// nothing was changed by the rejected calls
	require.Equal(t, NewBoardStart(), g.Board())
	require.Equal(t, White, g.CurrentPlayer())
}

func TestPlayMove(t *testing.T) {
	g := NewGame()

	_, err := g.PlayMove(ParseSquareMust("a3"), ParseSquareMust("a4"))
	require.ErrorIs(t, err, ErrIllegalMove)
	require.Equal(t, White, g.CurrentPlayer())

	result, err := g.PlayMove(ParseSquareMust("a3"), ParseSquareMust("b4"))
	require.NoError(t, err)
	require.Equal(t, Black, result.NextPlayer)
}

// TestSelfPlay keeps playing a legal move until the game ends and checks the rules held after every move.
func TestSelfPlay(t *testing.T) {
	g := NewGame()

	for iter := 0; iter < 500; iter++ {
		moves := g.LegalMoves()
		if len(moves) == 0 {
			break
		}

		mover := g.CurrentPlayer()
		opponent := mover.Opponent()

		if g.board.HasCaptureAvailable(mover) {
			for _, move := range moves {
				require.True(t, move.IsCapture(), move.String())
			}
		}

		if chainSquare, chained := g.ChainSquare(); chained {
			for _, move := range moves {
				require.Equal(t, chainSquare, move.From)
				require.True(t, move.IsCapture())
			}
		}

		move := moves[len(moves)/2]
		opponentBefore := g.board.Count(opponent)
		moverBefore := g.board.Count(mover)

		result := g.Apply(move.From, move.To)

		require.Equal(t, move.Captured, result.Move.Captured)
		require.Equal(t, opponentBefore-len(move.Captured), g.board.Count(opponent))
		require.Equal(t, moverBefore, g.board.Count(mover))

		for _, sq := range move.Captured {
			require.Equal(t, Empty, g.PieceAt(sq))
		}

		if move.To.Row == mover.BackRank() {
			require.True(t, g.PieceAt(move.To).IsKing())
		}

		if result.Winner != NoPlayer {
			require.Equal(t, mover, result.Winner)
			break
		}

		if result.Continue {
			require.Equal(t, mover, g.CurrentPlayer())
		} else {
			require.Equal(t, opponent, g.CurrentPlayer())
		}

		require.LessOrEqual(t, g.board.Count(White)+g.board.Count(Black), 24)
	}
}
