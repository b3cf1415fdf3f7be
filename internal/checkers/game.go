package checkers

import "fmt"

// Game holds the board and turn state of a single game of checkers.
type Game struct {
	// board is mutated only by Apply and Reset
	board Board

	// turn is the side to move, never NoPlayer
	turn Player

	// winner is NoPlayer while the game is in progress
	winner Player

	// chained is set while the side to move has to continue a capture from chainSquare
	chained     bool
	chainSquare Square
}

// NewGame creates a game with the starting layout and White to move.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// NewGameFromString creates a game from a position string (see NewBoardFromString),
// optionally followed by "-w" or "-b" for the side to move. White moves by default.
func NewGameFromString(s string) (*Game, error) {
	turn := White

	if len(s) == playableSquares+2 {
		switch s[playableSquares:] {
		case "-w":
			turn = White
		case "-b":
			turn = Black
		default:
			return nil, fmt.Errorf("invalid turn: %s", s[playableSquares:])
		}
		s = s[:playableSquares]
	}

	board, err := NewBoardFromString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	g := &Game{
		board: board,
		turn:  turn,
	}

	if over, winner := g.IsGameOver(); over {
		g.winner = winner
	}

	return g, nil
}

// NewGameFromStringMust works like NewGameFromString but panics on invalid input.
func NewGameFromStringMust(s string) *Game {
	g, err := NewGameFromString(s)
	if err != nil {
		panic(err)
	}
	return g
}

// Reset restores the starting layout with White to move and no winner.
func (g *Game) Reset() {
	g.board = NewBoardStart()
	g.turn = White
	g.winner = NoPlayer
	g.chained = false
	g.chainSquare = Square{}
}

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() Player {
	return g.turn
}

// WinningPlayer returns the winner, or NoPlayer while the game is in progress.
func (g *Game) WinningPlayer() Player {
	return g.winner
}

// IsGameOver counts the pieces of both sides. A side without pieces has lost.
func (g *Game) IsGameOver() (bool, Player) {
	switch {
	case g.board.Count(White) == 0:
		return true, Black
	case g.board.Count(Black) == 0:
		return true, White
	default:
		return false, NoPlayer
	}
}

// PieceAt returns the piece on the given square.
func (g *Game) PieceAt(sq Square) Piece {
	return g.board.PieceAt(sq)
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.board
}

// ChainSquare returns the square of the piece that must continue capturing, if any.
func (g *Game) ChainSquare() (Square, bool) {
	return g.chainSquare, g.chained
}

// IsOccupiedByMovablePiece checks if the piece on sq may be selected by the side to move.
func (g *Game) IsOccupiedByMovablePiece(sq Square) bool {
	if !sq.InBounds() || g.winner != NoPlayer {
		return false
	}

	if g.chained && sq != g.chainSquare {
		return false
	}

	piece := g.board.PieceAt(sq)
	return piece != Empty && piece.Owner() == g.turn
}

// String returns the position string of the game including the side to move.
func (g *Game) String() string {
	if g.turn == Black {
		return g.board.String() + "-b"
	}
	return g.board.String() + "-w"
}
