package checkers

import "fmt"

// Player is one of the two sides. NoPlayer is used when there is no winner yet.
type Player uint8

const (
	NoPlayer Player = iota
	White
	Black
)

// Opponent returns the other side. The opponent of NoPlayer is NoPlayer.
func (p Player) Opponent() Player {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoPlayer
	}
}

// Forward returns the row delta of a non-capturing move for a man of this player.
func (p Player) Forward() int {
	switch p {
	case White:
		return -1
	case Black:
		return 1
	default:
		panic(fmt.Sprintf("player %d has no forward direction", p))
	}
}

// BackRank returns the row on which a man of this player gets promoted.
func (p Player) BackRank() int {
	switch p {
	case White:
		return 0
	case Black:
		return BoardSize - 1
	default:
		panic(fmt.Sprintf("player %d has no back rank", p))
	}
}

func (p Player) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Empty"
	}
}

// Piece is the content of a single square.
type Piece uint8

const (
	Empty Piece = iota
	WhiteMan
	BlackMan
	WhiteKing
	BlackKing
)

// Owner returns the player owning the piece, NoPlayer for an empty square.
func (p Piece) Owner() Player {
	switch p {
	case WhiteMan, WhiteKing:
		return White
	case BlackMan, BlackKing:
		return Black
	default:
		return NoPlayer
	}
}

// IsKing checks if the piece is crowned.
func (p Piece) IsKing() bool {
	return p == WhiteKing || p == BlackKing
}

// IsMan checks if the piece is a non-crowned piece.
func (p Piece) IsMan() bool {
	return p == WhiteMan || p == BlackMan
}

// Crowned returns the king variant of a man. Kings and empty squares are returned unchanged.
func (p Piece) Crowned() Piece {
	switch p {
	case WhiteMan:
		return WhiteKing
	case BlackMan:
		return BlackKing
	default:
		return p
	}
}

// IsOpponentOf checks if the piece belongs to the opponent of player.
func (p Piece) IsOpponentOf(player Player) bool {
	owner := p.Owner()
	return owner != NoPlayer && owner == player.Opponent()
}

// Rune returns the character used for the piece in position strings.
func (p Piece) Rune() rune {
	switch p {
	case WhiteMan:
		return 'w'
	case BlackMan:
		return 'b'
	case WhiteKing:
		return 'W'
	case BlackKing:
		return 'B'
	default:
		return '.'
	}
}

// pieceFromRune is the inverse of Rune.
func pieceFromRune(r rune) (Piece, error) {
	switch r {
	case 'w':
		return WhiteMan, nil
	case 'b':
		return BlackMan, nil
	case 'W':
		return WhiteKing, nil
	case 'B':
		return BlackKing, nil
	case '.':
		return Empty, nil
	default:
		return Empty, fmt.Errorf("invalid piece character %q", r)
	}
}

func (p Piece) String() string {
	switch p {
	case WhiteMan:
		return "White"
	case BlackMan:
		return "Black"
	case WhiteKing:
		return "WhiteKing"
	case BlackKing:
		return "BlackKing"
	default:
		return "Empty"
	}
}
