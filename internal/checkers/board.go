package checkers

import (
	"fmt"
	"strings"
)

const (
	// playableSquares is the number of dark squares on the board.
	playableSquares = SquareCount / 2

	// startRows is the number of rows each side fills in the starting position.
	startRows = 3
)

// Board is an 8x8 grid of pieces stored as a flat array.
type Board struct {
	squares [SquareCount]Piece
}

// NewBoardStart creates a board with the standard starting layout.
// Black men fill the dark squares of rows 0-2, White men those of rows 5-7.
func NewBoardStart() Board {
	var b Board

	for index := 0; index < SquareCount; index++ {
		sq := SquareFromIndex(index)
		if !sq.IsPlayable() {
			continue
		}

		switch {
		case sq.Row < startRows:
			b.squares[index] = BlackMan
		case sq.Row >= BoardSize-startRows:
			b.squares[index] = WhiteMan
		}
	}

	return b
}

// NewBoardEmpty creates a board without any pieces.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromString creates a board from a position string: one character per dark square
// in row-major order, using 'w', 'b', 'W', 'B' and '.' for empty.
func NewBoardFromString(s string) (Board, error) {
	runes := []rune(s)
	if len(runes) != playableSquares {
		return Board{}, fmt.Errorf("board string must be %d characters long, got %d", playableSquares, len(runes))
	}

	var b Board
	i := 0
	for index := 0; index < SquareCount; index++ {
		sq := SquareFromIndex(index)
		if !sq.IsPlayable() {
			continue
		}

		piece, err := pieceFromRune(runes[i])
		if err != nil {
			return Board{}, fmt.Errorf("square %s: %w", sq, err)
		}

		b.squares[index] = piece
		i++
	}

	return b, nil
}

// NewBoardFromStringMust works like NewBoardFromString but panics on invalid input.
func NewBoardFromStringMust(s string) Board {
	b, err := NewBoardFromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// mustInBounds panics if the square is off the board. Out-of-range access is a programming error.
func mustInBounds(sq Square) {
	if !sq.InBounds() {
		panic(fmt.Sprintf("square %s is out of bounds", sq))
	}
}

// PieceAt returns the piece on the given square.
func (b Board) PieceAt(sq Square) Piece {
	mustInBounds(sq)
	return b.squares[sq.Index()]
}

// SetPiece puts a piece on the given square, replacing whatever was there.
func (b *Board) SetPiece(sq Square, piece Piece) {
	mustInBounds(sq)
	b.squares[sq.Index()] = piece
}

// Count returns the number of pieces, men and kings, owned by player.
func (b Board) Count(player Player) int {
	count := 0
	for _, piece := range b.squares {
		if piece != Empty && piece.Owner() == player {
			count++
		}
	}
	return count
}

// Pieces returns the squares occupied by pieces of player, in row-major order.
func (b Board) Pieces(player Player) []Square {
	squares := make([]Square, 0, b.Count(player))
	for index, piece := range b.squares {
		if piece != Empty && piece.Owner() == player {
			squares = append(squares, SquareFromIndex(index))
		}
	}
	return squares
}

// ASCIIArtLines returns the ascii art lines for the board.
// Row 0 is printed first, ranks are labelled the way ParseSquare reads them.
func (b Board) ASCIIArtLines() []string {
	lines := make([]string, BoardSize+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := 0; row < BoardSize; row++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d ", BoardSize-row)

		for col := 0; col < BoardSize; col++ {
			sq := Square{Row: row, Col: col}
			piece := b.squares[sq.Index()]

			switch {
			case piece != Empty:
				sb.WriteRune(piece.Rune())
			case sq.IsPlayable():
				sb.WriteRune('.')
			default:
				sb.WriteRune(' ')
			}
			sb.WriteRune(' ')
		}

		lines[row+1] = sb.String() + "|"
	}
	lines[BoardSize+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print() {
	for _, line := range b.ASCIIArtLines() {
		fmt.Println(line)
	}
}

// String returns the position string of the board, see NewBoardFromString.
func (b Board) String() string {
	var sb strings.Builder
	for index, piece := range b.squares {
		if SquareFromIndex(index).IsPlayable() {
			sb.WriteRune(piece.Rune())
		}
	}
	return sb.String()
}
