package checkers

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// BoardSize is the number of rows and columns of the board.
	BoardSize = 8

	// SquareCount is the number of squares on the board.
	SquareCount = BoardSize * BoardSize
)

// ErrInvalidSquare is returned when a square in field notation can't be parsed.
var ErrInvalidSquare = errors.New("invalid square")

// Square is a (row, col) pair. Row 0 is Black's back rank, row 7 is White's.
type Square struct {
	Row int
	Col int
}

// SquareFromIndex converts a flat board index (0-63) to a Square.
func SquareFromIndex(index int) Square {
	return Square{Row: index / BoardSize, Col: index % BoardSize}
}

// ParseSquare converts a field notation (e.g. "a1", "h8") to a Square.
// Files a-h map to columns 0-7, ranks 1-8 map to rows 7-0.
func ParseSquare(field string) (Square, error) {
	if len(field) != 2 {
		return Square{}, fmt.Errorf("%w: %q has length %d", ErrInvalidSquare, field, len(field))
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, field)
	}

	col := int(field[0] - 'a')
	row := BoardSize - 1 - int(field[1]-'1')
	return Square{Row: row, Col: col}, nil
}

// ParseSquareMust works like ParseSquare but panics on invalid input.
func ParseSquareMust(field string) Square {
	sq, err := ParseSquare(field)
	if err != nil {
		panic(err)
	}
	return sq
}

// InBounds checks if the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// IsPlayable checks if the square is a dark square, the only squares pieces ever occupy.
func (s Square) IsPlayable() bool {
	return s.InBounds() && (s.Row+s.Col)%2 != 0
}

// Index returns the flat board index of the square.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// Step returns the neighbouring square in direction d. The result may be off the board.
func (s Square) Step(d Direction) Square {
	return Square{Row: s.Row + d.DRow, Col: s.Col + d.DCol}
}

// String returns the field notation of the square, or a raw pair when it is off the board.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, BoardSize-s.Row)
}

// Direction is a unit step on the board.
type Direction struct {
	DRow int
	DCol int
}

// Diagonals contains the four diagonal directions.
var Diagonals = [4]Direction{
	{DRow: -1, DCol: -1},
	{DRow: -1, DCol: 1},
	{DRow: 1, DCol: -1},
	{DRow: 1, DCol: 1},
}

// DirectionTo returns the unit direction from one square to another and the number of steps
// needed to get there. It returns false if the squares are not on a common diagonal.
func DirectionTo(from, to Square) (Direction, int, bool) {
	dRow := to.Row - from.Row
	dCol := to.Col - from.Col

	if dRow == 0 || abs(dRow) != abs(dCol) {
		return Direction{}, 0, false
	}

	return Direction{DRow: sign(dRow), DCol: sign(dCol)}, abs(dRow), true
}

// walk visits the squares after from in direction dir, in order, until the board edge is
// reached or visit returns false.
func walk(from Square, dir Direction, visit func(sq Square) bool) {
	for sq := from.Step(dir); sq.InBounds(); sq = sq.Step(dir) {
		if !visit(sq) {
			return
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
