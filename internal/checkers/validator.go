package checkers

// Move is a legal move together with the squares of the opposing pieces it removes.
type Move struct {
	From     Square
	To       Square
	Captured []Square
}

// IsCapture checks if the move removes at least one opposing piece.
func (m Move) IsCapture() bool {
	return len(m.Captured) > 0
}

func (m Move) String() string {
	if m.IsCapture() {
		return m.From.String() + "x" + m.To.String()
	}
	return m.From.String() + "-" + m.To.String()
}

// IsLegal checks if the side to move may move the piece on from to the square to.
func (g *Game) IsLegal(from, to Square) bool {
	_, ok := g.Validate(from, to)
	return ok
}

// Validate checks a proposed move. If it is legal, the returned Move lists the captured squares.
func (g *Game) Validate(from, to Square) (Move, bool) {
	if g.winner != NoPlayer {
		return Move{}, false
	}

	if !from.InBounds() || !to.InBounds() || g.board.PieceAt(to) != Empty {
		return Move{}, false
	}

	piece := g.board.PieceAt(from)
	if piece == Empty || piece.Owner() != g.turn {
		return Move{}, false
	}

	// A pending capture chain must be continued by the same piece.
	if g.chained && from != g.chainSquare {
		return Move{}, false
	}

	dir, steps, ok := DirectionTo(from, to)
	if !ok {
		return Move{}, false
	}

	var move Move
	switch piece {
	case WhiteMan, BlackMan:
		move, ok = g.validateMan(from, to, dir, steps)
	case WhiteKing, BlackKing:
		move, ok = g.validateKing(from, to, dir)
	default:
		return Move{}, false
	}

	if !ok || (g.chained && !move.IsCapture()) {
		return Move{}, false
	}

	return move, true
}

// validateMan handles men: a jump over an adjacent opposing piece in any direction, or a single
// forward step when no capture is available anywhere on the board.
func (g *Game) validateMan(from, to Square, dir Direction, steps int) (Move, bool) {
	switch steps {
	case 2:
		over := from.Step(dir)
		if !g.board.PieceAt(over).IsOpponentOf(g.turn) {
			return Move{}, false
		}
		return Move{From: from, To: to, Captured: []Square{over}}, true
	case 1:
		if dir.DRow != g.turn.Forward() || g.board.HasCaptureAvailable(g.turn) {
			return Move{}, false
		}
		return Move{From: from, To: to}, true
	default:
		return Move{}, false
	}
}

// validateKing walks the ray from the king towards to. Empty squares are passed freely, own
// pieces block, an opposing piece is jumped when the square behind it is empty. A capturing
// king must land right behind the last piece it jumps; a non-capturing king may only glide
// when its side has no capture available.
func (g *Game) validateKing(from, to Square, dir Direction) (Move, bool) {
	var captured []Square
	legal := false
	justJumped := false

	walk(from, dir, func(sq Square) bool {
		if sq == to {
			legal = len(captured) == 0 || justJumped
			return false
		}

		piece := g.board.PieceAt(sq)
		switch {
		case piece == Empty:
			justJumped = false
			return true
		case piece.IsOpponentOf(g.turn):
			beyond := sq.Step(dir)
			if !beyond.InBounds() || g.board.PieceAt(beyond) != Empty {
				return false
			}
			captured = append(captured, sq)
			justJumped = true
			return true
		default:
			return false
		}
	})

	if !legal {
		return Move{}, false
	}

	if len(captured) == 0 && g.board.HasCaptureAvailable(g.turn) {
		return Move{}, false
	}

	return Move{From: from, To: to, Captured: captured}, true
}

// LegalMoves returns all legal moves for the side to move.
func (g *Game) LegalMoves() []Move {
	var moves []Move

	for _, from := range g.board.Pieces(g.turn) {
		for _, dir := range Diagonals {
			walk(from, dir, func(to Square) bool {
				if move, ok := g.Validate(from, to); ok {
					moves = append(moves, move)
				}
				return true
			})
		}
	}

	return moves
}
