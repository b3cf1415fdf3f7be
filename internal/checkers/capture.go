package checkers

// Jump is a short capture: the piece on From jumps over the opposing piece on Over and lands on To.
type Jump struct {
	From Square
	Over Square
	To   Square
}

// jumpInDirection checks whether the piece on from can capture an adjacent opposing piece in
// direction dir. Men are not restricted to their forward direction when capturing.
func (b Board) jumpInDirection(from Square, dir Direction) (Jump, bool) {
	owner := b.PieceAt(from).Owner()
	if owner == NoPlayer {
		return Jump{}, false
	}

	over := from.Step(dir)
	to := over.Step(dir)
	if !to.InBounds() {
		return Jump{}, false
	}

	if !b.PieceAt(over).IsOpponentOf(owner) || b.PieceAt(to) != Empty {
		return Jump{}, false
	}

	return Jump{From: from, Over: over, To: to}, true
}

// CapturesFrom returns the jumps available to the piece on sq, in the order of Diagonals.
func (b Board) CapturesFrom(sq Square) []Jump {
	var jumps []Jump
	for _, dir := range Diagonals {
		if jump, ok := b.jumpInDirection(sq, dir); ok {
			jumps = append(jumps, jump)
		}
	}
	return jumps
}

// CanCaptureFrom checks if the piece on sq has at least one jump.
func (b Board) CanCaptureFrom(sq Square) bool {
	for _, dir := range Diagonals {
		if _, ok := b.jumpInDirection(sq, dir); ok {
			return true
		}
	}
	return false
}

// HasCaptureAvailable checks if any piece of player can capture. This drives mandatory capture.
func (b Board) HasCaptureAvailable(player Player) bool {
	for index, piece := range b.squares {
		if piece == Empty || piece.Owner() != player {
			continue
		}

		if b.CanCaptureFrom(SquareFromIndex(index)) {
			return true
		}
	}
	return false
}
