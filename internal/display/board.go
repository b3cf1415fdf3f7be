package display

import (
	"strings"

	"github.com/lk16/checkers/internal/checkers"
)

// RenderBoard renders the ASCII art of a board. White pieces are blue, Black pieces red,
// file letters and rank numbers cyan and the selected square, if any, is highlighted.
func RenderBoard(board checkers.Board, selected *checkers.Square, color bool) string {
	lines := board.ASCIIArtLines()
	if !color {
		return strings.Join(lines, "\n") + "\n"
	}

	var sb strings.Builder
	for i, line := range lines {
		isFileLine := i == 0 || i == len(lines)-1
		row := i - 1

		for j, char := range line {
			switch {
			case isFileLine && char >= 'a' && char <= 'h':
				sb.WriteString(Cyan + string(char) + Reset)
			case !isFileLine && j == 0:
				sb.WriteString(Cyan + string(char) + Reset)
			case char == 'w' || char == 'W':
				sb.WriteString(highlight(Blue, row, j, selected) + string(char) + Reset)
			case char == 'b' || char == 'B':
				sb.WriteString(highlight(Red, row, j, selected) + string(char) + Reset)
			default:
				sb.WriteRune(char)
			}
		}
		sb.WriteRune('\n')
	}

	return sb.String()
}

// highlight returns the color code for a piece at character offset j of board row row.
func highlight(code string, row, j int, selected *checkers.Square) string {
	if selected == nil {
		return code
	}

	// Pieces start at offset 2 and are separated by a space.
	if selected.Row == row && selected.Col == (j-2)/2 {
		return Green
	}
	return code
}

// ColorForPlayer returns the colored name of a player.
func ColorForPlayer(player checkers.Player, color bool) string {
	switch player {
	case checkers.White:
		return Colorize(player.String(), Blue, color)
	case checkers.Black:
		return Colorize(player.String(), Red, color)
	default:
		return player.String()
	}
}
