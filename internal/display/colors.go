package display

import (
	"github.com/lk16/checkers/internal/config"
	"golang.org/x/term"
)

// Terminal color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// UseColor decides whether output to the file descriptor fd should be colored.
func UseColor(mode string, fd int) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(fd)
	}
}

// Prompt returns the prompt string.
func Prompt(text string, color bool) string {
	if !color {
		return text + " > "
	}
	return Yellow + text + " > " + Reset
}

// Colorize wraps text in a color code when color is enabled.
func Colorize(text, code string, color bool) string {
	if !color {
		return text
	}
	return code + text + Reset
}
