package cli

import (
	"errors"
	"fmt"

	"github.com/lk16/checkers/internal/checkers"
	"github.com/lk16/checkers/internal/config"
	"github.com/lk16/checkers/internal/display"
	"github.com/lk16/checkers/internal/session"
)

// ErrNotSelectable is returned when a click selects neither a movable piece nor a move target.
var ErrNotSelectable = errors.New("no movable piece")

type moveArgs struct {
	From string `validate:"len=2"`
	To   string `validate:"len=2"`
}

type clickArgs struct {
	Square string `validate:"len=2"`
}

func (r *Registry) registerGameCommands() {
	r.Register(&Command{
		Name:        "show",
		ShortName:   "s",
		Description: "Show the board and whose move it is",
		Usage:       "show",
		Handler:     showHandler,
	})

	r.Register(&Command{
		Name:        "move",
		ShortName:   "m",
		Description: "Move a piece",
		Usage:       "move <from> <to>",
		Handler:     moveHandler,
	})

	r.Register(&Command{
		Name:        "click",
		ShortName:   "c",
		Description: "Select a piece, or move the selected piece",
		Usage:       "click <square>",
		Handler:     clickHandler,
	})

	r.Register(&Command{
		Name:        "moves",
		Description: "List the legal moves",
		Usage:       "moves",
		Handler:     movesHandler,
	})

	r.Register(&Command{
		Name:        "status",
		Description: "Show whose move it is or who won",
		Usage:       "status",
		Handler:     statusHandler,
	})

	r.Register(&Command{
		Name:        "reset",
		Description: "Restart the current game",
		Usage:       "reset",
		Handler:     resetHandler,
	})

	r.Register(&Command{
		Name:        "new",
		Description: "Start another game and switch to it",
		Usage:       "new",
		Handler:     newHandler,
	})

	r.Register(&Command{
		Name:        "games",
		Description: "List all games",
		Usage:       "games",
		Handler:     gamesHandler,
	})

	r.Register(&Command{
		Name:        "switch",
		Description: "Switch to another game",
		Usage:       "switch <game-id-prefix>",
		Handler:     switchHandler,
	})
}

func showHandler(r *Registry, _ []string) error {
	board := r.current.Board()

	var selected *checkers.Square
	if sq, ok := r.current.Selected(); ok {
		selected = &sq
	}

	r.printf("%s", display.RenderBoard(board, selected, r.color))
	r.printStatus()
	return nil
}

func moveHandler(r *Registry, args []string) error {
	if len(args) != 2 {
		return r.usageError("move")
	}

	if err := config.Validate(&moveArgs{From: args[0], To: args[1]}); err != nil {
		return err
	}

	from, err := checkers.ParseSquare(args[0])
	if err != nil {
		return err
	}

	to, err := checkers.ParseSquare(args[1])
	if err != nil {
		return err
	}

	result, err := r.current.Move(from, to)
	if err != nil {
		return err
	}

	r.printResult(result)
	return nil
}

func clickHandler(r *Registry, args []string) error {
	if len(args) != 1 {
		return r.usageError("click")
	}

	if err := config.Validate(&clickArgs{Square: args[0]}); err != nil {
		return err
	}

	sq, err := checkers.ParseSquare(args[0])
	if err != nil {
		return err
	}

	from, _ := r.current.Selected()
	click := r.current.Click(sq)

	switch click.Outcome {
	case session.ClickSelected:
		r.printf("Selected %s\n", sq)
	case session.ClickMoved:
		r.printResult(*click.Result)
	case session.ClickRejected:
		return fmt.Errorf("%w: %s-%s, selection cleared", checkers.ErrIllegalMove, from, sq)
	default:
		return fmt.Errorf("%w on %s", ErrNotSelectable, sq)
	}

	return nil
}

func movesHandler(r *Registry, _ []string) error {
	moves := r.current.LegalMoves()
	if len(moves) == 0 {
		r.printf("No legal moves\n")
		return nil
	}

	for i, move := range moves {
		if i > 0 {
			r.printf(" ")
		}
		r.printf("%s", move)
	}
	r.printf("\n")
	return nil
}

func statusHandler(r *Registry, _ []string) error {
	r.printStatus()
	return nil
}

func resetHandler(r *Registry, _ []string) error {
	r.current.Reset()
	r.printf("Game reset\n")
	r.printStatus()
	return nil
}

func newHandler(r *Registry, _ []string) error {
	r.current = r.manager.Create()
	r.printf("Created game %s\n", r.current.ID)
	return nil
}

func gamesHandler(r *Registry, _ []string) error {
	for _, id := range r.manager.List() {
		s, err := r.manager.Get(id)
		if err != nil {
			return err
		}

		marker := " "
		if s == r.current {
			marker = "*"
		}
		r.printf("%s %s %s\n", marker, id, s.Status())
	}
	return nil
}

func switchHandler(r *Registry, args []string) error {
	if len(args) != 1 {
		return r.usageError("switch")
	}

	s, err := r.manager.Find(args[0])
	if err != nil {
		return err
	}

	r.current = s
	r.printf("Switched to game %s\n", s.ID)
	r.printStatus()
	return nil
}

func (r *Registry) printResult(result checkers.MoveResult) {
	mover := result.Piece.Owner()
	r.printf("%s played %s\n", display.ColorForPlayer(mover, r.color), result.Move)

	if result.Promoted {
		r.printf("%s is crowned\n", result.Move.To)
	}

	r.printStatus()
}

func (r *Registry) printStatus() {
	status := r.current.Status()
	if winner := r.current.WinningPlayer(); winner != checkers.NoPlayer {
		status = display.Colorize(status, display.Green, r.color)
	}
	r.printf("%s\n", status)
}
