package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lk16/checkers/internal/display"
	"github.com/lk16/checkers/internal/session"
)

// ErrUsage is returned when a command gets the wrong number of arguments.
var ErrUsage = errors.New("usage")

// Command defines a command with its handler
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     func(*Registry, []string) error
}

// Registry parses text commands and runs them against the current game.
type Registry struct {
	manager  *session.Manager
	current  *session.Session
	out      io.Writer
	color    bool
	commands map[string]*Command

	// order contains the commands in registration order, used by help
	order []*Command

	done bool
}

// NewRegistry creates a registry writing to out. The most recently created game of manager becomes
// the current game. If manager has no games, one is created.
func NewRegistry(manager *session.Manager, out io.Writer, color bool) *Registry {
	r := &Registry{
		manager:  manager,
		out:      out,
		color:    color,
		commands: make(map[string]*Command),
	}

	if ids := manager.List(); len(ids) > 0 {
		current, err := manager.Get(ids[len(ids)-1])
		if err != nil {
			panic(err)
		}
		r.current = current
	} else {
		r.current = manager.Create()
	}

	r.registerGameCommands()

	r.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Description: "Show available commands",
		Usage:       "help [command]",
		Handler:     helpHandler,
	})

	r.Register(&Command{
		Name:        "exit",
		ShortName:   "x",
		Description: "Exit the client",
		Usage:       "exit",
		Handler:     exitHandler,
	})

	return r
}

// Register adds a command under its name and short name.
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		r.commands[cmd.ShortName] = cmd
	}
	r.order = append(r.order, cmd)
}

// Execute runs one line of input. Errors are printed, not returned.
func (r *Registry) Execute(input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	cmd, exists := r.commands[cmdName]
	if !exists {
		r.printf("%s\n", display.Colorize("Unknown command: "+cmdName, display.Red, r.color))
		r.printf("Type 'help' for available commands\n")
		return
	}

	slog.Debug("executing command", "command", cmd.Name, "args", args, "game", r.current.ID.String())

	if err := cmd.Handler(r, args); err != nil {
		r.printf("%s\n", display.Colorize("Error: "+err.Error(), display.Red, r.color))
	}
}

// Current returns the game commands operate on.
func (r *Registry) Current() *session.Session {
	return r.current
}

// Done reports whether the exit command was given.
func (r *Registry) Done() bool {
	return r.done
}

func (r *Registry) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func (r *Registry) usageError(name string) error {
	return fmt.Errorf("%w: %s", ErrUsage, r.commands[name].Usage)
}

func helpHandler(r *Registry, args []string) error {
	if len(args) > 0 {
		cmd, exists := r.commands[strings.ToLower(args[0])]
		if !exists {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		r.printf("%s - %s\n", display.Colorize(cmd.Name, display.Cyan, r.color), cmd.Description)
		if cmd.ShortName != "" {
			r.printf("Short form: %s\n", display.Colorize(cmd.ShortName, display.Cyan, r.color))
		}
		r.printf("Usage: %s\n", cmd.Usage)
		return nil
	}

	r.printf("%s\n", display.Colorize("Available Commands:", display.Yellow, r.color))
	for _, cmd := range r.order {
		shortPart := "    "
		if cmd.ShortName != "" {
			shortPart = "[" + display.Colorize(cmd.ShortName, display.Cyan, r.color) + "] "
		}
		r.printf("  %s%-8s %s\n", shortPart, cmd.Name, cmd.Description)
	}
	r.printf("\nType 'help <command>' for detailed usage\n")
	return nil
}

func exitHandler(r *Registry, _ []string) error {
	r.printf("%s\n", display.Colorize("Goodbye!", display.Cyan, r.color))
	r.done = true
	return nil
}
