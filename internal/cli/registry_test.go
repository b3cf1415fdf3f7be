package cli

import (
	"bytes"
	"testing"

	"github.com/lk16/checkers/internal/session"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() (*Registry, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewRegistry(session.NewManager(), out, false), out
}

// run executes a command and returns what it printed.
func run(r *Registry, out *bytes.Buffer, input string) string {
	out.Reset()
	r.Execute(input)
	return out.String()
}

func TestNewRegistry(t *testing.T) {
	manager := session.NewManager()
	r := NewRegistry(manager, &bytes.Buffer{}, false)
	require.Equal(t, 1, manager.Len())
	require.NotNil(t, r.Current())

	existing := manager.Create()
	r = NewRegistry(manager, &bytes.Buffer{}, false)
	require.Same(t, existing, r.Current())
	require.Equal(t, 2, manager.Len())
}

func TestRegistry_UnknownCommand(t *testing.T) {
	r, out := newTestRegistry()

	output := run(r, out, "jump a3")
	require.Contains(t, output, "Unknown command: jump")
	require.Contains(t, output, "Type 'help' for available commands")

	require.Empty(t, run(r, out, "   "))
}

func TestRegistry_Help(t *testing.T) {
	r, out := newTestRegistry()

	output := run(r, out, "help")
	for _, name := range []string{"show", "move", "click", "moves", "status", "reset", "new", "games", "switch", "help", "exit"} {
		require.Contains(t, output, name)
	}

	output = run(r, out, "? m")
	require.Contains(t, output, "move - Move a piece")
	require.Contains(t, output, "Short form: m")
	require.Contains(t, output, "Usage: move <from> <to>")

	output = run(r, out, "help fly")
	require.Contains(t, output, "Error: unknown command: fly")
}

func TestRegistry_Exit(t *testing.T) {
	r, out := newTestRegistry()
	require.False(t, r.Done())

	require.Equal(t, "Goodbye!\n", run(r, out, "x"))
	require.True(t, r.Done())
}
