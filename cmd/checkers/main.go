package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lk16/checkers/internal/checkers"
	"github.com/lk16/checkers/internal/cli"
	"github.com/lk16/checkers/internal/config"
	"github.com/lk16/checkers/internal/display"
	"github.com/lk16/checkers/internal/session"
)

func main() {
	config.SetLogLevel()

	cfg, err := config.LoadPlayConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	color := display.UseColor(cfg.Color, int(os.Stdout.Fd()))

	manager := session.NewManager()
	if cfg.Position != "" {
		s, err := session.NewFromString(cfg.Position)
		if err != nil {
			slog.Error("Failed to load position", "error", err)
			os.Exit(1)
		}
		manager.Add(s)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt(cfg.Prompt, color),
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		slog.Error("Failed to initialize readline", "error", err)
		os.Exit(1)
	}
	defer rl.Close()

	registry := cli.NewRegistry(manager, rl.Stdout(), color)

	fmt.Fprintf(rl.Stdout(), "%s\n", display.Colorize("Checkers", display.Cyan, color))
	fmt.Fprintf(rl.Stdout(), "Type 'help' for commands\n\n")
	registry.Execute("show")

	for !registry.Done() {
		rl.SetPrompt(buildPrompt(cfg.Prompt, registry.Current(), color))

		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		registry.Execute(line)
	}
}

// buildPrompt shows the short game ID and the side to move.
func buildPrompt(base string, s *session.Session, color bool) string {
	id := s.ID.String()[:8]
	player := display.ColorForPlayer(s.CurrentPlayer(), color)

	if s.WinningPlayer() != checkers.NoPlayer {
		player = display.Colorize("game over", display.Green, color)
	}

	return display.Prompt(fmt.Sprintf("%s [%s %s]", base, id, player), color)
}
