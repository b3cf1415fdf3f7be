package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel converts a level name such as "debug" or "WARN" to a slog level.
// An empty name means info.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", name)
	}
}

// SetLogLevel sets the log level for the application from the LOG_LEVEL environment variable.
func SetLogLevel() {
	level, err := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		slog.Error("Invalid log level", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
