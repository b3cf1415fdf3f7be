package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var validate = validator.New()

// PlayConfig holds the settings of the interactive terminal client.
type PlayConfig struct {
	// HistoryFile is where readline keeps the command history, empty disables history
	HistoryFile string `validate:"max=4096"`

	// Color decides whether the board is printed with terminal colors
	Color string `validate:"oneof=auto always never"`

	// Prompt is shown in front of every command line
	Prompt string `validate:"required,max=32"`

	// Position is an optional position string to start the first game from
	Position string `validate:"omitempty,min=32,max=34"`
}

// LoadPlayConfig loads the terminal client configuration from environment variables.
func LoadPlayConfig() (*PlayConfig, error) {
	cfg := &PlayConfig{
		HistoryFile: getEnvDefault("CHECKERS_HISTORY_FILE", ".checkers_history"),
		Color:       strings.ToLower(getEnvDefault("CHECKERS_COLOR", ColorAuto)),
		Prompt:      getEnvDefault("CHECKERS_PROMPT", "checkers"),
		Position:    os.Getenv("CHECKERS_POSITION"),
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks a struct against its validate tags and returns a readable error.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", fieldErr.Field()))
		case "oneof":
			details = append(details, fmt.Sprintf("%s must be one of [%s]", fieldErr.Field(), fieldErr.Param()))
		case "min":
			details = append(details, fmt.Sprintf("%s must be at least %s characters", fieldErr.Field(), fieldErr.Param()))
		case "max":
			details = append(details, fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param()))
		case "len":
			details = append(details, fmt.Sprintf("%s must be exactly %s characters", fieldErr.Field(), fieldErr.Param()))
		default:
			details = append(details, fmt.Sprintf("%s failed %s validation", fieldErr.Field(), fieldErr.Tag()))
		}
	}

	return errors.New(strings.Join(details, "; "))
}

// getEnvDefault returns the environment variable or fallback if it is not set.
func getEnvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
