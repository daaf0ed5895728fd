package config

import (
	"errors"
	"fmt"
	"slices"
)

const (
	DefaultWindowDays = 7
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
	DefaultPrompt     = "Enter a command: "
	DefaultGreeting   = "Welcome to the assistant bot!"
)

var (
	// LogLevels lists the accepted log levels.
	LogLevels = []string{"debug", "info", "warn", "error"}
	// LogFormats lists the accepted log formats.
	LogFormats = []string{"text", "json"}
)

// Settings is the resolved application configuration.
type Settings struct {
	WindowDays int
	LogLevel   string
	LogFormat  string
	Prompt     string
	Greeting   string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		WindowDays: DefaultWindowDays,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
		Prompt:     DefaultPrompt,
		Greeting:   DefaultGreeting,
	}
}

// Validate reports every invalid field.
func (s Settings) Validate() error {
	var errs []error
	if s.WindowDays < 0 {
		errs = append(errs, fmt.Errorf("window_days must not be negative, got %d", s.WindowDays))
	}
	if !slices.Contains(LogLevels, s.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid log_level %q: must be one of %v", s.LogLevel, LogLevels))
	}
	if !slices.Contains(LogFormats, s.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid log_format %q: must be one of %v", s.LogFormat, LogFormats))
	}
	return errors.Join(errs...)
}
