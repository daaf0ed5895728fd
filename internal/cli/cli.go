package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/contactbook/internal/app"
	"github.com/vk/contactbook/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags given explicitly win over the settings file and the environment.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("contactbook", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
contactbook - an interactive assistant for contacts and birthdays.

Usage:
  contactbook [options] [SETTINGS_PATH]

Arguments:
  SETTINGS_PATH
    Path to a .hcl settings file or a directory containing .hcl files.
    Cannot be combined with -config or -c.

Environment:
  CONTACTBOOK_WINDOW_DAYS, CONTACTBOOK_LOG_LEVEL, CONTACTBOOK_LOG_FORMAT,
  CONTACTBOOK_PROMPT, CONTACTBOOK_GREETING override the settings file.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the settings file or directory.")
	cFlag := flagSet.String("c", "", "Path to the settings file or directory (shorthand).")
	windowFlag := flagSet.Int("window", config.DefaultWindowDays, "Birthday lookahead window in days.")
	logFormatFlag := flagSet.String("log-format", config.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", config.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if (*configFlag != "" || *cFlag != "") && flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: "settings path given both as a flag and as an argument"}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}
	slog.Debug("Settings path determined.", "path", path)

	settings, err := config.Load(context.Background(), path)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if explicit["window"] {
		if *windowFlag < 0 {
			return nil, false, &ExitError{Code: 2, Message: "invalid window: must not be negative"}
		}
		settings.WindowDays = *windowFlag
	}
	if explicit["log-format"] {
		logFormat := strings.ToLower(*logFormatFlag)
		if logFormat != "text" && logFormat != "json" {
			return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
		}
		settings.LogFormat = logFormat
	}
	if explicit["log-level"] {
		logLevel := strings.ToLower(*logLevelFlag)
		switch logLevel {
		case "debug", "info", "warn", "error":
			// valid
		default:
			return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
		}
		settings.LogLevel = logLevel
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.ConfigFromSettings(path, settings))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
