package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// StdinPath is the INPUT argument that selects standard input.
const StdinPath = "-"

// ExitError is an error that carries the exit code the process should use.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command line.
type Config struct {
	InputPath  string // valve report, or StdinPath
	ConfigPath string // scenario file; empty selects the built-in scenarios
	LogLevel   string
	LogFormat  string
}

// Parse processes command-line arguments. It returns the parsed Config, true
// when the program should exit cleanly (help was requested), or an ExitError
// with code 2 for any usage mistake.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("volcanium", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
volcanium - schedules valve openings for maximum released pressure.

Usage:
  volcanium [options] INPUT

Arguments:
  INPUT
    Path to a valve report, or "-" to read standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL scenario file. Empty runs the built-in scenarios.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	switch flagSet.NArg() {
	case 0:
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing INPUT argument"}
	case 1:
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected one INPUT argument, got %d", flagSet.NArg())}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		InputPath:  flagSet.Arg(0),
		ConfigPath: *configFlag,
		LogLevel:   logLevel,
		LogFormat:  logFormat,
	}, false, nil
}
