package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Config holds the parsed configuration for the registries tool.
type Config struct {
	ManifestPath string
	Patterns     []string
	RunKey       string
	RunArgs      []string
	EnvFile      string
	LogFormat    string
	LogLevel     string
}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const defaultPatterns = "**/*.hcl,**/*.yaml,**/*.yml"

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("registries", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
registries - inspect and run entries of a manifest-driven command registry.

Usage:
  registries [options] MANIFEST_PATH [ARGS...]

Arguments:
  MANIFEST_PATH
    Root directory scanned for manifest files.
  ARGS
    Passed to the command selected with -run.

Options:
`)
		flagSet.PrintDefaults()
	}

	pathFlag := flagSet.String("path", "", "Root directory scanned for manifest files.")
	pFlag := flagSet.String("p", "", "Root directory scanned for manifest files (shorthand).")
	patternsFlag := flagSet.String("patterns", defaultPatterns, "Comma-separated glob patterns resolved against the manifest path.")
	runFlag := flagSet.String("run", "", "Key of a registered command to run after loading.")
	envFileFlag := flagSet.String("env-file", "", "Path to a .env file loaded before anything else.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	runArgs := flagSet.Args()
	if *pathFlag != "" {
		path = *pathFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if len(runArgs) > 0 {
		path = runArgs[0]
		runArgs = runArgs[1:]
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	var patterns []string
	for _, p := range strings.Split(*patternsFlag, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return nil, false, &ExitError{Code: 2, Message: "at least one pattern is required"}
	}

	return &Config{
		ManifestPath: path,
		Patterns:     patterns,
		RunKey:       *runFlag,
		RunArgs:      runArgs,
		EnvFile:      *envFileFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	}, false, nil
}
