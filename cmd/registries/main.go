package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"github.com/Starscribers/any-registries/internal/cli"
	"github.com/Starscribers/any-registries/internal/ctxlog"
	"github.com/Starscribers/any-registries/manifest"
	"github.com/Starscribers/any-registries/registry"
)

// main is the entrypoint for the registries tool.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the tool's logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Load .env before anything reads the environment. A missing default
	// .env is fine, env vars can be set by other means.
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	reg := registry.New(
		registry.WithBasePath[string, Command](cfg.ManifestPath),
		registry.WithLoader(manifest.Auto(providers())),
	)
	reg.Install(builtins...).AutoLoad(cfg.Patterns...)

	if err := reg.ForceLoad(ctx); err != nil {
		return err
	}
	logger.Debug("Registry loaded.", "entries", reg.Len(), "base_path", reg.BasePath())

	if cfg.RunKey != "" {
		cmd, err := reg.Get(ctx, cfg.RunKey)
		if err != nil {
			return err
		}
		out, err := cmd(ctx, cfg.RunArgs)
		if err != nil {
			return fmt.Errorf("command %q: %w", cfg.RunKey, err)
		}
		fmt.Fprintln(outW, out)
		return nil
	}

	keys := make([]string, 0, reg.Len())
	for k := range reg.Entries() {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(outW, "registered commands (%d):\n", len(keys))
	for _, k := range keys {
		fmt.Fprintf(outW, "  %s\n", k)
	}
	return nil
}

// newLogger creates an isolated slog.Logger instance for this run. It
// does not touch the global logger.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
