package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Starscribers/any-registries/registry"
)

// Command is a runnable entry in the demo command registry.
type Command func(ctx context.Context, args []string) (string, error)

func helloCommand(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "hello, world", nil
	}
	return "hello, " + strings.Join(args, " "), nil
}

func upperCommand(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: upper <text>")
	}
	return strings.ToUpper(strings.Join(args, " ")), nil
}

func envCommand(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: env <name>")
	}
	val, ok := os.LookupEnv(args[0])
	if !ok {
		return "", fmt.Errorf("environment variable %q is not set", args[0])
	}
	return val, nil
}

// providers is the table manifests resolve provider names against.
func providers() map[string]Command {
	return map[string]Command{
		"hello": helloCommand,
		"upper": upperCommand,
		"env":   envCommand,
	}
}

// coreModule registers the built-in commands under their default keys,
// so the tool works even with an empty manifest tree.
type coreModule struct{}

func (coreModule) Register(r *registry.Registry[string, Command]) {
	for name, cmd := range providers() {
		r.Register(name, cmd)
	}
}

// builtins is the definitive list of modules compiled into the tool.
var builtins = []registry.Module[string, Command]{
	coreModule{},
}
