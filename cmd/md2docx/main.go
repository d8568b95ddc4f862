package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for a first argument that is neither a
// command nor a markdown path.
var ErrUnknownCommand = errors.New("unknown command")

// commands lists the subcommand names recognized by runMain.
var commands = map[string]bool{
	"convert":    true,
	"outline":    true,
	"config":     true,
	"version":    true,
	"help":       true,
	"completion": true,
}

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if wantsVerbose(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches the command line and returns the process exit code.
// args[0] is the program name.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	warnUnknownEnvVars(env.Stderr)

	err := dispatch(ctx, args[1:], env)
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
	}
	return exitCodeFor(err)
}

// dispatch routes to a subcommand. With no arguments, or when the first
// argument is a flag or a markdown path, it runs convert.
func dispatch(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		return runConvert(ctx, nil, env)
	}

	first := args[0]
	switch {
	case first == "-h" || first == "--help":
		printUsage(env.Stdout)
		return nil
	case strings.HasPrefix(first, "-") || looksLikeMarkdown(first):
		return runConvert(ctx, args, env)
	case !isCommand(first):
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, first)
	}

	rest := args[1:]
	switch first {
	case "convert":
		return runConvert(ctx, rest, env)
	case "outline":
		return runOutline(ctx, rest, env)
	case "config":
		return runConfig(rest, env)
	case "completion":
		return runCompletion(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
		return nil
	default:
		runHelp(rest, env)
		return nil
	}
}

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	return commands[s]
}

// looksLikeMarkdown reports whether s has a markdown file extension.
func looksLikeMarkdown(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".md" || ext == ".markdown"
}

// wantsVerbose scans raw arguments for the verbose flag before parsing.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
