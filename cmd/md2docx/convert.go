package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags    = errors.New("invalid arguments")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
)

// batchError reports failed conversions of a batch.
// It unwraps to the first failure so exit codes follow its kind.
type batchError struct {
	failed int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", e.failed)
}

func (e *batchError) Unwrap() error {
	return e.first
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, workersSet, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", ErrInvalidFlags, len(positional))
	}

	// Validate worker count early
	if workersSet {
		if err := validateWorkers(flags.workers); err != nil {
			return err
		}
	}

	cfg, err := loadSettings(flags.common)
	if err != nil {
		return err
	}
	mergeFlags(flags, workersSet, cfg)

	inputPath := resolveInputPath(positional, cfg)

	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %w%s", md2docx.ErrReadInput, err, hints.ForInputNotFound(inputPath, cfg.Input.DefaultPath))
		}
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	conv, err := md2docx.NewConverter(
		md2docx.WithTheme(themeFromConfig(cfg.Theme)),
		md2docx.WithOutputDirs(dirPermissions),
	)
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	workers := md2docx.ResolveWorkers(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s) with %d worker(s)\n", len(files), min(workers, len(files)))
	}

	start := env.Now()
	results := convertBatch(ctx, conv, files, workers)

	failed := printResults(results, flags.common, env)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Total time: %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	if failed > 0 {
		return &batchError{failed: failed, first: firstError(results)}
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, workersSet bool, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if workersSet {
		cfg.Workers = flags.workers
	}
}

// resolveInputPath returns the positional input, or the configured default.
func resolveInputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Input.DefaultPath != "" {
		return cfg.Input.DefaultPath
	}
	return md2docx.DefaultInputPath
}

// firstError returns the error of the first failed result in input order.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
