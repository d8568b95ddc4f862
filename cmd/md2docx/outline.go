package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/hints"
	"github.com/alnah/go-md2docx/internal/outline"
)

// runOutline prints the blocks a conversion would produce, without
// writing a document.
func runOutline(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseOutlineFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", ErrInvalidFlags, len(positional))
	}
	if flags.width < 0 {
		return fmt.Errorf("%w: --width must be >= 0, got %d", ErrInvalidFlags, flags.width)
	}

	cfg, err := loadSettings(flags.common)
	if err != nil {
		return err
	}

	inputPath := resolveInputPath(positional, cfg)
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		hint := ""
		if errors.Is(err, os.ErrNotExist) {
			hint = hints.ForInputNotFound(inputPath, cfg.Input.DefaultPath)
		}
		return fmt.Errorf("%w: %w%s", md2docx.ErrReadInput, err, hint)
	}

	conv, err := md2docx.NewConverter(md2docx.WithTheme(themeFromConfig(cfg.Theme)))
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	res, err := conv.Scan(ctx, md2docx.Input{Markdown: string(content)})
	if err != nil {
		return withHint(err, inputPath)
	}

	return outline.Write(env.Stdout, res, outline.Options{
		Width:    flags.width,
		ShowCode: flags.showCode,
		Color:    !flags.noColor && os.Getenv("NO_COLOR") == "" && outline.IsTerminal(env.Stdout),
	})
}
