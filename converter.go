package md2docx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.SourcePreprocessor = (*pipeline.UTF8Preprocessor)(nil)
	_ documentRenderer            = (*goDocxRenderer)(nil)
)

// filePermissions is applied to written documents (rw-r--r--).
const filePermissions = 0o644

// Converter orchestrates the markdown-to-docx conversion.
// A Converter holds no per-conversion state and is safe for concurrent use.
type Converter struct {
	cfg          converterConfig
	preprocessor pipeline.SourcePreprocessor
	renderer     documentRenderer
}

// NewConverter creates a Converter with the default theme.
// Returns an error if the configured theme is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{theme: DefaultTheme()},
		preprocessor: &pipeline.UTF8Preprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.theme.Validate(); err != nil {
		return nil, err
	}

	// Create renderer if not injected (e.g., by tests)
	if c.renderer == nil {
		c.renderer = newGoDocxRenderer(c.cfg.theme)
	}

	return c, nil
}

// Theme returns the theme used by the converter.
func (c *Converter) Theme() Theme {
	return c.cfg.theme
}

// Convert classifies the markdown and renders the document in memory.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	scan, err := c.Scan(ctx, input)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	data, err := c.renderer.Render(ctx, scan.Blocks)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	return &ConvertResult{
		DOCX:              data,
		Blocks:            scan.Blocks,
		UnterminatedFence: scan.UnterminatedFence,
		DroppedLines:      scan.DroppedLines,
	}, nil
}

// Scan validates and classifies the markdown without building a document.
func (c *Converter) Scan(ctx context.Context, input Input) (ScanResult, error) {
	source, err := c.preprocessor.Preprocess(ctx, input.Markdown)
	if err != nil {
		return ScanResult{}, fmt.Errorf("preprocessing markdown: %w", err)
	}
	return Classify(pipeline.SplitLines(source)), nil
}

// ConvertFile reads the markdown at inputPath and writes the document to
// outputPath.
//
// A source that cannot be read aborts before anything is built or written;
// the error matches ErrReadInput and the underlying fs error. A write
// failure happens after the whole document was built; the error matches
// ErrWriteOutput and no partial file is left at outputPath. Missing output
// directories are an error unless the Converter was built WithOutputDirs.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) (*ConvertResult, error) {
	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	result, err := c.Convert(ctx, Input{Markdown: string(content)})
	if err != nil {
		return nil, err
	}

	if c.cfg.outputDirPerm != 0 {
		if err := os.MkdirAll(filepath.Dir(outputPath), c.cfg.outputDirPerm); err != nil {
			return nil, fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err)
		}
	}

	if err := fileutil.WriteFileAtomic(outputPath, result.DOCX, filePermissions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return result, nil
}
