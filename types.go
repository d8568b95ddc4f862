package md2docx

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// Default file names used when no paths are given.
const (
	DefaultInputPath  = "Documentation-Cryptage-Java.md"
	DefaultOutputPath = "Documentation-Cryptage-Java.docx"
)

// BlockKind tags the variant of a Block.
type BlockKind int

// Block kinds.
const (
	BlockParagraph BlockKind = iota
	BlockBlank
	BlockHeading
	BlockCode
)

// String returns the lower-case name of the kind.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockBlank:
		return "blank"
	case BlockHeading:
		return "heading"
	case BlockCode:
		return "code"
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

// Block is one classified unit of the source, rendered as one paragraph.
type Block struct {
	Kind  BlockKind
	Level int    // heading level (count of leading '#'), 0 for other kinds
	Text  string // heading text, paragraph text, or code lines joined by '\n'
	Line  int    // 1-based source line; for code blocks, the opening fence
}

// Input holds the source for a single conversion.
type Input struct {
	Markdown string
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	DOCX   []byte
	Blocks []Block

	// UnterminatedFence is the line of a code fence that was never closed,
	// or 0. Its content was dropped and counted in DroppedLines.
	UnterminatedFence int
	DroppedLines      int
}

// Heading size constants in points.
const (
	HeadingBaseSize = 22.0
	HeadingSizeStep = 2.0
	HeadingMinSize  = 11.0
)

// HeadingFontSize returns the point size of a heading of the given level.
// Levels deeper than 5 all share the floor size.
func HeadingFontSize(level int) float64 {
	return math.Max(HeadingBaseSize-HeadingSizeStep*float64(level), HeadingMinSize)
}

// Theme defaults.
const (
	DefaultTitleColor     = "1A237E" // dark-blue accent for headings
	DefaultCodeBackground = "ECEFF1" // light-gray code background
	DefaultCodeColor      = "263238" // muted dark-gray code text
	DefaultCodeFont       = "Consolas"
	DefaultCodeFontSize   = 10.5
)

// Theme bounds.
const (
	MinFontSize       = 1.0
	MaxFontSize       = 72.0
	MaxFontNameLength = 31 // Word truncates longer face names
)

// Theme holds the colors and fonts applied to headings and code blocks.
// Colors are six hex digits with an optional leading '#'.
type Theme struct {
	TitleColor     string
	CodeBackground string
	CodeColor      string
	CodeFont       string
	CodeFontSize   float64 // points, in half-point steps
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		TitleColor:     DefaultTitleColor,
		CodeBackground: DefaultCodeBackground,
		CodeColor:      DefaultCodeColor,
		CodeFont:       DefaultCodeFont,
		CodeFontSize:   DefaultCodeFontSize,
	}
}

// Validate checks that every theme field is usable in a document.
func (t *Theme) Validate() error {
	if t == nil {
		return nil
	}

	colors := []struct {
		field string
		value string
	}{
		{"title color", t.TitleColor},
		{"code background", t.CodeBackground},
		{"code color", t.CodeColor},
	}
	for _, c := range colors {
		if !isHexColor(c.value) {
			return fmt.Errorf("%w: %s %q (must be RRGGBB hex)", ErrInvalidColor, c.field, c.value)
		}
	}

	font := strings.TrimSpace(t.CodeFont)
	if font == "" {
		return fmt.Errorf("%w: code font cannot be empty", ErrInvalidFont)
	}
	if len(font) > MaxFontNameLength {
		return fmt.Errorf("%w: %q (%d chars, max %d)", ErrInvalidFont, font, len(font), MaxFontNameLength)
	}

	if t.CodeFontSize < MinFontSize || t.CodeFontSize > MaxFontSize {
		return fmt.Errorf("%w: %.1f (must be between %.0f and %.0f)", ErrInvalidFontSize, t.CodeFontSize, MinFontSize, MaxFontSize)
	}
	if math.Mod(t.CodeFontSize*2, 1) != 0 {
		return fmt.Errorf("%w: %.2f (must be a multiple of 0.5)", ErrInvalidFontSize, t.CodeFontSize)
	}

	return nil
}

// isHexColor reports whether s is RRGGBB, optionally prefixed with '#'.
func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

// normalizeColor returns the upper-case RRGGBB form used in documents.
func normalizeColor(s string) string {
	return strings.ToUpper(strings.TrimPrefix(s, "#"))
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	theme Theme

	// outputDirPerm, when non-zero, lets ConvertFile create missing parent
	// directories of the output path.
	outputDirPerm os.FileMode
}

// WithTheme replaces the default theme. The theme is validated by
// NewConverter.
func WithTheme(t Theme) Option {
	return func(c *Converter) {
		c.cfg.theme = t
	}
}

// WithOutputDirs makes ConvertFile create missing parent directories of the
// output path with perm. Directories are only created once the document has
// been built, so a failed read or conversion leaves the filesystem untouched.
func WithOutputDirs(perm os.FileMode) Option {
	return func(c *Converter) {
		c.cfg.outputDirPerm = perm
	}
}
