// Package outline prints classified blocks as a terminal listing.
//
// Each block is one row: source line, kind, and text truncated to the
// terminal width. Code blocks can be expanded below their row, optionally
// syntax highlighted for a 256-color terminal.
package outline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"golang.org/x/term"

	"github.com/alnah/go-md2docx"
)

// Layout constants.
const (
	DefaultWidth = 80
	minTextWidth = 10
	tabWidth     = 4
	ellipsis     = "…"
	codeStyle    = "monokai"
)

// Options controls the listing.
type Options struct {
	// Width is the column budget per row. 0 detects the terminal width of w,
	// falling back to DefaultWidth.
	Width int
	// ShowCode prints the content of code blocks below their row.
	ShowCode bool
	// Color highlights printed code with ANSI escapes.
	Color bool
}

// Write prints one row per block, then a summary line.
func Write(w io.Writer, res md2docx.ScanResult, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = terminalWidth(w, DefaultWidth)
	}

	for _, b := range res.Blocks {
		prefix := fmt.Sprintf("%5d  %-13s ", b.Line, label(b))
		textWidth := width - runewidth.StringWidth(prefix)
		if textWidth < minTextWidth {
			textWidth = minTextWidth
		}

		row := prefix + runewidth.Truncate(summary(b), textWidth, ellipsis)
		if _, err := fmt.Fprintln(w, strings.TrimRight(row, " ")); err != nil {
			return err
		}

		if opts.ShowCode && b.Kind == md2docx.BlockCode && b.Text != "" {
			text := expandTabs(b.Text)
			if opts.Color {
				text = highlight(text)
			}
			body := indent.String(text, uint(runewidth.StringWidth(prefix)))
			if _, err := fmt.Fprintln(w, body); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, Summarize(res))
	return err
}

// Summarize returns a one-line count of blocks per kind, with a notice for
// an unterminated fence.
func Summarize(res md2docx.ScanResult) string {
	counts := make(map[md2docx.BlockKind]int, 4)
	for _, b := range res.Blocks {
		counts[b.Kind]++
	}

	s := fmt.Sprintf("%d blocks: %d headings, %d paragraphs, %d code, %d blank",
		len(res.Blocks),
		counts[md2docx.BlockHeading],
		counts[md2docx.BlockParagraph],
		counts[md2docx.BlockCode],
		counts[md2docx.BlockBlank])

	if res.UnterminatedFence > 0 {
		s += fmt.Sprintf("; fence at line %d never closed, %d lines dropped",
			res.UnterminatedFence, res.DroppedLines)
	}
	return s
}

func label(b md2docx.Block) string {
	if b.Kind == md2docx.BlockHeading {
		return fmt.Sprintf("h%d %gpt", b.Level, md2docx.HeadingFontSize(b.Level))
	}
	return b.Kind.String()
}

func summary(b md2docx.Block) string {
	switch b.Kind {
	case md2docx.BlockBlank:
		return ""
	case md2docx.BlockCode:
		n := 0
		if b.Text != "" {
			n = strings.Count(b.Text, "\n") + 1
		}
		if n == 1 {
			return "(1 line)"
		}
		return fmt.Sprintf("(%d lines)", n)
	}
	return expandTabs(b.Text)
}

// expandTabs replaces tabs with spaces up to the next tab stop.
func expandTabs(text string) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}

	var sb strings.Builder
	column := 0
	for _, r := range text {
		switch r {
		case '\t':
			spaces := tabWidth - column%tabWidth
			sb.WriteString(strings.Repeat(" ", spaces))
			column += spaces
		case '\n':
			sb.WriteRune(r)
			column = 0
		default:
			sb.WriteRune(r)
			column += runewidth.RuneWidth(r)
		}
	}
	return sb.String()
}

// highlight colors code for a 256-color terminal. Fence info strings are
// not kept on code blocks, so the lexer is guessed from the content.
// On any tokenizer or formatter error the code is returned unchanged.
func highlight(code string) string {
	lexer := lexers.Analyse(code)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return code
	}

	// Some lexers append a final newline; the row printer adds its own.
	tokens := it.Tokens()
	if n := len(tokens); n > 0 && !strings.HasSuffix(code, "\n") {
		tokens[n-1].Value = strings.TrimSuffix(tokens[n-1].Value, "\n")
	}

	var sb strings.Builder
	if err := formatters.TTY256.Format(&sb, styles.Get(codeStyle), chroma.Literator(tokens...)); err != nil {
		return code
	}
	return sb.String()
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	_, ok := terminalFd(w)
	return ok
}

// terminalWidth returns the width of w when it is a terminal.
func terminalWidth(w io.Writer, fallback int) int {
	fd, ok := terminalFd(w)
	if !ok {
		return fallback
	}
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		return width
	}
	return fallback
}

func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd()) // #nosec G115 -- file descriptors fit in int
	return fd, term.IsTerminal(fd)
}
