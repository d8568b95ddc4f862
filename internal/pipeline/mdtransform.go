package pipeline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidUTF8 indicates the source is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// Line ending normalization: \r\n and lone \r become \n.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// SourcePreprocessor defines the contract for source preprocessing.
type SourcePreprocessor interface {
	Preprocess(ctx context.Context, content string) (string, error)
}

// UTF8Preprocessor prepares raw file content for line splitting.
type UTF8Preprocessor struct{}

// Preprocess validates the encoding and applies all transformations.
// Invalid UTF-8 is rejected rather than replaced, so malformed files fail
// before any block is built.
func (p *UTF8Preprocessor) Preprocess(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !utf8.ValidString(content) {
		return "", fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidUTF8, firstInvalidOffset(content))
	}

	content, err := stripBOM(content)
	if err != nil {
		return "", err
	}
	return normalizeLineEndings(content), nil
}

// stripBOM removes a leading UTF-8 byte order mark.
func stripBOM(content string) (string, error) {
	out, err := unicode.UTF8BOM.NewDecoder().String(content)
	if err != nil {
		return "", fmt.Errorf("decoding source: %w", err)
	}
	return out, nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// firstInvalidOffset returns the byte offset of the first invalid sequence.
func firstInvalidOffset(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return i
			}
		}
	}
	return len(s)
}
