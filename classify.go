package md2docx

import (
	"strings"
	"unicode"
)

// fenceMarker opens and closes a code block.
const fenceMarker = "```"

// ScanResult is the output of Classify.
type ScanResult struct {
	Blocks []Block

	// UnterminatedFence is the line of the last fence left open at the end
	// of input, 0 if every fence was closed.
	UnterminatedFence int
	DroppedLines      int
}

// Classify turns source lines into blocks, one pass, in source order.
// A trailing newline on a line is ignored. Classify never fails: every line
// is a heading, a fence marker, code content, a blank or a paragraph.
func Classify(lines []string) ScanResult {
	var (
		res       ScanResult
		inFence   bool
		fenceLine int
		code      []string
	)

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\n")

		switch {
		case !inFence && strings.HasPrefix(line, "#"):
			res.Blocks = append(res.Blocks, headingBlock(line, lineNo))

		case !inFence && strings.HasPrefix(line, fenceMarker):
			inFence = true
			fenceLine = lineNo
			code = nil

		case inFence && strings.HasPrefix(line, fenceMarker):
			res.Blocks = append(res.Blocks, Block{
				Kind: BlockCode,
				Text: strings.Join(code, "\n"),
				Line: fenceLine,
			})
			inFence = false
			fenceLine = 0
			code = nil

		case inFence:
			code = append(code, line)

		case trimSpace(line) == "":
			res.Blocks = append(res.Blocks, Block{Kind: BlockBlank, Line: lineNo})

		default:
			res.Blocks = append(res.Blocks, Block{Kind: BlockParagraph, Text: line, Line: lineNo})
		}
	}

	if inFence {
		res.UnterminatedFence = fenceLine
		res.DroppedLines = len(code)
	}

	return res
}

// headingBlock builds a heading from a line starting with '#'.
// The level is not capped; only the rendered size has a floor.
func headingBlock(line string, lineNo int) Block {
	rest := strings.TrimLeft(line, "#")
	return Block{
		Kind:  BlockHeading,
		Level: len(line) - len(rest),
		Text:  trimSpace(rest),
		Line:  lineNo,
	}
}

// isSpace extends unicode.IsSpace with the ASCII file, group, record and
// unit separators (0x1C-0x1F), which also count as whitespace for blanks
// and heading text.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
