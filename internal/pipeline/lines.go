package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark/text"
)

// SplitLines splits normalized source into lines without their trailing
// newline. A final newline does not start an extra empty line, and empty
// input yields no lines.
func SplitLines(src string) []string {
	reader := text.NewReader([]byte(src))

	var lines []string
	for {
		line, _ := reader.PeekLine()
		if line == nil {
			break
		}
		lines = append(lines, string(bytes.TrimSuffix(line, []byte("\n"))))
		reader.AdvanceLine()
	}
	return lines
}
