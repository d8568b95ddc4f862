// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForInputNotFound returns hints for a missing source file.
// When the built-in default was used, suggests passing a file explicitly.
func ForInputNotFound(path, defaultPath string) string {
	if path == defaultPath {
		return format("no input given and " + defaultPath + " not found; run: md2docx convert <file.md>")
	}
	return format("check the path; relative paths are resolved from the current directory")
}

// ForInvalidUTF8 returns hints for sources that are not valid UTF-8.
func ForInvalidUTF8(path string) string {
	return format(fmt.Sprintf("re-encode the file, e.g. iconv -f latin1 -t utf-8 %s", filepath.Base(path)))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2docx/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2docx/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation and write errors.
func ForOutputDirectory() string {
	hints := []string{"check parent directory exists and is writable"}
	if IsInContainer() {
		hints = append(hints, "inside a container, write to a mounted volume")
	}
	return formatHints(hints)
}

// ForWorkers returns the accepted range for the workers setting.
func ForWorkers(maxWorkers int) string {
	return format(fmt.Sprintf("use 0 for automatic sizing or a value between 1 and %d", maxWorkers))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
