package md2docx

import "runtime"

// Worker sizing constants for batch conversion.
const (
	// MinWorkers ensures at least one conversion runs.
	MinWorkers = 1

	// MaxWorkers caps explicit worker counts.
	MaxWorkers = 32

	// maxAutoWorkers caps the automatic size; conversions are short and
	// mostly bound by file I/O past a handful of goroutines.
	maxAutoWorkers = 8
)

// ResolveWorkers determines how many files are converted in parallel.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return min(workers, MaxWorkers)
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)

	if n < MinWorkers {
		return MinWorkers
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}
