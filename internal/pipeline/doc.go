// Package pipeline implements the source stages that run before line
// classification:
//   - source preprocessing (UTF-8 validation, byte order mark removal,
//     line ending normalization)
//   - line splitting via goldmark's text reader
//
// Classification and document rendering live in the root md2docx package,
// which owns the public Block type. Keeping these stages here lets the root
// package swap them out in tests.
package pipeline
