package md2docx

import (
	"errors"

	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrReadInput      = errors.New("failed to read markdown source")
	ErrWriteOutput    = errors.New("failed to write document")
	ErrDocumentRender = errors.New("document rendering failed")

	// ErrInvalidUTF8 is returned when the source is not valid UTF-8.
	ErrInvalidUTF8 = pipeline.ErrInvalidUTF8

	// Theme validation errors.
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidFont     = errors.New("invalid font name")
	ErrInvalidFontSize = errors.New("invalid font size")
)
