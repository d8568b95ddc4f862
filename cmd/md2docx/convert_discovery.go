package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
)

// docxExt is the extension of generated documents.
const docxExt = ".docx"

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputNotDirectory = errors.New("output must be a directory when the input is a directory")
	ErrOutputCollision    = errors.New("inputs map to the same output")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert.
// A directory input is walked recursively; the output tree mirrors it.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	if isDocxPath(outputDir) {
		return nil, fmt.Errorf("%w: %s", ErrOutputNotDirectory, outputDir)
	}

	var files []FileToConvert
	seen := make(map[string]string)
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !looksLikeMarkdown(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		key := filepath.Clean(outPath)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrOutputCollision, prev, path, outPath)
		}
		seen[key] = path
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// resolveOutputPath determines the document path for a markdown file.
// An empty outputDir places the document next to its source; an outputDir
// ending in .docx is used as the file path itself.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	if outputDir == "" {
		return fileutil.ReplaceExt(inputPath, docxExt)
	}

	if isDocxPath(outputDir) {
		return outputDir
	}

	base := fileutil.ReplaceExt(filepath.Base(inputPath), docxExt)
	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// isDocxPath reports whether path names a .docx file.
func isDocxPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), docxExt)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !looksLikeMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 || n > md2docx.MaxWorkers {
		return fmt.Errorf("%w: %d%s", ErrInvalidWorkerCount, n, hints.ForWorkers(md2docx.MaxWorkers))
	}
	return nil
}
