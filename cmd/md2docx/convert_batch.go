package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/hints"
)

// dirPermissions is applied to created output directories (rwxr-x---).
const dirPermissions = 0o750

// fileConverter is the part of the converter used by batch conversion.
type fileConverter interface {
	ConvertFile(ctx context.Context, inputPath, outputPath string) (*md2docx.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ fileConverter = (*md2docx.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration

	Blocks            int
	UnterminatedFence int
	DroppedLines      int
}

// convertBatch converts files with at most workers goroutines sharing conv.
// Results are returned in input order.
func convertBatch(ctx context.Context, conv fileConverter, files []FileToConvert, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(min(workers, len(files)), 1)

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv fileConverter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	res, err := conv.ConvertFile(ctx, f.InputPath, f.OutputPath)
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = withHint(err, f.InputPath)
		return result
	}

	result.Blocks = len(res.Blocks)
	result.UnterminatedFence = res.UnterminatedFence
	result.DroppedLines = res.DroppedLines
	return result
}

// withHint appends an actionable hint for known error kinds.
func withHint(err error, inputPath string) error {
	switch {
	case errors.Is(err, md2docx.ErrInvalidUTF8):
		return fmt.Errorf("%w%s", err, hints.ForInvalidUTF8(inputPath))
	case errors.Is(err, md2docx.ErrWriteOutput):
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	}
	return err
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count.
// Failures always go to stderr; --quiet drops everything else.
func printResults(results []ConversionResult, flags commonFlags, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if flags.quiet {
			continue
		}

		if flags.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d blocks, %v)\n",
				r.InputPath, r.OutputPath, r.Blocks, r.Duration.Round(time.Millisecond))
			if r.UnterminatedFence > 0 {
				fmt.Fprintf(env.Stderr, "warning: %s:%d: code fence never closed, %d line(s) dropped\n",
					r.InputPath, r.UnterminatedFence, r.DroppedLines)
			}
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !flags.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
