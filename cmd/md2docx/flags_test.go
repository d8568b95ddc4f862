package main

import (
	"errors"
	"io"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	f, positional, workersSet, err := parseConvertFlags(
		[]string{"docs", "-o", "build", "-w", "3", "-q", "--config", "work"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(positional) != 1 || positional[0] != "docs" {
		t.Errorf("positional = %v, want [docs]", positional)
	}
	if f.output != "build" {
		t.Errorf("output = %q, want build", f.output)
	}
	if f.workers != 3 || !workersSet {
		t.Errorf("workers = %d (set %v), want 3 (set)", f.workers, workersSet)
	}
	if !f.common.quiet || f.common.verbose {
		t.Errorf("common = %+v, want quiet only", f.common)
	}
	if f.common.config != "work" {
		t.Errorf("config = %q, want work", f.common.config)
	}
}

func TestParseConvertFlags_WorkersUnset(t *testing.T) {
	t.Parallel()

	_, _, workersSet, err := parseConvertFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if workersSet {
		t.Error("workersSet should be false without -w")
	}
}

func TestParseConvertFlags_Help(t *testing.T) {
	t.Parallel()

	_, _, _, err := parseConvertFlags([]string{"--help"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want flag.ErrHelp", err)
	}
}

func TestParseOutlineFlags(t *testing.T) {
	t.Parallel()

	f, positional, err := parseOutlineFlags([]string{"--width", "100", "--show-code", "--no-color", "-v", "doc.md"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.width != 100 || !f.showCode || !f.noColor || !f.common.verbose {
		t.Errorf("flags = %+v", f)
	}
	if len(positional) != 1 || positional[0] != "doc.md" {
		t.Errorf("positional = %v, want [doc.md]", positional)
	}
}

func TestParseConfigFlags_RejectsConvertFlags(t *testing.T) {
	t.Parallel()

	if _, _, err := parseConfigFlags([]string{"-o", "x"}, io.Discard); err == nil {
		t.Error("config should not accept --output")
	}
}
