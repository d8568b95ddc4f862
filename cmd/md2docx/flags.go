package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
}

// outlineFlags holds flags for the outline command.
type outlineFlags struct {
	common   commonFlags
	width    int
	showCode bool
	noColor  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and scan notices")
}

// addConvertFlags registers the convert command flags.
func addConvertFlags(fs *flag.FlagSet, f *convertFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output .docx file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
}

// addOutlineFlags registers the outline command flags.
func addOutlineFlags(fs *flag.FlagSet, f *outlineFlags) {
	fs.IntVar(&f.width, "width", 0, "row width in columns (0 = terminal width)")
	fs.BoolVar(&f.showCode, "show-code", false, "print code block contents")
	fs.BoolVar(&f.noColor, "no-color", false, "disable code highlighting on terminals")
	addCommonFlags(fs, &f.common)
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// workersSet reports whether -w was given explicitly.
func parseConvertFlags(args []string, stderr io.Writer) (f *convertFlags, positional []string, workersSet bool, err error) {
	fs := newFlagSet("convert", printConvertUsage, stderr)
	f = &convertFlags{}
	addConvertFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, false, err
	}

	return f, fs.Args(), fs.Changed("workers"), nil
}

// parseOutlineFlags parses outline command flags and returns positional args.
func parseOutlineFlags(args []string, stderr io.Writer) (*outlineFlags, []string, error) {
	fs := newFlagSet("outline", printOutlineUsage, stderr)
	f := &outlineFlags{}
	addOutlineFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, stderr io.Writer) (*commonFlags, []string, error) {
	fs := newFlagSet("config", printConfigUsage, stderr)
	f := &commonFlags{}
	addCommonFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
