package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// configHeader is written above the printed configuration.
var configHeader = []string{
	" md2docx effective configuration",
	" precedence: flags > MD2DOCX_* environment > config file > defaults",
}

// runConfig prints the effective configuration as YAML.
// The output is a valid config file.
func runConfig(args []string, env *Environment) error {
	flags, positional, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrInvalidFlags)
	}

	cfg, err := loadSettings(*flags)
	if err != nil {
		return err
	}

	data, err := yamlutil.MarshalWithHeader(cfg, "input", configHeader...)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	_, err = env.Stdout.Write(data)
	return err
}
