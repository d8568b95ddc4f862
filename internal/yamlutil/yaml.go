// Package yamlutil wraps YAML parsing to isolate the external dependency.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// indentSpaces is the indentation of emitted documents.
const indentSpaces = 2

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict decodes data into v, rejecting unknown fields and
// duplicate keys.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v with two-space indentation.
func Marshal(v any) ([]byte, error) {
	return marshal(v, yaml.Indent(indentSpaces))
}

// MarshalWithHeader encodes v like Marshal and writes header as a comment
// block above the top-level key firstKey. firstKey must be the first key
// emitted, or the comment lands in the middle of the document.
func MarshalWithHeader(v any, firstKey string, header ...string) ([]byte, error) {
	if len(header) == 0 {
		return Marshal(v)
	}
	return marshal(v,
		yaml.Indent(indentSpaces),
		yaml.WithComment(yaml.CommentMap{
			"$." + firstKey: []*yaml.Comment{yaml.HeadComment(header...)},
		}),
	)
}

func marshal(v any, opts ...yaml.EncodeOption) ([]byte, error) {
	result, err := yaml.MarshalWithOptions(v, opts...)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}
