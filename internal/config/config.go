package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// appDirName is the directory under os.UserConfigDir() searched for named configs.
const appDirName = "go-md2docx"

// Field length limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxColorLength = 7    // "#RRGGBB"
	MaxFontLength  = 31   // Word's face name limit
)

// Value limits.
const (
	MinFontSize = 1.0
	MaxFontSize = 72.0
	MaxWorkers  = 32
)

// Built-in defaults, kept in sync with the md2docx package constants.
const (
	defaultInputPath      = "Documentation-Cryptage-Java.md"
	defaultTitleColor     = "1A237E"
	defaultCodeBackground = "ECEFF1"
	defaultCodeColor      = "263238"
	defaultCodeFont       = "Consolas"
	defaultCodeFontSize   = 10.5
)

// Config holds all configuration for document generation.
type Config struct {
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Theme   ThemeConfig  `yaml:"theme"`
	Workers int          `yaml:"workers"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultPath string `yaml:"defaultPath"` // Source converted when no argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// ThemeConfig defines heading and code block styling.
// Empty fields fall back to the built-in theme.
type ThemeConfig struct {
	TitleColor     string  `yaml:"titleColor"`
	CodeBackground string  `yaml:"codeBackground"`
	CodeColor      string  `yaml:"codeColor"`
	CodeFont       string  `yaml:"codeFont"`
	CodeFontSize   float64 `yaml:"codeFontSize"`
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultPath", c.Input.DefaultPath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	colors := []struct {
		field string
		value string
	}{
		{"theme.titleColor", c.Theme.TitleColor},
		{"theme.codeBackground", c.Theme.CodeBackground},
		{"theme.codeColor", c.Theme.CodeColor},
	}
	for _, col := range colors {
		if err := validateFieldLength(col.field, col.value, MaxColorLength); err != nil {
			return err
		}
		if col.value != "" && !isHexColor(col.value) {
			return fmt.Errorf("%w: %s %q (must be RRGGBB hex)", ErrInvalidValue, col.field, col.value)
		}
	}

	if err := validateFieldLength("theme.codeFont", c.Theme.CodeFont, MaxFontLength); err != nil {
		return err
	}

	if size := c.Theme.CodeFontSize; size != 0 {
		if size < MinFontSize || size > MaxFontSize {
			return fmt.Errorf("%w: theme.codeFontSize must be between %.0f and %.0f, got %.2f",
				ErrInvalidValue, MinFontSize, MaxFontSize, size)
		}
		if math.Mod(size*2, 1) != 0 {
			return fmt.Errorf("%w: theme.codeFontSize must be a multiple of 0.5, got %.2f", ErrInvalidValue, size)
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// isHexColor reports whether s is RRGGBB, optionally prefixed with '#'.
func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultPath: defaultInputPath},
		Output: OutputConfig{DefaultDir: ""},
		Theme: ThemeConfig{
			TitleColor:     defaultTitleColor,
			CodeBackground: defaultCodeBackground,
			CodeColor:      defaultCodeColor,
			CodeFont:       defaultCodeFont,
			CodeFontSize:   defaultCodeFontSize,
		},
		Workers: 0,
	}
}

// FillDefaults sets every empty field to its built-in value.
func (c *Config) FillDefaults() {
	def := DefaultConfig()
	if c.Input.DefaultPath == "" {
		c.Input.DefaultPath = def.Input.DefaultPath
	}
	if c.Theme.TitleColor == "" {
		c.Theme.TitleColor = def.Theme.TitleColor
	}
	if c.Theme.CodeBackground == "" {
		c.Theme.CodeBackground = def.Theme.CodeBackground
	}
	if c.Theme.CodeColor == "" {
		c.Theme.CodeColor = def.Theme.CodeColor
	}
	if c.Theme.CodeFont == "" {
		c.Theme.CodeFont = def.Theme.CodeFont
	}
	if c.Theme.CodeFontSize == 0 {
		c.Theme.CodeFontSize = def.Theme.CodeFontSize
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields absent from the file keep their built-in values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.FillDefaults()
	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory first, then ~/.config/go-md2docx/.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
