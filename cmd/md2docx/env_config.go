package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2DOCX_CONFIG: config file name or path
	OutputDir  string // MD2DOCX_OUTPUT_DIR: default output directory
	Workers    int    // MD2DOCX_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DOCX_CONFIG":     true,
	"MD2DOCX_OUTPUT_DIR": true,
	"MD2DOCX_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2DOCX_CONFIG"),
		OutputDir:  os.Getenv("MD2DOCX_OUTPUT_DIR"),
	}

	// Invalid or non-positive values are ignored
	if workers := os.Getenv("MD2DOCX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2DOCX_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2DOCX_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config file values with environment values.
// Flags are merged afterwards, giving: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Workers = min(env.Workers, config.MaxWorkers)
	}
}

// loadSettings resolves the config file (flag, then MD2DOCX_CONFIG) and
// applies environment overrides.
func loadSettings(flags commonFlags) (*config.Config, error) {
	env := loadEnvConfig()

	name := flags.config
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			hint := ""
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				hint = hints.ForConfigNotFound(config.SearchPaths(name))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// themeFromConfig maps the config theme section onto the library theme.
// Empty fields keep the built-in values.
func themeFromConfig(tc config.ThemeConfig) md2docx.Theme {
	theme := md2docx.DefaultTheme()
	if tc.TitleColor != "" {
		theme.TitleColor = tc.TitleColor
	}
	if tc.CodeBackground != "" {
		theme.CodeBackground = tc.CodeBackground
	}
	if tc.CodeColor != "" {
		theme.CodeColor = tc.CodeColor
	}
	if tc.CodeFont != "" {
		theme.CodeFont = tc.CodeFont
	}
	if tc.CodeFontSize != 0 {
		theme.CodeFontSize = tc.CodeFontSize
	}
	return theme
}
