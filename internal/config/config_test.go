package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.DefaultPath != "Documentation-Cryptage-Java.md" {
		t.Errorf("Input.DefaultPath = %q, want %q", cfg.Input.DefaultPath, "Documentation-Cryptage-Java.md")
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	want := ThemeConfig{
		TitleColor:     "1A237E",
		CodeBackground: "ECEFF1",
		CodeColor:      "263238",
		CodeFont:       "Consolas",
		CodeFontSize:   10.5,
	}
	if cfg.Theme != want {
		t.Errorf("Theme = %+v, want %+v", cfg.Theme, want)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty value is valid", value: "", maxLength: 10},
		{name: "value at limit is valid", value: "1234567890", maxLength: 10},
		{name: "value under limit is valid", value: "12345", maxLength: 10},
		{name: "value over limit returns error", value: "12345678901", maxLength: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "empty theme fields are allowed",
			mutate: func(c *Config) { c.Theme = ThemeConfig{} },
		},
		{
			name:   "color with hash prefix",
			mutate: func(c *Config) { c.Theme.TitleColor = "#1a237e" },
		},
		{
			name:   "half-point font size",
			mutate: func(c *Config) { c.Theme.CodeFontSize = 9.5 },
		},
		{
			name:   "maximum workers",
			mutate: func(c *Config) { c.Workers = MaxWorkers },
		},
		{
			name:    "input.defaultPath too long",
			mutate:  func(c *Config) { c.Input.DefaultPath = strings.Repeat("a", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "output.defaultDir too long",
			mutate:  func(c *Config) { c.Output.DefaultDir = strings.Repeat("a", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "color too long",
			mutate:  func(c *Config) { c.Theme.CodeColor = "#1A237E00" },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "color not hex",
			mutate:  func(c *Config) { c.Theme.CodeBackground = "navy" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "color with invalid digit",
			mutate:  func(c *Config) { c.Theme.TitleColor = "1A237G" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "font name too long",
			mutate:  func(c *Config) { c.Theme.CodeFont = strings.Repeat("F", MaxFontLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "font size below minimum",
			mutate:  func(c *Config) { c.Theme.CodeFontSize = 0.5 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "font size above maximum",
			mutate:  func(c *Config) { c.Theme.CodeFontSize = 80 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "font size not a half-point step",
			mutate:  func(c *Config) { c.Theme.CodeFontSize = 10.25 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Workers = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Workers = MaxWorkers + 1 },
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_FillDefaults(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{DefaultDir: "out"},
		Theme:  ThemeConfig{CodeFont: "Courier New"},
	}
	cfg.FillDefaults()

	if cfg.Input.DefaultPath != "Documentation-Cryptage-Java.md" {
		t.Errorf("Input.DefaultPath = %q, want default", cfg.Input.DefaultPath)
	}
	if cfg.Output.DefaultDir != "out" {
		t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "out")
	}
	if cfg.Theme.CodeFont != "Courier New" {
		t.Errorf("Theme.CodeFont = %q, want %q", cfg.Theme.CodeFont, "Courier New")
	}
	if cfg.Theme.TitleColor != "1A237E" {
		t.Errorf("Theme.TitleColor = %q, want default", cfg.Theme.TitleColor)
	}
	if cfg.Theme.CodeFontSize != 10.5 {
		t.Errorf("Theme.CodeFontSize = %v, want 10.5", cfg.Theme.CodeFontSize)
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "test.yaml", `input:
  defaultPath: notes.md
output:
  defaultDir: build
theme:
  titleColor: "#003366"
  codeFontSize: 9
workers: 4
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.DefaultPath != "notes.md" {
			t.Errorf("Input.DefaultPath = %q, want %q", cfg.Input.DefaultPath, "notes.md")
		}
		if cfg.Output.DefaultDir != "build" {
			t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "build")
		}
		if cfg.Theme.TitleColor != "#003366" {
			t.Errorf("Theme.TitleColor = %q, want %q", cfg.Theme.TitleColor, "#003366")
		}
		if cfg.Theme.CodeFontSize != 9 {
			t.Errorf("Theme.CodeFontSize = %v, want 9", cfg.Theme.CodeFontSize)
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "partial.yaml", "workers: 2\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Theme != DefaultConfig().Theme {
			t.Errorf("Theme = %+v, want defaults", cfg.Theme)
		}
		if cfg.Input.DefaultPath != "Documentation-Cryptage-Java.md" {
			t.Errorf("Input.DefaultPath = %q, want default", cfg.Input.DefaultPath)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "invalid.yaml", "theme: [unclosed")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "unknown.yaml", "style: default\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value returns ErrInvalidValue", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "bad.yaml", "theme:\n  codeColor: gray\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("directory path returns read error not ErrConfigNotFound", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "cfg.yaml")
		if err := os.Mkdir(sub, 0o750); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(sub)
		if err == nil {
			t.Fatal("expected error for directory")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for a directory")
		}
	})

	t.Run("config name resolves yaml then yml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "work.yml", "workers: 3\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("work")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
	})

	t.Run("config name resolves in user config directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		t.Setenv("HOME", home)
		appDir := filepath.Join(home, appDirName)
		if err := os.MkdirAll(appDir, 0o750); err != nil {
			t.Fatalf("setup: %v", err)
		}
		writeConfig(t, appDir, "shared.yaml", "workers: 5\n")
		t.Chdir(t.TempDir())

		userDir, err := os.UserConfigDir()
		if err != nil || userDir != home {
			t.Skipf("user config dir not driven by XDG_CONFIG_HOME on this platform (%q)", userDir)
		}

		cfg, err := LoadConfig("shared")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 5 {
			t.Errorf("Workers = %d, want 5", cfg.Workers)
		}
	})

	t.Run("unknown config name lists searched paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "missing.yaml") || !strings.Contains(err.Error(), "missing.yml") {
			t.Errorf("error should list tried paths, got: %v", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("work")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least 2 entries", paths)
	}
	if paths[0] != "work.yaml" || paths[1] != "work.yml" {
		t.Errorf("SearchPaths()[:2] = %v, want current directory first", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, appDirName) {
			t.Errorf("user path %q should be under %s", p, appDirName)
		}
	}
}
