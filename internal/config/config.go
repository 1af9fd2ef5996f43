// Package config provides configuration types, defaults, and
// persistence for lacquer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/calegray/lacquer/internal/log"
	"github.com/calegray/lacquer/internal/theme"
)

// Config holds all configuration options for lacquer.
type Config struct {
	Scheme     string      `mapstructure:"scheme"`      // built-in preset name
	SchemeFile string      `mapstructure:"scheme_file"` // path to a scheme YAML file; wins over Scheme
	Output     string      `mapstructure:"output"`      // default export path ("" means stdout)
	AutoReload bool        `mapstructure:"auto_reload"` // rebuild on scheme-file changes
	Fonts      FontsConfig `mapstructure:"fonts"`
}

// FontsConfig holds the font families and sizes stamped into text
// fragments.
type FontsConfig struct {
	UI         string  `mapstructure:"ui"`
	Buffer     string  `mapstructure:"buffer"`
	UISize     float64 `mapstructure:"ui_size"`
	BufferSize float64 `mapstructure:"buffer_size"`
}

// Defaults returns the stock configuration.
func Defaults() Config {
	return Config{
		Scheme:     "one-dark",
		AutoReload: true,
		Fonts: FontsConfig{
			UI:         "Zed Sans",
			Buffer:     "Zed Mono",
			UISize:     14,
			BufferSize: 15,
		},
	}
}

// Validate checks the scheme selection against the built-in presets.
// A scheme file is validated when it is loaded, not here.
func Validate(cfg Config) error {
	if cfg.SchemeFile != "" {
		return nil
	}
	if cfg.Scheme == "" {
		return nil
	}
	if _, ok := theme.Presets[cfg.Scheme]; !ok {
		return fmt.Errorf("unknown scheme %q: run 'lacquer schemes' to list presets", cfg.Scheme)
	}
	return nil
}

// ResolveScheme builds the ColorScheme the configuration selects.
func ResolveScheme(cfg Config) (*theme.ColorScheme, error) {
	if cfg.SchemeFile != "" {
		return theme.Load(cfg.SchemeFile)
	}
	name := cfg.Scheme
	if name == "" {
		name = "one-dark"
	}
	preset, ok := theme.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown scheme %q", name)
	}
	return preset.Scheme(), nil
}

// DefaultConfigTemplate returns the default config as a YAML string
// with comments.
func DefaultConfigTemplate() string {
	return `# Lacquer Configuration

# Built-in scheme to render (run 'lacquer schemes' to list presets):
scheme: one-dark

# Or point at a scheme YAML file; this wins over 'scheme' when set.
# scheme_file: ~/.config/lacquer/my-scheme.yaml

# Default export path ("" writes to stdout)
# output: theme.json

# Rebuild automatically when the scheme file changes (export --watch, preview)
auto_reload: true

# Fonts stamped into text fragments
fonts:
  ui: Zed Sans
  buffer: Zed Mono
  ui_size: 14
  buffer_size: 15
`
}

// WriteDefaultConfig creates a config file at the given path with
// default settings and comments. Creates the parent directory if it
// doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
