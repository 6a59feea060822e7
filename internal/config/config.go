// Package config holds runtime configuration: defaults, an optional YAML
// config file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// ColorMode controls ANSI color output on the non-TUI surfaces
// (check mode, fatal errors).
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Duration wraps time.Duration so YAML values like "3s" decode directly.
type Duration time.Duration

// UnmarshalYAML decodes a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	dur, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(dur)
	return nil
}

// Config holds all runtime settings. Populated by [DefaultConfig], then
// optionally overlaid by a YAML config file via [LoadFile], then mutated by
// [ParseFlags] before being passed (by pointer) to packages that need it.
type Config struct {
	// FfprobeBin is the ffprobe binary name or path.
	FfprobeBin string `yaml:"ffprobe_bin"`

	// NotifyLifetime is how long a status notification stays visible.
	NotifyLifetime Duration `yaml:"notify_lifetime"`

	// LogFile appends session logs to a file; the terminal belongs to the
	// UI, so this is the only log sink. Empty disables logging.
	LogFile string `yaml:"log_file"`

	// ColorMode applies to check mode and startup errors only.
	ColorMode ColorMode `yaml:"color_mode"`

	// Set from flags, never from the config file.
	ConfigFile string `yaml:"-"` // Explicit --config path.
	CheckOnly  bool   `yaml:"-"` // Run diagnostics and exit.
	Verbose    bool   `yaml:"-"`
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the config file and CLI flags apply their overrides.
func DefaultConfig() Config {
	return Config{
		FfprobeBin:     "ffprobe",
		NotifyLifetime: Duration(3 * time.Second),
		ColorMode:      ColorAuto,
	}
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/mediascope/config.yaml (or the os.UserConfigDir
// equivalent). Empty when no user config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mediascope", "config.yaml")
}

// LoadFile overlays cfg with values from a YAML file, expanding environment
// variables in the file body first. A missing file is only an error when the
// path was requested explicitly; the absent default config is fine.
func LoadFile(path string, explicit bool, cfg *Config) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks field values after defaults, config file, and flags have
// all been applied.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.FfprobeBin, validation.Required),
		validation.Field(&c.NotifyLifetime,
			validation.Required, validation.Min(Duration(100*time.Millisecond))),
	)
}
