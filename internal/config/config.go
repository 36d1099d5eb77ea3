// Package config loads fls settings from a YAML file and merges them with
// command-line flags. Flags the user set always win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/harrison/fls/internal/logger"
	"gopkg.in/yaml.v3"
)

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists the valid color settings.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Config represents fls configuration options
type Config struct {
	// ShowHidden includes dot-files in every view
	ShowHidden bool `yaml:"show_hidden"`

	// Long selects the table view
	Long bool `yaml:"long"`

	// Tree selects the recursive tree view
	Tree bool `yaml:"tree"`

	// Depth bounds the tree view (0 = up to the safety ceiling)
	Depth int `yaml:"depth"`

	// Interactive wraps names in file:// hyperlinks
	Interactive bool `yaml:"interactive"`

	// Color is one of auto, always, never
	Color string `yaml:"color"`

	// Scheme names the color palette
	Scheme string `yaml:"scheme"`

	// RelativeTime renders modification times as "3 days ago"
	RelativeTime bool `yaml:"relative_time"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Depth:    0, // up to the ceiling
		Color:    ColorAuto,
		Scheme:   "default",
		LogLevel: "warn",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/fls/config.yaml, or the platform
// equivalent reported by os.UserConfigDir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "fls", "config.yaml"), nil
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields tell an explicit false/0 apart from an absent key
	type yamlConfig struct {
		ShowHidden   *bool   `yaml:"show_hidden"`
		Long         *bool   `yaml:"long"`
		Tree         *bool   `yaml:"tree"`
		Depth        *int    `yaml:"depth"`
		Interactive  *bool   `yaml:"interactive"`
		Color        *string `yaml:"color"`
		Scheme       *string `yaml:"scheme"`
		RelativeTime *bool   `yaml:"relative_time"`
		LogLevel     *string `yaml:"log_level"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.MergeWithFlags(Flags{
		ShowHidden:   yamlCfg.ShowHidden,
		Long:         yamlCfg.Long,
		Tree:         yamlCfg.Tree,
		Depth:        yamlCfg.Depth,
		Interactive:  yamlCfg.Interactive,
		Color:        yamlCfg.Color,
		Scheme:       yamlCfg.Scheme,
		RelativeTime: yamlCfg.RelativeTime,
		LogLevel:     yamlCfg.LogLevel,
	})

	return cfg, nil
}

// Flags carries the command-line overrides. A nil field means the flag
// was not given.
type Flags struct {
	ShowHidden   *bool
	Long         *bool
	Tree         *bool
	Depth        *int
	Interactive  *bool
	Color        *string
	Scheme       *string
	RelativeTime *bool
	LogLevel     *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(f Flags) {
	if f.ShowHidden != nil {
		c.ShowHidden = *f.ShowHidden
	}
	if f.Long != nil {
		c.Long = *f.Long
	}
	if f.Tree != nil {
		c.Tree = *f.Tree
	}
	if f.Depth != nil {
		c.Depth = *f.Depth
	}
	if f.Interactive != nil {
		c.Interactive = *f.Interactive
	}
	if f.Color != nil {
		c.Color = strings.ToLower(*f.Color)
	}
	if f.Scheme != nil {
		c.Scheme = strings.ToLower(*f.Scheme)
	}
	if f.RelativeTime != nil {
		c.RelativeTime = *f.RelativeTime
	}
	if f.LogLevel != nil {
		c.LogLevel = strings.ToLower(*f.LogLevel)
	}
}

// Validate validates the configuration values against the given scheme
// names. Returns an error if any values are invalid.
func (c *Config) Validate(schemes []string) error {
	if c.Depth < 0 {
		return fmt.Errorf("depth must be >= 0, got %d", c.Depth)
	}

	if !slices.Contains(ColorModes, c.Color) {
		return fmt.Errorf("invalid color %q, must be one of: %s", c.Color, strings.Join(ColorModes, ", "))
	}

	if !slices.Contains(schemes, c.Scheme) {
		return fmt.Errorf("invalid scheme %q, must be one of: %s", c.Scheme, strings.Join(schemes, ", "))
	}

	if !slices.Contains(logger.Levels, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: %s", c.LogLevel, strings.Join(logger.Levels, ", "))
	}

	return nil
}
