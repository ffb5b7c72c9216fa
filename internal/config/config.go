// Package config handles loading, saving and defaulting of the gridsnap
// configuration file. The file is TOML, lives under the XDG config home and
// is created with defaults on first use.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// NormalFPS is the target frame rate for the interactive editor.
const NormalFPS = 60

// RGBA is a color as four 0-255 channels, red green blue alpha.
type RGBA [4]uint8

// Config is the root of the user configuration.
type Config struct {
	Input      InputConfig      `toml:"input"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// InputConfig maps modifiers and keys onto the editing operations. Modifier
// lists OR together; an empty snap modifier list means snapping is always
// active while a window drag is in flight.
type InputConfig struct {
	ColumnSplitModifiers []string `toml:"column_split_modifiers"`
	RowSplitModifiers    []string `toml:"row_split_modifiers"`
	SnapModifiers        []string `toml:"snap_modifiers"`
	GrowMarginKey        string   `toml:"grow_margin_key"`
	ShrinkMarginKey      string   `toml:"shrink_margin_key"`
	PresetKeys           []string `toml:"preset_keys"`
}

// AppearanceConfig controls how regions are drawn. CornerRadius and
// DividerWidth are in virtual display units.
type AppearanceConfig struct {
	Theme        string `toml:"theme"`
	Background   RGBA   `toml:"background"`
	Highlight    RGBA   `toml:"highlight"`
	Border       RGBA   `toml:"border"`
	CornerRadius int    `toml:"corner_radius"`
	DividerWidth int    `toml:"divider_width"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			ColumnSplitModifiers: []string{"ctrl"},
			RowSplitModifiers:    []string{"alt"},
			SnapModifiers:        []string{},
			GrowMarginKey:        "+",
			ShrinkMarginKey:      "-",
			PresetKeys:           []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
		Appearance: AppearanceConfig{
			Theme:        "dracula",
			Background:   RGBA{30, 30, 46, 255},
			Highlight:    RGBA{137, 180, 250, 120},
			Border:       RGBA{88, 91, 112, 255},
			CornerRadius: 9,
			DividerWidth: 24,
		},
	}
}

// GetConfigPath returns the path of the configuration file.
func GetConfigPath() (string, error) {
	if xdg.ConfigHome == "" {
		return "", fmt.Errorf("could not determine config directory")
	}
	return filepath.Join(xdg.ConfigHome, "gridsnap", "gridsnap.toml"), nil
}

// LoadUserConfig loads the configuration file, creating it with defaults if
// it does not exist. Unknown keys in the file are ignored; missing keys keep
// their defaults.
func LoadUserConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg); err != nil {
			return nil, fmt.Errorf("could not create default config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}
	return cfg, nil
}

// Overrides holds command line settings that win over the config file.
type Overrides struct {
	Theme        string
	DividerWidth int
}

// ApplyOverrides replaces config values with any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Theme != "" {
		c.Appearance.Theme = o.Theme
	}
	if o.DividerWidth > 0 {
		c.Appearance.DividerWidth = o.DividerWidth
	}
}

// SaveConfig writes the configuration to its file, creating the directory if
// needed.
func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# gridsnap configuration file\n")
	sb.WriteString("# Modifier names: shift, ctrl, alt, super\n")
	sb.WriteString("# Colors are [red, green, blue, alpha] with 0-255 channels\n\n")

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("could not write config file: %w", err)
	}
	return nil
}
