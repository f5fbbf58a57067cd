// Package config loads the azmap configuration: defaults, then the YAML
// config file, then AZMAP_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// ZoomConfig bounds the zoom controls.
type ZoomConfig struct {
	Step float64 `yaml:"step" koanf:"step"`
	Min  float64 `yaml:"min" koanf:"min"`
	Max  float64 `yaml:"max" koanf:"max"`
}

// LayoutConfig sets the radii of the initial circular placement.
type LayoutConfig struct {
	PrimaryRadius float64 `yaml:"primary_radius" koanf:"primary_radius"`
	SubRadius     float64 `yaml:"sub_radius" koanf:"sub_radius"`
}

// Config is the top-level azmap configuration, corresponding to azmap.yml.
type Config struct {
	Port        int          `yaml:"port" koanf:"port"`
	DataDir     string       `yaml:"data_dir" koanf:"data_dir"`
	LogLevel    string       `yaml:"log_level" koanf:"log_level"`
	LogFormat   string       `yaml:"log_format" koanf:"log_format"`
	CatalogFile string       `yaml:"catalog_file" koanf:"catalog_file"`
	Zoom        ZoomConfig   `yaml:"zoom" koanf:"zoom"`
	Layout      LayoutConfig `yaml:"layout" koanf:"layout"`
}

// DefaultConfig returns a Config with the stock settings: the zoom step
// and bounds the widget was tuned with, and the two layout rings.
func DefaultConfig() *Config {
	return &Config{
		Port:      8080,
		DataDir:   "data",
		LogLevel:  "info",
		LogFormat: "console",
		Zoom:      ZoomConfig{Step: 0.2, Min: 0.5, Max: 2.0},
		Layout:    LayoutConfig{PrimaryRadius: 300, SubRadius: 120},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (AZMAP_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: AZMAP_PORT -> port, etc.
	if err := k.Load(env.Provider("AZMAP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "AZMAP_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Zoom.Step <= 0 {
		return fmt.Errorf("zoom.step must be positive")
	}
	if c.Zoom.Min <= 0 || c.Zoom.Max <= c.Zoom.Min {
		return fmt.Errorf("zoom bounds must satisfy 0 < min < max")
	}
	if c.Layout.PrimaryRadius <= 0 || c.Layout.SubRadius <= 0 {
		return fmt.Errorf("layout radii must be positive")
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log_format %q: must be console or json", c.LogFormat)
	}
	return nil
}
