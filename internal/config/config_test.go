package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.Zoom.Step != 0.2 || cfg.Zoom.Min != 0.5 || cfg.Zoom.Max != 2.0 {
		t.Errorf("zoom = %+v, want defaults", cfg.Zoom)
	}
	if cfg.Layout.PrimaryRadius != 300 || cfg.Layout.SubRadius != 120 {
		t.Errorf("layout = %+v, want defaults", cfg.Layout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "azmap.yml")
	data := `port: 9090
data_dir: /tmp/azmap
zoom:
  step: 0.1
  min: 0.25
  max: 4.0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}
	if cfg.DataDir != "/tmp/azmap" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if cfg.Zoom.Step != 0.1 || cfg.Zoom.Max != 4.0 {
		t.Errorf("zoom = %+v", cfg.Zoom)
	}
	// Untouched keys keep their defaults.
	if cfg.Layout.PrimaryRadius != 300 {
		t.Errorf("primary_radius = %v, want default 300", cfg.Layout.PrimaryRadius)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("AZMAP_PORT", "7000")
	t.Setenv("AZMAP_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 7000 {
		t.Errorf("port = %d, want env override 7000", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.LogLevel)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "azmap.yml")

	cfg := DefaultConfig()
	cfg.Port = 1234
	cfg.CatalogFile = "catalog.yml"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Port != 1234 || got.CatalogFile != "catalog.yml" {
		t.Errorf("round-tripped config = %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"zero zoom step", func(c *Config) { c.Zoom.Step = 0 }},
		{"inverted zoom bounds", func(c *Config) { c.Zoom.Min = 3; c.Zoom.Max = 1 }},
		{"negative radius", func(c *Config) { c.Layout.SubRadius = -1 }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
