// Package config loads the user-editable editor settings from a YAML
// file, with defaults and read-only environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EditorConfig holds the tunables of the drag engine and the demo.
type EditorConfig struct {
	GridSize         float64 `yaml:"grid_size"`
	SnapToGrid       bool    `yaml:"snap_to_grid"`
	HitThreshold     float64 `yaml:"hit_threshold"`
	CornerRadius     float64 `yaml:"corner_radius"`
	EdgeType         string  `yaml:"edge_type"` // straight | orthogonal | rounded
	RoundedCorners   bool    `yaml:"rounded_corners"`
	SimplifyOnCommit bool    `yaml:"simplify_on_commit"`
}

// LoggingConfig mirrors the log package options.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the persisted settings schema. config_version is bumped on
// backward-incompatible structure changes; unknown fields are ignored
// on unmarshal so older builds tolerate newer files.
type Config struct {
	ConfigVersion int           `yaml:"config_version"`
	Editor        EditorConfig  `yaml:"editor"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the shipped configuration.
func Defaults() Config {
	return Config{
		ConfigVersion: 1,
		Editor: EditorConfig{
			GridSize:         20,
			SnapToGrid:       true,
			HitThreshold:     15,
			CornerRadius:     8,
			EdgeType:         "orthogonal",
			RoundedCorners:   false,
			SimplifyOnCommit: true,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config at path, falling back to Defaults when the file
// does not exist. Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays ORTHODRAG_* environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("ORTHODRAG_GRID_SIZE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Editor.GridSize = f
		}
	}
	if v := os.Getenv("ORTHODRAG_SNAP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Editor.SnapToGrid = b
		}
	}
	if v := os.Getenv("ORTHODRAG_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ORTHODRAG_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}
