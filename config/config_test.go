package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Editor.GridSize != 20 {
		t.Errorf("GridSize = %v, want 20", cfg.Editor.GridSize)
	}
	if cfg.Editor.HitThreshold != 15 {
		t.Errorf("HitThreshold = %v, want 15", cfg.Editor.HitThreshold)
	}
	if cfg.Editor.CornerRadius != 8 {
		t.Errorf("CornerRadius = %v, want 8", cfg.Editor.CornerRadius)
	}
	if !cfg.Editor.SnapToGrid {
		t.Error("SnapToGrid should default to true")
	}
	if cfg.Editor.EdgeType != "orthogonal" {
		t.Errorf("EdgeType = %q, want orthogonal", cfg.Editor.EdgeType)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file errored: %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings", "orthodrag.yaml")

	cfg := Defaults()
	cfg.Editor.GridSize = 10
	cfg.Editor.EdgeType = "rounded"
	cfg.Logging.Level = "debug"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("editor: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML should error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ORTHODRAG_GRID_SIZE", "40")
	t.Setenv("ORTHODRAG_SNAP", "false")
	t.Setenv("ORTHODRAG_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Editor.GridSize != 40 {
		t.Errorf("GridSize = %v, want env override 40", cfg.Editor.GridSize)
	}
	if cfg.Editor.SnapToGrid {
		t.Error("SnapToGrid should be overridden to false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}
