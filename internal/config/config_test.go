package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Spring <= 0 {
		t.Error("spring should be positive")
	}
	if cfg.Mass <= 0 {
		t.Error("mass should be positive")
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Plot != "x" {
		t.Errorf("expected default plot x, got %s", cfg.Plot)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Damping = 0.25
	cfg.DriveAmp = 1.5
	cfg.DriveFreq = 0.9

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Damping != 0.25 {
		t.Errorf("expected damping 0.25, got %f", loaded.Damping)
	}
	if loaded.DriveAmp != 1.5 {
		t.Errorf("expected drive amp 1.5, got %f", loaded.DriveAmp)
	}
	if loaded.Steps != cfg.Steps {
		t.Errorf("expected steps %d, got %d", cfg.Steps, loaded.Steps)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("damped")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Damping != 0.5 {
		t.Errorf("expected damping 0.5, got %f", cfg.Damping)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestNewModel(t *testing.T) {
	cfg := GetPreset("driven")
	m := cfg.NewModel()

	if m.Spring() != cfg.Spring {
		t.Errorf("expected spring %f, got %f", cfg.Spring, m.Spring())
	}
	if m.Steps() != cfg.Steps {
		t.Errorf("expected steps %d, got %d", cfg.Steps, m.Steps())
	}
	if m.DriveFrequency() != cfg.DriveFreq {
		t.Errorf("expected drive freq %f, got %f", cfg.DriveFreq, m.DriveFrequency())
	}
}
