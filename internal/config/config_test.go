package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Prediction.IncludeOngoing {
		t.Errorf("expected IncludeOngoing default true")
	}
	if cfg.Prediction.SearchLimit != 1000 {
		t.Errorf("expected default search limit 1000, got %d", cfg.Prediction.SearchLimit)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Prediction.IncludeOngoing = false
	cfg.Prediction.WindowCount = 9
	cfg.UI.HiddenPatches = []float64{2.2}
	cfg.DatabasePath = "/tmp/elsewhere.db"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Prediction.IncludeOngoing {
		t.Errorf("expected IncludeOngoing false after round trip")
	}
	if got.Prediction.WindowCount != 9 {
		t.Errorf("expected window count 9, got %d", got.Prediction.WindowCount)
	}
	if len(got.UI.HiddenPatches) != 1 || got.UI.HiddenPatches[0] != 2.2 {
		t.Errorf("hidden patches lost in round trip: %v", got.UI.HiddenPatches)
	}
	if got.DatabaseFile() != "/tmp/elsewhere.db" {
		t.Errorf("expected database override to survive, got %s", got.DatabaseFile())
	}
}

func TestLoadCorruptReturnsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".fffish", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Prediction.SearchLimit != 1000 {
		t.Errorf("expected defaults for corrupt config, got %+v", cfg)
	}
}

func TestNormalizeClampsZeroes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".fffish", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	// Hand-edited config with unusable values
	body := `{"prediction": {"search_limit": -5, "window_count": 0}, "ui": {"refresh_secs": 0}}`
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Prediction.SearchLimit != 1000 {
		t.Errorf("expected clamped search limit, got %d", cfg.Prediction.SearchLimit)
	}
	if cfg.Prediction.WindowCount != 5 {
		t.Errorf("expected clamped window count, got %d", cfg.Prediction.WindowCount)
	}
	if cfg.UI.RefreshSecs != 60 {
		t.Errorf("expected clamped refresh interval, got %d", cfg.UI.RefreshSecs)
	}
}
