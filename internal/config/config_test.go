package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble_sort" {
		t.Errorf("expected algorithm bubble_sort, got %s", cfg.Algorithm)
	}
	if cfg.Speed() != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", cfg.Speed())
	}
	if cfg.Width <= 0 {
		t.Error("width should be positive")
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algoviz.yaml")
	content := "algorithm: lcs\nspeed_ms: 120\nparams:\n  a: KITTEN\n  b: SITTING\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Algorithm != "lcs" || cfg.SpeedMs != 120 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("expected default theme, got %s", cfg.Theme)
	}
	if cfg.Params["a"] != "KITTEN" {
		t.Errorf("expected param a=KITTEN, got %v", cfg.Params["a"])
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.Algorithm = "dijkstra"
	cfg.Theme = "matrix"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Algorithm != "dijkstra" || loaded.Theme != "matrix" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadParams_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	if err := os.WriteFile(path, []byte(`{"coins": [1, 2, 5], "amount": 11}`), 0644); err != nil {
		t.Fatal(err)
	}
	params, err := LoadParams(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if params["amount"] != 11 {
		t.Errorf("expected amount 11, got %v (%T)", params["amount"], params["amount"])
	}
	coins, ok := params["coins"].([]any)
	if !ok || len(coins) != 3 {
		t.Errorf("unexpected coins: %v", params["coins"])
	}
}

func TestGetPreset(t *testing.T) {
	p, err := GetPreset("coin_change", "classic")
	if err != nil {
		t.Fatalf("expected preset, got %v", err)
	}
	if p.Params["amount"] != 6 {
		t.Errorf("expected amount 6, got %v", p.Params["amount"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, err := GetPreset("coin_change", "nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
	if _, err := GetPreset("nonexistent", "classic"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("quick_sort")
	want := []string{"duplicates", "random", "reversed", "single", "sorted"}
	if len(presets) != len(want) {
		t.Fatalf("expected %v, got %v", want, presets)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("expected %v, got %v", want, presets)
		}
	}

	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}
