package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSkeletonConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skeleton.json")
	data := `{"entry":{"x":1,"y":0},"fork":{"x":0.5,"y":0.5},"exits":[{"x":0,"y":0.5}],"areas":[{"x":0.25,"y":0.75,"major":true,"connect_to":"fork"}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	cfg, err := LoadSkeletonConfig(path)
	if err != nil {
		t.Fatalf("LoadSkeletonConfig failed: %v", err)
	}
	if cfg.Entry.X != 1 || cfg.Entry.Y != 0 {
		t.Errorf("Unexpected entry point: %+v", cfg.Entry)
	}
	if len(cfg.Exits) != 1 || len(cfg.Areas) != 1 {
		t.Errorf("Expected 1 exit and 1 area, got %d and %d", len(cfg.Exits), len(cfg.Areas))
	}
	if !cfg.Areas[0].Major || cfg.Areas[0].ConnectTo != "fork" {
		t.Errorf("Unexpected area config: %+v", cfg.Areas[0])
	}
}

func TestLoadSkeletonConfigOrDefaultFallback(t *testing.T) {
	cfg := LoadSkeletonConfigOrDefault(filepath.Join(t.TempDir(), "missing.json"))
	def := DefaultSkeletonConfig()
	if cfg.Entry != def.Entry || cfg.Fork != def.Fork {
		t.Error("Expected the built-in layout when the file is missing")
	}
	if len(cfg.Exits) != len(def.Exits) || len(cfg.Areas) != len(def.Areas) {
		t.Error("Expected the built-in exits and areas when the file is missing")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	cfg = LoadSkeletonConfigOrDefault(path)
	if cfg.Entry != def.Entry {
		t.Error("Expected the built-in layout when the file is malformed")
	}
}
