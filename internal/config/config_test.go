package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverlaysYAMLOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("warningsAsErrors: true\nintMax: 1000\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.WarningsAsErrors {
		t.Fatal("expected warningsAsErrors to be overlaid as true")
	}
	if cfg.IntMax != 1000 {
		t.Fatalf("expected intMax overlaid to 1000, got %d", cfg.IntMax)
	}
	if cfg.MaxIdentifierLength != Default().MaxIdentifierLength {
		t.Fatalf("expected unrelated fields to keep their defaults, got %d", cfg.MaxIdentifierLength)
	}
}
