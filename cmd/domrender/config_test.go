package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigDefaultsAndOverrides(t *testing.T) {
	path := writeFile(t, "domrender.toml", `
root = " main "
trace = "debug"
sync_attributes = false
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Root != "main" {
		t.Fatalf("unexpected root: %q", cfg.Root)
	}
	if cfg.Trace != "debug" {
		t.Fatalf("unexpected trace level: %q", cfg.Trace)
	}
	if cfg.SyncAttributes {
		t.Fatalf("expected attribute sync disabled")
	}
	if cfg.Color != colorAuto {
		t.Fatalf("expected default color mode, have %q", cfg.Color)
	}
}

func TestLoadConfigEmptyRootKeepsDefault(t *testing.T) {
	cfg, err := loadConfig(writeFile(t, "domrender.toml", `root = ""`))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Root != "body" {
		t.Fatalf("unexpected root: %q", cfg.Root)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	for _, content := range []string{
		`color = "sometimes"`,
		`trace = "verbose"`,
		`colour = "never"`,
		`root = [`,
	} {
		if _, err := loadConfig(writeFile(t, "domrender.toml", content)); err == nil {
			t.Fatalf("expected error for config %q", content)
		}
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing config")
	}
}
