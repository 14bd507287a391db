package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxDepth != DefaultMaxEvalDepth {
		t.Errorf("expected default max depth, got %d", cfg.MaxDepth)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ash.yaml")
	data := "max_depth: 50\ntrace: true\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxDepth != 50 || !cfg.Trace || cfg.LogLevel != "debug" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ash.yaml")
	if err := os.WriteFile(path, []byte("max_depth: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadForScriptFindsSiblingConfig(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "main.ash")
	if err := os.WriteFile(filepath.Join(dir, "ash.yaml"), []byte("max_depth: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadForScript(script, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxDepth != 7 {
		t.Errorf("expected sibling config to apply, got %d", cfg.MaxDepth)
	}
}
