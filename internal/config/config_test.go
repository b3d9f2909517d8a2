package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PageSize != 5 || !cfg.Color {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if _, err := os.Stat(filepath.Join(dir, FileName)); err != nil {
		t.Fatalf("expected config file written on first run: %v", err)
	}
}

func TestLoadReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	contents := "page_size: 10\ndate_format: 02 Jan 2006\ncolor: false\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PageSize != 10 || cfg.DateFormat != "02 Jan 2006" || cfg.Color {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.DatabasePath() != filepath.Join(cfg.Dir(), DatabaseName) {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath())
	}
}

func TestLoadFileUsesExplicitPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(t.TempDir(), "custom.yml")
	if err := os.WriteFile(file, []byte("page_size: 3\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadFile(dir, file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PageSize != 3 {
		t.Fatalf("expected page size from explicit file, got %d", cfg.PageSize)
	}
	if cfg.DatabasePath() != filepath.Join(cfg.Dir(), DatabaseName) {
		t.Fatalf("database should stay in the data dir: %q", cfg.DatabasePath())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TASKDECK_PAGE_SIZE", "7")
	t.Setenv("TASKDECK_COLOR", "off")
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PageSize != 7 || cfg.Color {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("page_size: 0\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for page_size 0")
	}
}
