package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("POMO_DB_PATH", "")
	t.Setenv("POMO_LOG_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.AutoStart {
		t.Fatal("AutoStart should default to false")
	}
	if filepath.Base(cfg.DBPath) != "pomo.db" || filepath.Base(filepath.Dir(cfg.DBPath)) != "pomo" {
		t.Fatalf("unexpected DBPath %q", cfg.DBPath)
	}
	if filepath.Base(cfg.LogFile) != "pomo.log" {
		t.Fatalf("unexpected LogFile %q", cfg.LogFile)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("POMO_DB_PATH", "/tmp/x.db")
	t.Setenv("POMO_LOG_FILE", "/tmp/x.log")
	t.Setenv("POMO_LOG_LEVEL", "debug")
	t.Setenv("POMO_AUTO_START", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := Config{DBPath: "/tmp/x.db", LogFile: "/tmp/x.log", LogLevel: "debug", AutoStart: true}
	if cfg != want {
		t.Fatalf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("POMO_AUTO_START", "sometimes")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
