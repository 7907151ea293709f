package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.TargetMaxHours != defaultTargetMaxHours {
		t.Errorf("TargetMaxHours = %.1f, want %.1f", cfg.TargetMaxHours, defaultTargetMaxHours)
	}
	if cfg.HorizonDays != defaultHorizonDays {
		t.Errorf("HorizonDays = %d, want %d", cfg.HorizonDays, defaultHorizonDays)
	}
}

func TestLoadFromFile(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "studyflow")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "log_level: debug\ntarget_max_hours: 5.5\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", base)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.TargetMaxHours != 5.5 {
		t.Errorf("TargetMaxHours = %.1f, want 5.5", cfg.TargetMaxHours)
	}
	if cfg.HorizonDays != defaultHorizonDays {
		t.Errorf("HorizonDays = %d, file should not disturb defaults it omits", cfg.HorizonDays)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("STUDYFLOW_LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want env override error", cfg.LogLevel)
	}
}
