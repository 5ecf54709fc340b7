package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := Load(&missing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Listen != ":8080" {
		t.Errorf("expected default listen :8080, got %s", cfg.Server.Listen)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected default read timeout 15s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.MaxBodySize != 1<<20 {
		t.Errorf("expected default max body size 1MiB, got %d", cfg.Server.MaxBodySize)
	}
	if cfg.Storage.Path != "./shield.db" {
		t.Errorf("expected default storage path ./shield.db, got %s", cfg.Storage.Path)
	}
	if cfg.Tracker.UpcomingWindowDays != 7 {
		t.Errorf("expected default upcoming window 7, got %d", cfg.Tracker.UpcomingWindowDays)
	}
	if !cfg.GPC.EnabledByDefault {
		t.Error("expected GPC enabled by default")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := []byte(`server:
  listen: ":9090"
  readtimeout: 45s
  allowedorigins:
    - https://shield.example.com
storage:
  path: /tmp/test-shield.db
gpc:
  enabledbydefault: false
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(&path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Listen != ":9090" {
		t.Errorf("expected listen :9090, got %s", cfg.Server.Listen)
	}
	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("expected read timeout 45s, got %v", cfg.Server.ReadTimeout)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://shield.example.com" {
		t.Errorf("unexpected allowed origins: %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Storage.Path != "/tmp/test-shield.db" {
		t.Errorf("expected storage path override, got %s", cfg.Storage.Path)
	}
	if cfg.GPC.EnabledByDefault {
		t.Error("expected GPC disabled via file")
	}

	// Untouched sections keep their defaults.
	if cfg.Tracker.UpcomingWindowDays != 7 {
		t.Errorf("expected default upcoming window 7, got %d", cfg.Tracker.UpcomingWindowDays)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHIELD_SERVER_LISTEN", ":7070")
	t.Setenv("SHIELD_STORAGE_PATH", "/tmp/env-shield.db")

	missing := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := Load(&missing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Listen != ":7070" {
		t.Errorf("expected env listen :7070, got %s", cfg.Server.Listen)
	}
	if cfg.Storage.Path != "/tmp/env-shield.db" {
		t.Errorf("expected env storage path, got %s", cfg.Storage.Path)
	}
}

func TestLoad_NilPathUsesDefaultLocation(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Listen == "" {
		t.Error("expected defaults to apply without a config file")
	}
}
