package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.RateLimit.Capacity != 5 {
		t.Errorf("RateLimit.Capacity = %d, want 5", cfg.RateLimit.Capacity)
	}
	if cfg.Redis.Enabled {
		t.Errorf("Redis should be disabled by default")
	}
	if cfg.OpenAI.Model == "" {
		t.Errorf("OpenAI.Model must have a default")
	}
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
listen_addr: ":9090"
redis:
  enabled: true
  addr: "redis:6379"
negotiation:
  base_floor: 10.0
  accept_close_delta: 0.5
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want :9090", cfg.ListenAddr)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "redis:6379" {
		t.Errorf("Redis = %+v, want enabled at redis:6379", cfg.Redis)
	}
	if cfg.Negotiation.BaseFloor != 10.0 {
		t.Errorf("BaseFloor = %v, want 10.0", cfg.Negotiation.BaseFloor)
	}
	// Untouched fields keep their defaults.
	if cfg.RateLimit.Capacity != 5 {
		t.Errorf("RateLimit.Capacity = %d, want default 5", cfg.RateLimit.Capacity)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":7070")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.ListenAddr != ":7070" {
		t.Errorf("ListenAddr = %q, want :7070", cfg.ListenAddr)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "cache:6379" {
		t.Errorf("Redis = %+v, want enabled at cache:6379", cfg.Redis)
	}
}
