package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, "config", "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return path
}

const validConfig = `
http:
  port: 8085
backend:
  base_url: http://localhost:4000/api
redis:
  addrs:
    - localhost:6379
auth:
  jwt_secret: test-secret
`

func TestLoad_Valid(t *testing.T) {
	writeConfig(t, validConfig)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 8085 {
		t.Errorf("port = %d, want 8085", cfg.HTTP.Port)
	}
	if cfg.Backend.BaseURL != "http://localhost:4000/api" {
		t.Errorf("base_url = %s", cfg.Backend.BaseURL)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	writeConfig(t, validConfig)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Batch.Concurrency != 5 {
		t.Errorf("batch.concurrency = %d, want default 5", cfg.Batch.Concurrency)
	}
	if cfg.Auth.SessionTTLHours != 12 {
		t.Errorf("auth.session_ttl_hours = %d, want default 12", cfg.Auth.SessionTTLHours)
	}
	if cfg.Cache.TTLSec != 30 {
		t.Errorf("cache.ttl_sec = %d, want default 30", cfg.Cache.TTLSec)
	}
	if cfg.Backend.TimeoutSec != 30 {
		t.Errorf("backend.timeout_sec = %d, want default 30", cfg.Backend.TimeoutSec)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_BACKEND_URL", "http://backend:9000")
	writeConfig(t, `
http:
  port: 8085
backend:
  base_url: ${TEST_BACKEND_URL}
redis:
  addrs:
    - ${TEST_REDIS_ADDR:-localhost:6379}
auth:
  jwt_secret: ${TEST_JWT_SECRET:-fallback-secret}
`)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.BaseURL != "http://backend:9000" {
		t.Errorf("base_url = %s, want env value", cfg.Backend.BaseURL)
	}
	if cfg.Redis.Addrs[0] != "localhost:6379" {
		t.Errorf("redis addr = %s, want default", cfg.Redis.Addrs[0])
	}
	if cfg.Auth.JWTSecret != "fallback-secret" {
		t.Errorf("jwt_secret = %s, want default", cfg.Auth.JWTSecret)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	writeConfig(t, validConfig)

	if _, err := Load("nonexistent"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestMustLoad_PanicsOnMissingFile(t *testing.T) {
	writeConfig(t, validConfig)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing config file")
		}
	}()
	MustLoad("nonexistent")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad port", func(c *Config) { c.HTTP.Port = 0 }, "http.port"},
		{"missing backend", func(c *Config) { c.Backend.BaseURL = "" }, "backend.base_url"},
		{"missing redis", func(c *Config) { c.Redis.Addrs = nil }, "redis.addrs"},
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = "" }, "auth.jwt_secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}
			cfg.HTTP.Port = 8085
			cfg.Backend.BaseURL = "http://x"
			cfg.Redis.Addrs = []string{"localhost:6379"}
			cfg.Auth.JWTSecret = "s"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %s, want local", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %s, want prod", got)
	}
}
