package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Date.Timezone != "UTC" {
		t.Errorf("expected UTC timezone, got %q", cfg.Date.Timezone)
	}
	if cfg.HTTPServer.ShutdownTimeout != 5*time.Second {
		t.Errorf("unexpected shutdown timeout %v", cfg.HTTPServer.ShutdownTimeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
	if len(cfg.HTTPServer.TrustedProxies) != 0 {
		t.Errorf("expected no trusted proxies by default, got %v", cfg.HTTPServer.TrustedProxies)
	}
}

func TestLoad_PortEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 8081 {
		t.Errorf("expected PORT to be used, got %d", cfg.HTTPServer.Port)
	}
}

func TestLoad_PortEnvNotNumeric(t *testing.T) {
	t.Setenv("PORT", "abc")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric PORT")
	}
}

func TestLoadFile_Valid(t *testing.T) {
	t.Setenv("PORT", "")
	p := writeConfig(t, `environment:
  name: production
http_server:
  port: 9000
  mode: debug
  shutdown_timeout: 2s
  trusted_proxies: "10.0.0.0/8, 192.168.1.2"
date:
  timezone: Europe/Berlin
rate_limit:
  requests_per_min: 0
cors:
  allowed_origins: "https://a.example, https://b.example"
`)
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Environment.Name != "production" || cfg.HTTPServer.Port != 9000 || cfg.HTTPServer.Mode != "debug" {
		t.Errorf("unexpected server config: %+v %+v", cfg.Environment, cfg.HTTPServer)
	}
	if cfg.HTTPServer.ShutdownTimeout != 2*time.Second {
		t.Errorf("unexpected shutdown timeout %v", cfg.HTTPServer.ShutdownTimeout)
	}
	if len(cfg.HTTPServer.TrustedProxies) != 2 || cfg.HTTPServer.TrustedProxies[0] != "10.0.0.0/8" {
		t.Errorf("unexpected trusted proxies %v", cfg.HTTPServer.TrustedProxies)
	}
	if cfg.Date.Timezone != "Europe/Berlin" {
		t.Errorf("unexpected timezone %q", cfg.Date.Timezone)
	}
	if cfg.RateLimit.RequestsPerMin != 0 {
		t.Errorf("expected limiter disabled, got %d", cfg.RateLimit.RequestsPerMin)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Setenv("PORT", "")
	tests := []struct {
		name string
		yml  string
	}{
		{name: "bad timezone", yml: "date:\n  timezone: Mars/Olympus\n"},
		{name: "port out of range", yml: "http_server:\n  port: 70000\n"},
		{name: "zero shutdown timeout", yml: "http_server:\n  shutdown_timeout: 0s\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadFile(writeConfig(t, tc.yml)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}
