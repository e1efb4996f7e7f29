package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Web.CSRFKey = "0123456789abcdef0123456789abcdef"
	return cfg
}

func TestConfigValidate_Defaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}
	if cfg.Upstream.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q, want default", cfg.Upstream.BaseURL)
	}
	if cfg.UpstreamTimeout().Seconds() != 15 {
		t.Errorf("UpstreamTimeout = %v, want 15s", cfg.UpstreamTimeout())
	}
}

func TestConfigValidate_RejectsShortCSRFKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Web.CSRFKey = "too-short"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for short csrf key")
	}
}

func TestConfigValidate_RejectsInvalidDurations(t *testing.T) {
	cfg := validConfig()
	cfg.Upstream.Timeout = "not-a-duration"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for invalid upstream.timeout")
	}

	cfg = validConfig()
	cfg.Session.TTL = "eventually"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for invalid session.ttl")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rollcall.yaml")
	data := []byte(`
upstream:
  base_url: http://activities.mergington.edu
  timeout: 5s
web:
  address: ":9000"
  csrf_key: "0123456789abcdef0123456789abcdef"
metrics:
  enabled: true
`)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}

	if cfg.Upstream.BaseURL != "http://activities.mergington.edu" {
		t.Errorf("BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Web.Address != ":9000" {
		t.Errorf("Address = %q, want :9000", cfg.Web.Address)
	}
	// Unset fields still pick up defaults.
	if cfg.Metrics.Address != ":9090" {
		t.Errorf("Metrics.Address = %q, want default :9090", cfg.Metrics.Address)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
