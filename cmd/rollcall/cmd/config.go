package cmd

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the serve configuration.
type Config struct {
	Upstream UpstreamConfig `yaml:"upstream"`
	Web      WebConfig      `yaml:"web"`
	Session  SessionConfig  `yaml:"session"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Verbose  bool           `yaml:"-"` // set via CLI flag
}

// UpstreamConfig points at the activity sign-up service.
type UpstreamConfig struct {
	BaseURL string `yaml:"base_url"` // service base URL (default: http://localhost:8000)
	Timeout string `yaml:"timeout"`  // request timeout (default: 15s)
}

// WebConfig contains page server settings.
type WebConfig struct {
	Address       string `yaml:"address"`        // listen address (default: :8080)
	CSRFKey       string `yaml:"csrf_key"`       // 32+ byte key for form tokens; ROLLCALL_CSRF_KEY overrides
	SecureCookies bool   `yaml:"secure_cookies"` // set Secure on cookies (behind TLS)
}

// SessionConfig contains session store settings.
type SessionConfig struct {
	TTL string `yaml:"ttl"` // session lifetime (default: 24h)
}

// MetricsConfig contains the metrics server settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // serve Prometheus metrics
	Address string `yaml:"address"` // metrics listen address (default: :9090)
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// setDefaults sets default values for missing config fields.
func (c *Config) setDefaults() {
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = "http://localhost:8000"
	}
	if c.Upstream.Timeout == "" {
		c.Upstream.Timeout = "15s"
	}
	if c.Web.Address == "" {
		c.Web.Address = ":8080"
	}
	if c.Session.TTL == "" {
		c.Session.TTL = "24h"
	}
	if c.Metrics.Address == "" {
		c.Metrics.Address = ":9090"
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if _, err := time.ParseDuration(c.Upstream.Timeout); err != nil {
		return fmt.Errorf("invalid upstream.timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.Session.TTL); err != nil {
		return fmt.Errorf("invalid session.ttl: %w", err)
	}
	if len(c.Web.CSRFKey) < 32 {
		return fmt.Errorf("web.csrf_key must be at least 32 bytes (or set ROLLCALL_CSRF_KEY)")
	}
	return nil
}

// UpstreamTimeout returns the parsed upstream timeout. Call Validate first.
func (c *Config) UpstreamTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Upstream.Timeout)
	return d
}

// SessionTTL returns the parsed session lifetime. Call Validate first.
func (c *Config) SessionTTL() time.Duration {
	d, _ := time.ParseDuration(c.Session.TTL)
	return d
}
