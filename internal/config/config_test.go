package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.WebPort != 5680 {
		t.Errorf("WebPort=%d, want 5680", cfg.WebPort)
	}
	if cfg.ResolverModel != "gpt-4o-mini" {
		t.Errorf("ResolverModel=%q", cfg.ResolverModel)
	}
	if cfg.ResolverAPIKey != "" {
		t.Errorf("ResolverAPIKey should default to empty")
	}
	if cfg.ResolverTimeout != 60*time.Second {
		t.Errorf("ResolverTimeout=%v, want 60s", cfg.ResolverTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WEB_PORT", "8088")
	t.Setenv("RESOLVER_API_KEY", "sk-test")
	t.Setenv("RESOLVER_TIMEOUT_SECONDS", "15")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.WebPort != 8088 {
		t.Errorf("WebPort=%d, want 8088", cfg.WebPort)
	}
	if cfg.ResolverAPIKey != "sk-test" {
		t.Errorf("ResolverAPIKey=%q", cfg.ResolverAPIKey)
	}
	if cfg.ResolverTimeout != 15*time.Second {
		t.Errorf("ResolverTimeout=%v, want 15s", cfg.ResolverTimeout)
	}
}

func TestLoadIgnoresBadInt(t *testing.T) {
	t.Setenv("WEB_PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.WebPort != 5680 {
		t.Errorf("WebPort=%d, want default 5680 on unparsable value", cfg.WebPort)
	}
}
