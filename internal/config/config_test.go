package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("DM_MODEL", "")
	t.Setenv("DEBUG", "")

	cfg := Load()
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want default gpt-4o-mini", cfg.Model)
	}
	if cfg.Debug {
		t.Error("debug should default to off")
	}
	if cfg.NarrationConfigured() {
		t.Error("empty key should not count as configured")
	}
}

func TestPlaceholderKeyIsNotConfigured(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "your_api_key_here")

	if Load().NarrationConfigured() {
		t.Error("placeholder key should not count as configured")
	}
}

func TestRealKeyIsConfigured(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-123")
	t.Setenv("DM_MODEL", "gpt-4o")
	t.Setenv("DEBUG", "1")

	cfg := Load()
	if !cfg.NarrationConfigured() {
		t.Error("real key should count as configured")
	}
	if cfg.APIKey != "sk-test-123" {
		t.Errorf("key = %q, want the env value", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("model = %q, want env override", cfg.Model)
	}
	if !cfg.Debug {
		t.Error("DEBUG=1 should enable debug")
	}
}
