package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("SEED_FILE", "")

	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default HTTP_ADDR :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default LOG_LEVEL info, got %s", cfg.LogLevel)
	}
	if cfg.Environment != "development" {
		t.Fatalf("expected default ENVIRONMENT development, got %s", cfg.Environment)
	}
	if cfg.SeedFile != "" {
		t.Fatalf("expected empty SEED_FILE, got %s", cfg.SeedFile)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":18080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SEED_FILE", "/tmp/seed.json")

	cfg := Load()
	if cfg.HTTPAddr != ":18080" {
		t.Fatalf("expected HTTP_ADDR override, got %s", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected LOG_LEVEL override, got %s", cfg.LogLevel)
	}
	if cfg.Environment != "production" {
		t.Fatalf("expected ENVIRONMENT override, got %s", cfg.Environment)
	}
	if cfg.SeedFile != "/tmp/seed.json" {
		t.Fatalf("expected SEED_FILE override, got %s", cfg.SeedFile)
	}
}
