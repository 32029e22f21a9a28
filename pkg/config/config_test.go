package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AppName != "shop-api" {
		t.Errorf("AppName = %q, want %q", cfg.AppName, "shop-api")
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8000")
	}
	if cfg.RedisHost != "localhost" || cfg.RedisPort != 6379 {
		t.Errorf("Redis defaults = %s:%d, want localhost:6379", cfg.RedisHost, cfg.RedisPort)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "shop-api-test")
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AppName != "shop-api-test" {
		t.Errorf("AppName = %q, want %q", cfg.AppName, "shop-api-test")
	}
	if got := cfg.ListenAddr(); got != ":9000" {
		t.Errorf("ListenAddr = %q, want %q", got, ":9000")
	}
	if got := cfg.RedisAddr(); got != "cache.internal:6380" {
		t.Errorf("RedisAddr = %q, want %q", got, "cache.internal:6380")
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("REDIS_PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("Expected error for non-numeric REDIS_PORT")
	}
}
