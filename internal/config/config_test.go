package config

import "testing"

// TestLoadDefaults verifies development defaults are applied when the
// environment is empty.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if !cfg.IsDev() {
		t.Error("IsDev() must be true by default")
	}
}

// TestLoadProductionGuard verifies the default DB password is rejected in
// production.
func TestLoadProductionGuard(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	if _, err := Load(); err == nil {
		t.Error("Load must fail in production with the default POSTGRES_PASSWORD")
	}

	t.Setenv("POSTGRES_PASSWORD", "an-actual-secret")
	if _, err := Load(); err != nil {
		t.Errorf("Load with real password: %v", err)
	}
}

// TestDSNAndAddr verifies the derived connection strings.
func TestDSNAndAddr(t *testing.T) {
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_DB", "briefs")
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantDSN := "postgres://u:p@db:5433/briefs?sslmode=disable"
	if got := cfg.DSN(); got != wantDSN {
		t.Errorf("DSN() = %q, want %q", got, wantDSN)
	}
	if got := cfg.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9000", got)
	}
}
