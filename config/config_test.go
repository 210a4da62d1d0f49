package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	t.Setenv("AUTH_MODE", "oauth")
	t.Setenv("OAUTH_CLIENT_ID", "app-client")
	t.Setenv("OAUTH_CLIENT_SECRET", "super-secret")
	t.Setenv("OAUTH_REDIRECT_URL", "https://app.example.com/auth/callback")
	t.Setenv("OAUTH_ISSUER_URL", "https://login.example.com")
	t.Setenv("OAUTH_SCOPE", "openid profile email")
	t.Setenv("DEV_AUTH_PERSON_ID", "dev-person")
	t.Setenv("DEV_AUTH_EMAIL", "dev@example.com")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	expected := AuthConfig{
		Mode: AuthModeOAuth,
		OAuth: OAuthConfig{
			ClientID:     "app-client",
			ClientSecret: "super-secret",
			RedirectURL:  "https://app.example.com/auth/callback",
			Scope:        "openid profile email",
			IssuerURL:    "https://login.example.com",
		},
		DevAuth: DevAuthConfig{
			PersonID: "dev-person",
			Name:     "Dev Person",
			Email:    "dev@example.com",
		},
	}
	if cfg.Auth != expected {
		t.Errorf("auth config mismatch:\n got: %+v\nwant: %+v", cfg.Auth, expected)
	}
}

func TestAppConfig_ParseAuthEnv_InvalidMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "ldap")

	var cfg AppConfig
	if err := env.Parse(&cfg); err == nil {
		t.Fatal("expected error for invalid auth mode, got none")
	}
}

func TestAppConfig_ParseDatabaseEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "identity")
	t.Setenv("DB_RUN_MIGRATIONS_ON_START", "false")
	t.Setenv("REDIS_URI", "redis.internal:6379")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	if cfg.Postgres.Host != "db.internal" {
		t.Errorf("expected db host db.internal, got %q", cfg.Postgres.Host)
	}
	if cfg.Postgres.Port != 5433 {
		t.Errorf("expected db port 5433, got %d", cfg.Postgres.Port)
	}
	if cfg.Postgres.Name != "identity" {
		t.Errorf("expected db name identity, got %q", cfg.Postgres.Name)
	}
	if cfg.Postgres.RunMigrationsOnStart {
		t.Error("expected RunMigrationsOnStart to be false")
	}
	if cfg.Redis.URI != "redis.internal:6379" {
		t.Errorf("expected redis uri redis.internal:6379, got %q", cfg.Redis.URI)
	}
}

func TestCacheConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected time.Duration
	}{
		{name: "zero falls back to default", input: 0, expected: 5 * time.Minute},
		{name: "negative falls back to default", input: -time.Minute, expected: 5 * time.Minute},
		{name: "positive is kept", input: 30 * time.Second, expected: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CacheConfig{ActiveProfileTTL: tt.input}
			c.Sanitize()
			if c.ActiveProfileTTL != tt.expected {
				t.Errorf("expected TTL %v, got %v", tt.expected, c.ActiveProfileTTL)
			}
		})
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Error("expected IsDev to be true when NODE_ENV=development")
	}
}
