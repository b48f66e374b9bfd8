package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.AuthIssuer != "eidefo" || cfg.AuthAudience != "eidefo-api" {
		t.Errorf("expected default token issuer/audience, got %s/%s", cfg.AuthIssuer, cfg.AuthAudience)
	}
	if cfg.TokenTTLMin != 480 {
		t.Errorf("expected default token TTL 480, got %d", cfg.TokenTTLMin)
	}
	if cfg.SessionTTLMin != 120 || cfg.SessionSweepMin != 5 {
		t.Errorf("expected default session windows 120/5, got %d/%d", cfg.SessionTTLMin, cfg.SessionSweepMin)
	}
	if cfg.MaxSessions != 1000 {
		t.Errorf("expected default session cap 1000, got %d", cfg.MaxSessions)
	}
}

func TestLoad_DevFallbackSecret(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AuthSecret == "" {
		t.Error("expected an insecure development secret to be filled in")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("SESSION_TTL_MIN", "45")
	t.Setenv("MAX_SESSIONS", "10")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9100" {
		t.Errorf("expected port 9100, got %s", cfg.Port)
	}
	if cfg.SessionTTLMin != 45 {
		t.Errorf("expected session TTL 45, got %d", cfg.SessionTTLMin)
	}
	if cfg.MaxSessions != 10 {
		t.Errorf("expected session cap 10, got %d", cfg.MaxSessions)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" {
		t.Errorf("expected two CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestConfig_Modes(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() || c.IsProduction() {
		t.Error("expected development mode")
	}
	c.Env = "production"
	if c.IsDev() || !c.IsProduction() {
		t.Error("expected production mode")
	}
}

func TestConfig_Durations(t *testing.T) {
	c := &Config{TokenTTLMin: 480, SessionTTLMin: 120, SessionSweepMin: 5}
	if c.TokenTTL() != 8*time.Hour {
		t.Errorf("expected 8h token TTL, got %s", c.TokenTTL())
	}
	if c.SessionTTL() != 2*time.Hour {
		t.Errorf("expected 2h session TTL, got %s", c.SessionTTL())
	}
	if c.SessionSweep() != 5*time.Minute {
		t.Errorf("expected 5m sweep interval, got %s", c.SessionSweep())
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Env:             "production",
		AuthSecret:      "0123456789abcdef0123456789abcdef",
		TokenTTLMin:     480,
		SessionTTLMin:   120,
		SessionSweepMin: 5,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing secret outside dev", func(c *Config) { c.AuthSecret = "" }},
		{"short secret", func(c *Config) { c.AuthSecret = "too-short" }},
		{"zero token TTL", func(c *Config) { c.TokenTTLMin = 0 }},
		{"zero session TTL", func(c *Config) { c.SessionTTLMin = 0 }},
		{"zero sweep interval", func(c *Config) { c.SessionSweepMin = 0 }},
		{"negative session cap", func(c *Config) { c.MaxSessions = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected validation to fail")
			}
		})
	}

	// Development tolerates a missing secret; Load fills one in.
	dev := valid
	dev.Env = "development"
	dev.AuthSecret = ""
	if err := dev.Validate(); err != nil {
		t.Errorf("expected dev config to validate, got %v", err)
	}
}
