package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	AuthSecret   string `mapstructure:"AUTH_SECRET"`
	AuthIssuer   string `mapstructure:"AUTH_ISSUER"`
	AuthAudience string `mapstructure:"AUTH_AUDIENCE"`
	TokenTTLMin  int    `mapstructure:"TOKEN_TTL_MIN"`

	SessionTTLMin   int `mapstructure:"SESSION_TTL_MIN"`
	SessionSweepMin int `mapstructure:"SESSION_SWEEP_MIN"`
	MaxSessions     int `mapstructure:"MAX_SESSIONS"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("AUTH_ISSUER", "eidefo")
	v.SetDefault("AUTH_AUDIENCE", "eidefo-api")
	v.SetDefault("TOKEN_TTL_MIN", 480)
	v.SetDefault("SESSION_TTL_MIN", 120)
	v.SetDefault("SESSION_SWEEP_MIN", 5)
	v.SetDefault("MAX_SESSIONS", 1000)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("AUTH_SECRET")
	v.BindEnv("AUTH_ISSUER")
	v.BindEnv("AUTH_AUDIENCE")
	v.BindEnv("TOKEN_TTL_MIN")
	v.BindEnv("SESSION_TTL_MIN")
	v.BindEnv("SESSION_SWEEP_MIN")
	v.BindEnv("MAX_SESSIONS")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.IsDev() && cfg.AuthSecret == "" {
		log.Println("WARNING: AUTH_SECRET not set; using an insecure development secret.")
		log.Println("WARNING: Set ENV=production and AUTH_SECRET before deploying.")
		cfg.AuthSecret = "eidefo-dev-secret-do-not-use-in-production"
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMin) * time.Minute
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMin) * time.Minute
}

func (c *Config) SessionSweep() time.Duration {
	return time.Duration(c.SessionSweepMin) * time.Minute
}

// Validate checks that the configuration is safe to run. Outside development
// a real signing secret is mandatory; the session and token windows must be
// positive.
func (c *Config) Validate() error {
	if !c.IsDev() {
		if c.AuthSecret == "" {
			return fmt.Errorf("AUTH_SECRET is required when ENV=%q", c.Env)
		}
		if len(c.AuthSecret) < 32 {
			return fmt.Errorf("AUTH_SECRET must be at least 32 characters, got %d", len(c.AuthSecret))
		}
	}
	if c.TokenTTLMin <= 0 {
		return fmt.Errorf("TOKEN_TTL_MIN must be positive, got %d", c.TokenTTLMin)
	}
	if c.SessionTTLMin <= 0 {
		return fmt.Errorf("SESSION_TTL_MIN must be positive, got %d", c.SessionTTLMin)
	}
	if c.SessionSweepMin <= 0 {
		return fmt.Errorf("SESSION_SWEEP_MIN must be positive, got %d", c.SessionSweepMin)
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("MAX_SESSIONS must not be negative, got %d", c.MaxSessions)
	}
	return nil
}
