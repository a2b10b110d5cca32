// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Session backends.
const (
	BackendMemory   = "memory"
	BackendCookie   = "cookie"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// minSecretLength is the shortest HMAC key accepted for the cookie backend.
const minSecretLength = 32

// Config is read from the environment. All fields have usable defaults except the
// backend-specific connection settings.
type Config struct {
	Port    int    `envconfig:"PORT" default:"8080"`
	BaseURL string `envconfig:"BASE_URL" default:"https://example.com" description:"Public site URL used for robots.txt and sitemap.xml"`
	LogMode string `envconfig:"LOG_MODE" default:"dev" description:"dev or prod"`

	SessionBackend      string        `envconfig:"SESSION_BACKEND" default:"memory" description:"One of memory, cookie, redis, or postgres"`
	SessionSecret       string        `envconfig:"SESSION_SECRET" description:"HMAC key for the cookie backend"`
	SessionTTL          time.Duration `envconfig:"SESSION_TTL" default:"24h" description:"Upper bound on how long a stored submission is kept"`
	SessionCookieSecure bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`

	RedisAddr   string `envconfig:"REDIS_ADDR"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values and that the selected
// session backend has what it needs.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT must be between 0 and 65535, got %d", c.Port)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config error: BASE_URL must be an absolute URL, got %q", c.BaseURL)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("config error: SESSION_TTL must be positive, got %s", c.SessionTTL)
	}

	switch c.SessionBackend {
	case BackendMemory:
	case BackendCookie:
		if len(c.SessionSecret) < minSecretLength {
			return fmt.Errorf("config error: SESSION_SECRET must be at least %d bytes for the cookie backend", minSecretLength)
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("config error: REDIS_ADDR is required for the redis backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config error: unknown SESSION_BACKEND %q", c.SessionBackend)
	}

	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
