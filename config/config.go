package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the server configuration read from the environment.
type Config struct {
	Port     string `env:"PORT" envDefault:"3001"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	DBURL    string `env:"DATABASE_URL"`
	RedisURL string `env:"REDIS_URL"`

	CatalogPath string `env:"CATALOG_PATH"`
	StaticDir   string `env:"STATIC_DIR"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	TrustedProxies     []string `env:"TRUSTED_PROXIES" envSeparator:","`

	FormTimeout     time.Duration `env:"FORM_TIMEOUT" envDefault:"5s"`
	FormRateLimit   int           `env:"FORM_RATE_LIMIT" envDefault:"20"`
	FormRateWindow  time.Duration `env:"FORM_RATE_WINDOW" envDefault:"1m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CartIdleTTL     time.Duration `env:"CART_IDLE_TTL" envDefault:"24h"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (Config, error) {
	// a missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FormRateLimit < 1 {
		return Config{}, fmt.Errorf("FORM_RATE_LIMIT must be positive, got %d", cfg.FormRateLimit)
	}
	if cfg.CartIdleTTL <= 0 {
		return Config{}, fmt.Errorf("CART_IDLE_TTL must be positive, got %s", cfg.CartIdleTTL)
	}
	if cfg.Production() && slices.ContainsFunc(cfg.CORSAllowedOrigins, func(o string) bool { return strings.TrimSpace(o) == "*" }) {
		return Config{}, errors.New("CORS_ALLOWED_ORIGINS must list origins in production, not *")
	}
	return cfg, nil
}

// Addr is the listen address.
func (c Config) Addr() string { return ":" + c.Port }

// Production reports whether APP_ENV is "production".
func (c Config) Production() bool { return c.AppEnv == "production" }
