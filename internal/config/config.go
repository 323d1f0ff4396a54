package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration, populated from environment
// variables.
type Config struct {
	// HTTPAddr is the HTTP listen address.
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":3000"`
	// DBPath is the SQLite database file path.
	DBPath string `envconfig:"DB_PATH" default:"food.db"`
	// CookieSecret signs the session and admin cookies.
	CookieSecret string `envconfig:"COOKIE_SECRET"`
	// AdminPassword is the shared secret granting the admin capability.
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	// PublicDir is served as static content (menu images, SPA assets).
	PublicDir string `envconfig:"PUBLIC_DIR" default:"public"`
}

// Load loads configuration from environment variables and requires the
// secrets to be set.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.CookieSecret == "" {
		return nil, fmt.Errorf("COOKIE_SECRET environment variable is not set; required for production")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD environment variable is not set; required for production")
	}
	return &cfg, nil
}

// LoadWithDefaults is like Load but falls back to well-known development
// secrets when none are configured.
// WARNING: Only use in development! Use Load() in production.
func LoadWithDefaults() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.CookieSecret == "" {
		cfg.CookieSecret = "cep_secret_key"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
	}
	return &cfg, nil
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{HTTP: %s, DB: %s, Public: %s, Secrets: *** (masked) ***}", c.HTTPAddr, c.DBPath, c.PublicDir)
}
