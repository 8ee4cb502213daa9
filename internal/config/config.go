// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the server configuration. Every field comes from an
// environment variable; a .env file in the working directory is read first.
type Config struct {
	Addr     string `env:"ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`

	// DatabaseURL switches projects, posts and contact storage to PostgreSQL.
	DatabaseURL string `env:"DATABASE_URL"`
	// ContentDir switches blog posts to Markdown files in this directory.
	// Ignored when DatabaseURL is set.
	ContentDir string `env:"CONTENT_DIR"`

	// FrontendURL is the origin allowed to call /api from a browser.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:8080"`

	ContactRecipient     string        `env:"CONTACT_RECIPIENT" envDefault:"isaac@isaacaji.com"`
	ContactRatePerMinute int           `env:"CONTACT_RATE_PER_MINUTE" envDefault:"5"`
	MailDelay            time.Duration `env:"MAIL_DELAY" envDefault:"300ms"`
	SendTimeout          time.Duration `env:"SEND_TIMEOUT" envDefault:"15s"`

	SMTP SMTP `envPrefix:"SMTP_"`
}

// SMTP configures real mail delivery. Empty Host keeps the logging stub.
type SMTP struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"noreply@isaacaji.com"`
	// Timeout bounds the dial and each SMTP command.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Load reads .env files (missing files are ignored; with no arguments
// ./.env is tried) and parses the environment into a Config. Variables
// already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that parse but cannot work.
func (c Config) Validate() error {
	if c.ContactRatePerMinute <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE must be positive, got %d", c.ContactRatePerMinute)
	}
	if c.SendTimeout <= 0 {
		return fmt.Errorf("SEND_TIMEOUT must be positive, got %v", c.SendTimeout)
	}
	if c.SMTP.Timeout <= 0 {
		return fmt.Errorf("SMTP_TIMEOUT must be positive, got %v", c.SMTP.Timeout)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
