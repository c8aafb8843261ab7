package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"3318"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`

	// Secrets (prefer env variables)
	SessionSecret string `env:"SESSION_SECRET"`
	IPHashSalt    string `env:"IP_HASH_SALT"`

	SiteURL  string `env:"SITE_URL" envDefault:"http://localhost:3318"`
	LoginURL string `env:"LOGIN_URL" envDefault:"/login"`

	// Billing
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`

	// Email
	ResendAPIKey       string `env:"RESEND_API_KEY"`
	ContactFromAddress string `env:"CONTACT_FROM_ADDRESS" envDefault:"Exhibitly <contact@exhibitly.app>"`

	// Object storage
	UploadBucket        string        `env:"UPLOAD_BUCKET"`
	UploadRegion        string        `env:"UPLOAD_REGION" envDefault:"us-east-1"`
	UploadEndpoint      string        `env:"UPLOAD_ENDPOINT"`
	UploadPublicBaseURL string        `env:"UPLOAD_PUBLIC_BASE_URL"`
	UploadURLExpiry     time.Duration `env:"UPLOAD_URL_EXPIRY" envDefault:"15m"`
}

// ParseFlags reads the environment, then lets CLI flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("exhibitly", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "Public base URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Session JWT secret (prefer env)")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", cfg.IPHashSalt, "IP hash salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}
	if cfg.IPHashSalt == "" {
		return Config{}, errors.New("IP_HASH_SALT required")
	}

	if cfg.UploadURLExpiry <= 0 {
		return Config{}, errors.New("UPLOAD_URL_EXPIRY must be positive")
	}

	return cfg, nil
}
