package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	FirebaseProject    string `env:"FIREBASE_PROJECT_ID,required,notEmpty"`
	FirebaseApiKey     string `env:"FIREBASE_API_KEY"`
	ServiceAccountJSON string `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	ServiceAccountPath string `env:"FIREBASE_SERVICE_ACCOUNT_PATH"`
	StorageBucket      string `env:"STORAGE_BUCKET"`
	MaxUploadBytes     int64  `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`

	// The admin account is recognised by e-mail only; there is no role field.
	AdminEmail      string `env:"ADMIN_EMAIL" envDefault:"admin@campuskart.com"`
	HolidayTimezone string `env:"HOLIDAY_TIMEZONE" envDefault:"Asia/Kolkata"`

	TicketRelayURL string `env:"TICKET_RELAY_URL"`
	SMTPHost       string `env:"SMTP_HOST"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser       string `env:"SMTP_USER"`
	SMTPPassword   string `env:"SMTP_PASSWORD"`
	SMTPFrom       string `env:"SMTP_FROM"`
	SupportInbox   string `env:"SUPPORT_INBOX"`
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Location resolves HOLIDAY_TIMEZONE, the zone in which holiday-mode calendar dates are read.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.HolidayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid HOLIDAY_TIMEZONE %q: %w", c.HolidayTimezone, err)
	}
	return loc, nil
}

func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SupportInbox != ""
}
