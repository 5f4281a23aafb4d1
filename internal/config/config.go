package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	// Server settings
	Port        string `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:""`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	// Location used to pick the time-of-day theme
	Timezone string `env:"SITE_TIMEZONE" envDefault:"America/Chicago"`

	Leads LeadsConfig
	Entry EntryConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LeadsConfig holds lead-capture form settings
type LeadsConfig struct {
	// SubmitDelay is the simulated network delay before a lead is accepted
	SubmitDelay time.Duration `env:"LEAD_SUBMIT_DELAY" envDefault:"1500ms"`
	// RatePerMinute is the per-IP submission budget
	RatePerMinute int `env:"LEAD_RATE_PER_MINUTE" envDefault:"10"`
	// RateBurst is the per-IP burst size
	RateBurst int `env:"LEAD_RATE_BURST" envDefault:"3"`
}

// EntryConfig holds cinematic entry screen settings
type EntryConfig struct {
	// ExitDelay is the time between the orb click flash and navigation
	ExitDelay time.Duration `env:"ENTRY_EXIT_DELAY" envDefault:"1200ms"`
	// AllowedOrigins restricts websocket upgrades. Empty means same host only.
	AllowedOrigins []string `env:"ENTRY_ALLOWED_ORIGINS" envSeparator:","`
}

// ListenAddr returns the host:port the HTTP server binds to
func (c *Config) ListenAddr() string {
	port := strings.TrimPrefix(c.Port, ":")
	return c.Address + ":" + port
}

// Location resolves Timezone, falling back to UTC when it is unknown
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Validate rejects settings that would make the site misbehave
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("WEBSITE_PORT must not be empty")
	}
	if c.Leads.SubmitDelay < 0 {
		return fmt.Errorf("LEAD_SUBMIT_DELAY must not be negative")
	}
	if c.Leads.RatePerMinute <= 0 {
		return fmt.Errorf("LEAD_RATE_PER_MINUTE must be positive, got %d", c.Leads.RatePerMinute)
	}
	if c.Leads.RateBurst <= 0 {
		return fmt.Errorf("LEAD_RATE_BURST must be positive, got %d", c.Leads.RateBurst)
	}
	if c.Entry.ExitDelay < 0 {
		return fmt.Errorf("ENTRY_EXIT_DELAY must not be negative")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("SITE_TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Parse loads configuration from environment variables without logging
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("listen", cfg.ListenAddr()),
		slog.String("timezone", cfg.Timezone),
		slog.Duration("lead_submit_delay", cfg.Leads.SubmitDelay),
	)

	return cfg, nil
}
