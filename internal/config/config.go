// Package config loads service configuration from a YAML file with .env and
// environment-variable overrides, so secrets can live in .env locally and in
// real env vars on the deployment platform.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Mail      MailConfig      `yaml:"mail"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Addr returns the listen address, defaulting to :8080.
func (s ServerConfig) Addr() string {
	port := s.Port
	if port == 0 {
		port = 8080
	}
	return fmt.Sprintf("%s:%d", s.Host, port)
}

// DatabaseConfig holds the contact store connection string.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// RedisConfig holds the optional open-dedup Redis settings. An empty Addr
// disables the deduper.
type RedisConfig struct {
	Addr          string `yaml:"addr"`
	Password      string `yaml:"password"`
	DB            int    `yaml:"db"`
	DedupTTLHours int    `yaml:"dedup_ttl_hours"`
}

// DedupTTL returns the configured marker TTL; zero means no expiry.
func (r RedisConfig) DedupTTL() time.Duration {
	return time.Duration(r.DedupTTLHours) * time.Hour
}

// SMTPConfig holds the mail transport collaborator's settings.
type SMTPConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	From           string `yaml:"from"`
	FromName       string `yaml:"from_name"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the bounded send timeout, defaulting to 30s.
func (s SMTPConfig) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// MailConfig holds the welcome message settings. BaseURL is the public
// address the tracking beacon points back to.
type MailConfig struct {
	Subject      string `yaml:"subject"`
	TemplatePath string `yaml:"template_path"`
	BaseURL      string `yaml:"base_url"`
}

// AnalyticsConfig holds the outbound webhook settings.
type AnalyticsConfig struct {
	WebhookURL     string `yaml:"webhook_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the bounded forward timeout, defaulting to 5s.
func (a AnalyticsConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It loads a .env file first (no error if missing) so secrets can live in
// .env locally and in real env vars in production.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = p
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.SMTP.Username = v
		if cfg.SMTP.From == "" {
			cfg.SMTP.From = v
		}
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.Mail.BaseURL = v
	}
	if v := os.Getenv("ANALYTICS_WEBHOOK_URL"); v != "" {
		cfg.Analytics.WebhookURL = v
	}

	return cfg, nil
}

// Validate checks that the settings the service cannot run without are set.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	if c.SMTP.Host == "" {
		return fmt.Errorf("smtp.host is required")
	}
	if c.Mail.TemplatePath == "" {
		return fmt.Errorf("mail.template_path is required")
	}
	if c.Mail.BaseURL == "" {
		return fmt.Errorf("mail.base_url is required")
	}
	if c.Analytics.WebhookURL == "" {
		return fmt.Errorf("analytics.webhook_url is required")
	}
	return nil
}
