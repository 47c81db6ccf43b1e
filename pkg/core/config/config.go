// Package config loads application settings from .env, config/app.yaml and
// the environment, in that order of increasing precedence.
package config

import (
	"fmt"
	"os"
	"strconv"

	"franchise_dashboard/pkg/core/notify"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Addr        string `yaml:"addr"`
	DatabaseURL string `yaml:"database_url"`
	SQLitePath  string `yaml:"sqlite_path"`

	Orquest OrquestConfig      `yaml:"orquest"`
	Email   notify.EmailConfig `yaml:"email"`
}

type OrquestConfig struct {
	FunctionsURL string `yaml:"functions_url"`
	APIKey       string `yaml:"api_key"`
}

// Load reads .env (if present), then the YAML file at path (if present), then
// environment overrides, then defaults.
func Load(path string) (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Addr = ":" + v
	}
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.SQLitePath, "SQLITE_PATH")
	setString(&c.Orquest.FunctionsURL, "ORQUEST_FUNCTIONS_URL")
	setString(&c.Orquest.APIKey, "ORQUEST_API_KEY")
	setString(&c.Email.SMTPServer, "SMTP_SERVER")
	setString(&c.Email.SMTPUser, "SMTP_USER")
	setString(&c.Email.SMTPPass, "SMTP_PASS")
	setString(&c.Email.FromEmail, "SMTP_FROM")
	setString(&c.Email.AppURL, "APP_URL")
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Email.SMTPPort = port
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.SQLitePath == "" {
		c.SQLitePath = "data/franchise.db"
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
