package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// Config holds the runtime settings for the server and CLI. Secrets can be
// kept out of the file and supplied via environment variables instead.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	APIBaseURL string `yaml:"api_base_url"`

	// StoreBackend selects "bolt" (default) or "memory". The memory
	// backend exists for demos and tests.
	StoreBackend string `yaml:"store_backend"`
	DBPath       string `yaml:"db_path"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	AuthEnabled bool `yaml:"auth_enabled"`
	// APIKeys maps sha256 hex digests of bearer keys to user IDs.
	APIKeys map[string]string `yaml:"api_keys"`

	// DigestSchedule is a cron expression for the in-server reminder
	// digest. Empty disables the scheduler.
	DigestSchedule string `yaml:"digest_schedule"`
	ResendAPIKey   string `yaml:"resend_api_key"`
	DigestFrom     string `yaml:"digest_from"`

	AuthToken string `yaml:"auth_token"`
}

// Load reads the YAML config named by SHOWUP_CONFIG (default config.yaml)
// and applies environment overrides.
func Load() (*Config, error) {
	path := os.Getenv("SHOWUP_CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = "http://localhost:8080"
	}
	if c.StoreBackend == "" {
		c.StoreBackend = "bolt"
	}
	if c.DBPath == "" {
		c.DBPath = "showup.db"
	}
	if c.DigestFrom == "" {
		c.DigestFrom = "ShowUp <reminders@showup.app>"
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SHOWUP_RESEND_API_KEY"); v != "" {
		c.ResendAPIKey = v
	}
	if v := os.Getenv("SHOWUP_AUTH_TOKEN"); v != "" {
		c.AuthToken = v
	}
	if v := os.Getenv("SHOWUP_DB_PATH"); v != "" {
		c.DBPath = v
	}
}
