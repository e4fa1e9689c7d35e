package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:postomat.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Scheduler struct {
		MaxInFlight   int           `yaml:"max_in_flight" json:"max_in_flight" jsonschema:"default=5,description=Maximum concurrent firings per job"`
		SendTimeout   time.Duration `yaml:"send_timeout" json:"send_timeout" jsonschema:"default=30s,description=Per-destination delivery timeout"`
		MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,description=Destination fan-out width"`
	} `yaml:"scheduler" json:"scheduler" jsonschema:"description=Scheduler configuration"`

	Telegram TelegramConfig `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram bot API configuration"`

	Feeds FeedsConfig `yaml:"feeds" json:"feeds" jsonschema:"description=Feed polling configuration"`
}

// TelegramConfig holds bot API settings
type TelegramConfig struct {
	Token      string `yaml:"token" json:"token" jsonschema:"required,description=Bot API token (can use environment variable)"`
	RatePerSec int    `yaml:"rate_per_sec" json:"rate_per_sec" jsonschema:"default=25,description=API calls per second"`
	Debug      bool   `yaml:"debug" json:"debug" jsonschema:"default=false,description=Enable bot API debug logging"`
}

// FeedsConfig holds feed fetching settings
type FeedsConfig struct {
	FetchTimeout time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Postomat/1.0,description=User agent for feed requests"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:postomat.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for scheduler
	if cfg.Scheduler.MaxInFlight == 0 {
		cfg.Scheduler.MaxInFlight = 5
	}
	if cfg.Scheduler.SendTimeout == 0 {
		cfg.Scheduler.SendTimeout = 30 * time.Second
	}
	if cfg.Scheduler.MaxConcurrent == 0 {
		cfg.Scheduler.MaxConcurrent = 5
	}

	// set defaults for telegram
	if cfg.Telegram.RatePerSec == 0 {
		cfg.Telegram.RatePerSec = 25
	}

	// set defaults for feeds
	if cfg.Feeds.FetchTimeout == 0 {
		cfg.Feeds.FetchTimeout = 30 * time.Second
	}
	if cfg.Feeds.UserAgent == "" {
		cfg.Feeds.UserAgent = "Postomat/1.0"
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if cfg.Telegram.RatePerSec < 1 || cfg.Telegram.RatePerSec > 30 {
		return fmt.Errorf("telegram.rate_per_sec must be between 1 and 30")
	}

	if cfg.Scheduler.MaxInFlight < 1 {
		return fmt.Errorf("scheduler.max_in_flight must be at least 1")
	}
	if cfg.Scheduler.SendTimeout < time.Second {
		return fmt.Errorf("scheduler.send_timeout must be at least 1 second")
	}
	if cfg.Scheduler.MaxConcurrent < 1 {
		return fmt.Errorf("scheduler.max_concurrent must be at least 1")
	}

	if cfg.Feeds.FetchTimeout < time.Second {
		return fmt.Errorf("feeds.fetch_timeout must be at least 1 second")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetTelegramConfig returns bot API configuration
func (c *Config) GetTelegramConfig() TelegramConfig {
	return c.Telegram
}

// GetFeedsConfig returns feed fetching configuration
func (c *Config) GetFeedsConfig() FeedsConfig {
	return c.Feeds
}
