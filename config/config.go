// Package config loads the application configuration from a YAML or JSON
// file with environment-variable overrides (INVESTCORE_ prefix).
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage" envconfig:"STORAGE"`
	Logging LoggingConfig `json:"logging" yaml:"logging" envconfig:"LOGGING"`
}

// StorageConfig selects and parameterizes the persistence provider.
// Defaults come from Default(), never from envconfig default tags: Process
// would re-apply a default tag whenever the env var is unset, wiping values
// already read from the config file.
type StorageConfig struct {
	Backend     string `json:"backend" yaml:"backend" envconfig:"BACKEND"`
	DBPath      string `json:"db_path,omitempty" yaml:"db_path,omitempty" envconfig:"DB_PATH"`
	RedisAddr   string `json:"redis_addr,omitempty" yaml:"redis_addr,omitempty" envconfig:"REDIS_ADDR"`
	LeadsKey    string `json:"leads_key" yaml:"leads_key" envconfig:"LEADS_KEY"`
	HoldingsKey string `json:"holdings_key" yaml:"holdings_key" envconfig:"HOLDINGS_KEY"`
}

// LoggingConfig contains logging parameters
type LoggingConfig struct {
	Level string `json:"level" yaml:"level" envconfig:"LEVEL"`
}

// Load returns the configuration from path (optional; "" skips the file),
// applies INVESTCORE_* environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := envconfig.Process("investcore", cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "memory":
	case "sqlite":
		if c.Storage.DBPath == "" {
			return fmt.Errorf("storage.db_path required for sqlite backend")
		}
	case "redis":
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("storage.redis_addr required for redis backend")
		}
	default:
		return fmt.Errorf("storage.backend must be 'memory', 'sqlite' or 'redis'")
	}

	if c.Storage.LeadsKey == "" || c.Storage.HoldingsKey == "" {
		return fmt.Errorf("storage.leads_key and storage.holdings_key are required")
	}
	if c.Storage.LeadsKey == c.Storage.HoldingsKey {
		return fmt.Errorf("storage.leads_key and storage.holdings_key must differ")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug|info|warn|error")
	}

	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:     "sqlite",
			DBPath:      "./investcore.sqlite",
			LeadsKey:    "investcore.leads",
			HoldingsKey: "investcore.holdings",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
