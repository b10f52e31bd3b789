package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds service and CLI settings.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	DataSource DataSourceConfig `yaml:"data_source"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// DataSourceConfig points at the service that owns employee and dependent
// records.
type DataSourceConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

func Default() Config {
	return Config{
		Server:     ServerConfig{Port: "8080"},
		DataSource: DataSourceConfig{URL: "http://localhost:3000", Timeout: "2s"},
		Logging:    LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("DATA_SOURCE_URL"); v != "" {
		c.DataSource.URL = v
	}
	if v := os.Getenv("DATA_SOURCE_TIMEOUT"); v != "" {
		c.DataSource.Timeout = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if _, err := c.DataSourceTimeout(); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

// DataSourceTimeout parses the configured request timeout.
func (c Config) DataSourceTimeout() (time.Duration, error) {
	if c.DataSource.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.DataSource.Timeout)
	if err != nil {
		return 0, fmt.Errorf("data_source.timeout: %w", err)
	}
	return d, nil
}
