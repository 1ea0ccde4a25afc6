package config

import (
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds process-level settings. Everything defaults to a local,
// zero-setup run in the current directory.
type Config struct {
	DataDir     string `envconfig:"UNIFLOW_DATA_DIR" default:"."`
	DBFile      string `envconfig:"UNIFLOW_DB_FILE" default:"uniflow.db"`
	Environment string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DBPath returns the full path of the store file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}
