package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config keeps runtime settings for dayflow.
type Config struct {
	DBPath string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DBPath: strings.TrimSpace(os.Getenv("DAYFLOW_DB")),
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = filepath.Join(home, ".dayflow", "dayflow.db")
	}

	return cfg, nil
}
