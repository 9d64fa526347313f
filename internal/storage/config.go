package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// Database overrides the default store path. A leading "~/" is
	// expanded to the home directory.
	Database        string  `json:"database"`
	// Backend selects the store format; empty means the text file.
	Backend         Backend `json:"backend"`
	CopyToClipboard bool    `json:"copyToClipboard"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig reads config from the JSON file.
// Returns defaults if the file doesn't exist; the file is never created.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &config, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &config, nil
}

// DatabasePath resolves the store path: an explicit override wins, then the
// configured database, then DefaultDatabasePath.
func (c *Config) DatabasePath(override string) string {
	if override != "" {
		return override
	}
	if c.Database != "" {
		return expandHome(c.Database)
	}
	return DefaultDatabasePath()
}

// DefaultConfigFilePath returns the default config path: ~/.config/curdirmark/config.json
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "curdirmark", "config.json"), nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
