package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	BaseURL     string `toml:"base_url,omitempty"`
	ListPath    string `toml:"list_path,omitempty"`
	CacheDir    string `toml:"cache_dir,omitempty"`
	CacheHours  int    `toml:"cache_hours,omitempty"`
	NoCache     bool   `toml:"no_cache,omitempty"`
	Workers     int    `toml:"workers,omitempty"`
	Strict      bool   `toml:"strict,omitempty"`
	LogLevel    string `toml:"log_level,omitempty"`
	LogFormat   string `toml:"log_format,omitempty"`
	AccentColor string `toml:"accent_color,omitempty"`
	OutputDir   string `toml:"output_dir,omitempty"`
}

// getConfigPath returns the absolute path to ~/.schgen.toml
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".schgen.toml"), nil
}

// Path returns where Load and Save keep the configuration.
func Path() (string, error) {
	return getConfigPath()
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if errors.Is(err, fs.ErrNotExist) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CacheDuration is the configured page cache lifetime, zero meaning the
// scraper's default.
func (c *AppConfig) CacheDuration() time.Duration {
	return time.Duration(c.CacheHours) * time.Hour
}

// Normalize trims string settings and clamps numeric ones.
func (c *AppConfig) Normalize() {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.ListPath = strings.TrimSpace(c.ListPath)
	c.CacheDir = strings.TrimSpace(c.CacheDir)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.AccentColor = strings.TrimSpace(c.AccentColor)
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.CacheHours < 0 {
		c.CacheHours = 0
	}
}
