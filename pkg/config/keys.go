package config

import (
	"fmt"
	"strconv"
)

// Keys lists the settable keys in file order.
var Keys = []string{
	"base_url", "list_path", "cache_dir", "cache_hours", "no_cache",
	"workers", "strict", "log_level", "log_format", "accent_color", "output_dir",
}

// Get returns the value of key formatted for display.
func (c *AppConfig) Get(key string) (string, error) {
	switch key {
	case "base_url":
		return c.BaseURL, nil
	case "list_path":
		return c.ListPath, nil
	case "cache_dir":
		return c.CacheDir, nil
	case "cache_hours":
		return strconv.Itoa(c.CacheHours), nil
	case "no_cache":
		return strconv.FormatBool(c.NoCache), nil
	case "workers":
		return strconv.Itoa(c.Workers), nil
	case "strict":
		return strconv.FormatBool(c.Strict), nil
	case "log_level":
		return c.LogLevel, nil
	case "log_format":
		return c.LogFormat, nil
	case "accent_color":
		return c.AccentColor, nil
	case "output_dir":
		return c.OutputDir, nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}

// Set parses value and stores it under key.
func (c *AppConfig) Set(key, value string) error {
	var err error
	switch key {
	case "base_url":
		c.BaseURL = value
	case "list_path":
		c.ListPath = value
	case "cache_dir":
		c.CacheDir = value
	case "cache_hours":
		c.CacheHours, err = strconv.Atoi(value)
	case "no_cache":
		c.NoCache, err = strconv.ParseBool(value)
	case "workers":
		c.Workers, err = strconv.Atoi(value)
	case "strict":
		c.Strict, err = strconv.ParseBool(value)
	case "log_level":
		switch value {
		case "debug", "info", "warn", "error":
			c.LogLevel = value
		default:
			err = fmt.Errorf("must be one of debug, info, warn, error")
		}
	case "log_format":
		switch value {
		case "console", "json":
			c.LogFormat = value
		default:
			err = fmt.Errorf("must be console or json")
		}
	case "accent_color":
		c.AccentColor = value
	case "output_dir":
		c.OutputDir = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	return nil
}
