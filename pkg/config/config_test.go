package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestConfigLoadSave(t *testing.T) {
	// Create a temporary directory to act as the user's home directory
	tempDir, err := os.MkdirTemp("", "schgen-config-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir) // cleanup

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.BaseURL = "https://www.fit.vut.cz/study/courses/"
	cfg.CacheHours = 6
	cfg.Workers = 4
	cfg.Strict = true
	cfg.LogLevel = "debug"

	err = Save(cfg)
	if err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify the file was actually created
	configPath := filepath.Join(tempDir, ".schgen.toml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	// Compare loaded config with saved config
	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
	if loadedCfg.CacheDuration() != 6*time.Hour {
		t.Errorf("expected 6h cache duration, got %s", loadedCfg.CacheDuration())
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// Write invalid TOML to the config file
	configPath := filepath.Join(tempDir, ".schgen.toml")
	err := os.WriteFile(configPath, []byte("workers = = 3\n[unterminated"), 0644)
	if err != nil {
		t.Fatalf("failed to write invalid toml: %v", err)
	}

	// Attempt to load the invalid TOML
	_, err = Load()
	if err == nil {
		t.Errorf("expected error when loading invalid toml, got nil")
	}
}

func TestConfigSetGet(t *testing.T) {
	cfg := &AppConfig{}

	for _, kv := range [][2]string{
		{"workers", "8"},
		{"strict", "true"},
		{"log_format", "json"},
		{"list_path", ".en"},
	} {
		if err := cfg.Set(kv[0], kv[1]); err != nil {
			t.Fatalf("Set(%s, %s) failed: %v", kv[0], kv[1], err)
		}
		got, err := cfg.Get(kv[0])
		if err != nil || got != kv[1] {
			t.Errorf("Get(%s) = %q, %v; want %q", kv[0], got, err, kv[1])
		}
	}

	if err := cfg.Set("workers", "many"); err == nil {
		t.Errorf("expected error for non-numeric workers")
	}
	if err := cfg.Set("log_level", "loud"); err == nil {
		t.Errorf("expected error for unknown log level")
	}
	if err := cfg.Set("nope", "x"); err == nil {
		t.Errorf("expected error for unknown key")
	}
	for _, key := range Keys {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%s) failed: %v", key, err)
		}
	}
}

func TestConfigNormalize(t *testing.T) {
	cfg := &AppConfig{LogLevel: " DEBUG ", Workers: 0, CacheHours: -3}
	cfg.Normalize()
	if cfg.LogLevel != "debug" || cfg.Workers != 1 || cfg.CacheHours != 0 {
		t.Errorf("unexpected normalized config %+v", cfg)
	}
}
