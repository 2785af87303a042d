// Package config loads frameeval settings from ~/.frameeval/config.yaml
// with FRAMEEVAL_* environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds global frameeval settings.
type Config struct {
	// Python is the interpreter executable used for the platform probe.
	Python string `yaml:"python"`

	// SearchDirs are the directories scanned for accelerator modules,
	// consulted in order. Each is expected to contain a
	// _pydevd_frame_eval subdirectory.
	SearchDirs []string `yaml:"search_dirs"`

	// Disabled skips accelerator resolution entirely.
	Disabled bool `yaml:"disabled"`

	Debug DebugConfig `yaml:"debug"`
}

// DebugConfig holds debug logging settings.
type DebugConfig struct {
	// RetentionDays is how many days to keep debug log files (0 = no cleanup).
	RetentionDays int `yaml:"retention_days"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Python:     "python3",
		SearchDirs: []string{filepath.Join(Dir(), "accel")},
		Debug: DebugConfig{
			RetentionDays: 7,
		},
	}
}

// Load reads ~/.frameeval/config.yaml and applies environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(filepath.Join(Dir(), "config.yaml")); err == nil {
		_ = yaml.Unmarshal(data, cfg) // Ignore unmarshal errors, use defaults
	}

	if python := os.Getenv("FRAMEEVAL_PYTHON"); python != "" {
		cfg.Python = python
	}
	if dirs := os.Getenv("FRAMEEVAL_SEARCH_DIRS"); dirs != "" {
		cfg.SearchDirs = filepath.SplitList(dirs)
	}
	if disable := os.Getenv("FRAMEEVAL_DISABLE"); disable != "" {
		if v, err := strconv.ParseBool(disable); err == nil {
			cfg.Disabled = v
		}
	}

	return cfg, nil
}

// Dir returns the path to ~/.frameeval.
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".frameeval")
	}
	return filepath.Join(homeDir, ".frameeval")
}

// HistoryPath returns the path of the resolution history database.
func HistoryPath() string {
	return filepath.Join(Dir(), "history.db")
}

// DebugDir returns the directory debug log files are written to.
func DebugDir() string {
	return filepath.Join(Dir(), "debug")
}

// String renders the effective search path for display.
func (c *Config) String() string {
	return "python=" + c.Python + " search=" + strings.Join(c.SearchDirs, string(os.PathListSeparator))
}
