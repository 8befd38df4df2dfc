// Package config handles persistent user configuration for zonekeeper.
//
// Configuration is stored as JSON at ~/.config/zonekeeper/config.json
// (or the platform-equivalent path returned by os.UserConfigDir).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	appDir   = "zonekeeper"
	fileName = "config.json"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// AccountContext names one member account and the shared-config profile
// used to reach it.
type AccountContext struct {
	Name    string `json:"name"`
	Profile string `json:"profile"`
}

// Config holds settings that persist across invocations.
type Config struct {
	// ZoneID is the Route53 hosted zone ID of the shared zone.
	ZoneID string `json:"zone_id,omitempty"`

	// Region is the AWS region for regional API calls.
	Region string `json:"region,omitempty"`

	// Profile is the management-account shared-config profile used for
	// zone reads/mutations and organization calls.
	Profile string `json:"profile,omitempty"`

	// RulesetPath points at the YAML cleanup policy file.
	RulesetPath string `json:"ruleset_path,omitempty"`

	// ExportDir is where zone exports are written.
	ExportDir string `json:"export_dir,omitempty"`

	// Accounts are the member account contexts queried during
	// collection.
	Accounts []AccountContext `json:"accounts,omitempty"`
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file from disk and returns the parsed Config.
// If the file does not exist, a zero-value Config is returned (not an error).
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}

	return nil
}
