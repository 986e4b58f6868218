// Package config persists viewer preferences as a small JSON file
// under the user config directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pictor/internal/input"
)

type Config struct {
	// DefaultDir is opened when no path is given on the command line.
	DefaultDir string `json:"defaultDir,omitempty"`

	InfoPanel bool `json:"infoPanel"`
	NavPanel  bool `json:"navPanel"`

	// WrapNavigation makes next/previous wrap at the folder edges
	// instead of stopping.
	WrapNavigation bool `json:"wrapNavigation"`

	// PanStep is the keyboard pan distance in screen pixels.
	PanStep float64 `json:"panStep"`
}

func Default() *Config {
	return &Config{
		InfoPanel: true,
		NavPanel:  true,
		PanStep:   input.DefaultPanStep,
	}
}

// DefaultPath is the per-user config location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, "pictor", "config.json"), nil
}

// Load reads path, falling back to defaults when the file does not
// exist yet.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}
	if c.PanStep <= 0 {
		c.PanStep = input.DefaultPanStep
	}
	return c, nil
}

func Save(path string, c *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
