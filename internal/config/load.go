package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for configurations that cannot drive a run.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./lcsc2kicad.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "lcsc2kicad")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "lcsc2kicad")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "lcsc2kicad")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "lcsc2kicad")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

// Validate checks values that would make a run impossible.
func (c *Config) Validate() error {
	switch {
	case c.Output.Dir == "":
		return fmt.Errorf("%w: output.dir is empty", ErrInvalidConfig)
	case c.Library.FootprintLib == "":
		return fmt.Errorf("%w: library.footprint_lib is empty", ErrInvalidConfig)
	case len(c.Source.Dirs) == 0:
		return fmt.Errorf("%w: source.dirs is empty", ErrInvalidConfig)
	case c.Batch.Workers < 1:
		return fmt.Errorf("%w: batch.workers must be positive", ErrInvalidConfig)
	case c.Units.SourcePerMM <= 0 || c.Units.MeshRatio <= 0 || c.Units.AnchorDivisor <= 0 ||
		c.Units.CentroidDivisor <= 0 || c.Units.InchDivisor <= 0:
		return fmt.Errorf("%w: units ratios must be positive", ErrInvalidConfig)
	}
	return nil
}
