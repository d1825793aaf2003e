// Package config handles converter configuration loading and management.
package config

import "github.com/Faultbox/lcsc2kicad/pkg/units"

// Config holds all converter settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Library LibraryConfig `yaml:"library"`
	Units   units.Config  `yaml:"units"`
	Batch   BatchConfig   `yaml:"batch"`
	Source  SourceConfig  `yaml:"source"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// OutputConfig controls where and what is written.
type OutputConfig struct {
	Dir          string `yaml:"dir"`           // Base directory for library files
	SkipExisting bool   `yaml:"skip_existing"` // Keep footprints and models already on disk
	Footprints   bool   `yaml:"footprints"`    // Write .kicad_mod files
	Models       bool   `yaml:"models"`        // Convert and reference 3D models
}

// LibraryConfig holds library naming settings.
type LibraryConfig struct {
	FootprintLib      string `yaml:"footprint_lib"`       // Footprint library (directory) name
	ModelsDir         string `yaml:"models_dir"`          // Model directory inside the library
	ModelBaseVariable string `yaml:"model_base_variable"` // Path variable for model references, "" for absolute paths
	FixParens         bool   `yaml:"fix_parens"`          // Also replace ")" in footprint names
}

// BatchConfig holds batch conversion settings.
type BatchConfig struct {
	Workers int `yaml:"workers"` // Components converted in parallel
}

// SourceConfig holds payload source settings.
type SourceConfig struct {
	// Dirs are payload roots holding products/, components/ and 3dmodel/.
	// Later entries take priority.
	Dirs []string `yaml:"dirs"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"` // console or json
	LogFile string `yaml:"log_file"`
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // node-exporter textfile written at exit, "" disables
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:        "JLC2KiCad_lib",
			Footprints: true,
			Models:     true,
		},
		Library: LibraryConfig{
			FootprintLib: "footprint",
			ModelsDir:    "packages3d",
		},
		Units: units.Default(),
		Batch: BatchConfig{
			Workers: 4,
		},
		Source: SourceConfig{
			Dirs: []string{"payloads"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
