package config

import (
	"flag"
	"strings"
)

var (
	flagConfig            = flag.String("config", "", "Path to config file")
	flagDebug             = flag.Bool("debug", false, "Enable debug logging")
	flagDir               = flag.String("dir", "", "Base directory for output library files")
	flagFootprintLib      = flag.String("footprint_lib", "", "Footprint library name")
	flagModelBaseVariable = flag.String("model_base_variable", "", "Path variable used to reference 3D models")
	flagSkipExisting      = flag.Bool("skip_existing", false, "Do not replace footprints and models already on disk")
	flagNoFootprint       = flag.Bool("no_footprint", false, "Do not write footprints")
	flagNoModels          = flag.Bool("no_models", false, "Do not convert 3D models")
	flagFixParens         = flag.Bool("fix_parens", false, "Replace closing parentheses in footprint names")
	flagWorkers           = flag.Int("workers", 0, "Components converted in parallel")
	flagSource            = flag.String("source", "", "Comma separated payload directories, last wins")
	flagLoggingLevel      = flag.String("logging_level", "", "Logging level: debug, info, warn, error")
	flagLogFile           = flag.String("log_file", "", "Also write logs to this file")
	flagMetricsTextfile   = flag.String("metrics_textfile", "", "Write run metrics to this textfile")
	flagSaveConfig        = flag.String("save_config", "", "Write the effective config to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the path the effective config should be written to, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLoggingLevel != "" {
		cfg.Logging.Level = normalizeLevel(*flagLoggingLevel)
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagDir != "" {
		cfg.Output.Dir = *flagDir
	}
	if *flagFootprintLib != "" {
		cfg.Library.FootprintLib = *flagFootprintLib
	}
	if *flagModelBaseVariable != "" {
		cfg.Library.ModelBaseVariable = *flagModelBaseVariable
	}
	if *flagSkipExisting {
		cfg.Output.SkipExisting = true
	}
	if *flagNoFootprint {
		cfg.Output.Footprints = false
	}
	if *flagNoModels {
		cfg.Output.Models = false
	}
	if *flagFixParens {
		cfg.Library.FixParens = true
	}
	if *flagWorkers > 0 {
		cfg.Batch.Workers = *flagWorkers
	}
	if *flagSource != "" {
		cfg.Source.Dirs = strings.Split(*flagSource, ",")
	}
	if *flagMetricsTextfile != "" {
		cfg.Metrics.Textfile = *flagMetricsTextfile
	}
}

// normalizeLevel accepts the upper-case level names of older tooling.
func normalizeLevel(level string) string {
	level = strings.ToLower(level)
	switch level {
	case "warning":
		return "warn"
	case "critical":
		return "error"
	}
	return level
}
