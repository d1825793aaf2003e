// lcsc2kicad converts LCSC/EasyEDA parts into a KiCad footprint library
// with VRML 3D models.
//
// Usage:
//
//	lcsc2kicad [flags] C1337258 C24112 ...
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/lcsc2kicad/internal/config"
	"github.com/Faultbox/lcsc2kicad/internal/convert"
	"github.com/Faultbox/lcsc2kicad/internal/logger"
	"github.com/Faultbox/lcsc2kicad/internal/metrics"
	"github.com/Faultbox/lcsc2kicad/internal/source"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse command-line flags first
	config.ParseFlags()

	// Load configuration (defaults < file < flags)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 2
	}

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save config: %v\n", err)
			return 2
		}
		fmt.Fprintf(os.Stderr, "config written to %s\n", path)
	}

	ids := config.Args()
	if len(ids) == 0 && config.SaveConfigPath() != "" {
		return 0
	}
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "usage: lcsc2kicad [flags] <part number>...")
		return 2
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		return 2
	}
	defer logger.Sync()
	log := logger.Log

	log.Info("starting conversion",
		zap.Strings("parts", ids),
		zap.String("output", cfg.Output.Dir),
		zap.String("library", cfg.Library.FootprintLib),
		zap.Strings("sources", cfg.Source.Dirs),
		zap.Int("workers", cfg.Batch.Workers))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := metrics.New()
	src := source.NewLayered(cfg.Source.Dirs...)
	conv := convert.New(src, convert.OptionsFromConfig(cfg), log, m)
	results, batchErr := conv.ConvertBatch(ctx, ids, cfg.Batch.Workers)

	hits, misses := src.Cache().Stats()
	log.Debug("payload cache", zap.Int("hits", hits), zap.Int("misses", misses))

	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Printf("%s\tfailed\t%v\n", r.ID, r.Err)
		case r.QualifiedName == "":
			fmt.Printf("%s\tno footprint\t%s\n", r.ID, r.Datasheet)
		default:
			fmt.Printf("%s\t%s\t%s\n", r.ID, r.QualifiedName, r.Datasheet)
		}
	}

	if cfg.Metrics.Textfile != "" {
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Error("failed to write metrics", zap.String("path", cfg.Metrics.Textfile), zap.Error(err))
		}
	}

	if batchErr != nil {
		return 1
	}
	return 0
}
