// Package main generates a terrain without a window and writes preview images.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/internal/preview"
)

var (
	flagSaveConfig = flag.Bool("save-config", false, "Write the resolved config next to the previews")
	flagQuiet      = flag.Bool("quiet", false, "Do not print the summary to stdout")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	out := io.Writer(os.Stdout)
	if *flagQuiet {
		out = io.Discard
	}

	if err := run(cfg, out); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, out io.Writer) error {
	start := time.Now()

	gen, err := cfg.NewGenerator(logger.Named("terrain"))
	if err != nil {
		return err
	}
	t, err := gen.Generate(nil)
	if err != nil {
		return err
	}

	var props []terrain.Prop
	if cfg.Props.Enabled {
		s, err := cfg.NewPropScatterer(logger.Named("props"))
		if err != nil {
			return err
		}
		props = s.Scatter(t, nil)
	}
	logger.Info("terrain generated",
		zap.Int64("seed", cfg.Terrain.Seed),
		zap.Int("props", len(props)),
		zap.Duration("elapsed", time.Since(start)),
	)

	paths, err := preview.Export(cfg.Output.Dir, t, preview.Options{
		Heightmap: cfg.Output.Heightmap,
		Bands:     cfg.Output.Bands,
		Atlas:     cfg.Output.Atlas,
		Legend:    cfg.Output.Legend,
		SlotSize:  cfg.Atlas.SlotSize,
		CellSize:  cfg.Output.CellSize,
	})
	if err != nil {
		return fmt.Errorf("exporting previews: %w", err)
	}

	if *flagSaveConfig {
		path := filepath.Join(cfg.Output.Dir, config.FileName)
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		paths = append(paths, path)
	}

	printSummary(out, cfg, t, props, paths)
	return nil
}

func printSummary(w io.Writer, cfg *config.Config, t *terrain.Terrain, props []terrain.Prop, paths []string) {
	p := t.Params()
	fmt.Fprintf(w, "Terrain %dx%d tiles, seed %d\n", t.TilesWide(), t.TilesDeep(), cfg.Terrain.Seed)
	fmt.Fprintf(w, "  normals %s, bins %s, workers %d\n", p.Normals, p.Bins.Name, max(p.Workers, 1))
	fmt.Fprintf(w, "  height  %.3f .. %.3f\n", t.MinHeight(), t.MaxHeight())

	fmt.Fprintln(w, "\nBands:")
	total := t.TilesWide() * t.TilesDeep()
	for band, n := range t.BandCounts() {
		fmt.Fprintf(w, "  %d  %6d  %5.1f%%\n", band, n, 100*float64(n)/float64(total))
	}

	fmt.Fprintf(w, "\nProps: %d\n", len(props))
	for _, path := range paths {
		fmt.Fprintf(w, "  wrote %s\n", path)
	}
}
