package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagTilesWide  = flag.Int("tiles-wide", 0, "Tiles along X")
	flagTilesDeep  = flag.Int("tiles-deep", 0, "Tiles along Z")
	flagSeed       = flag.Int64("seed", -1, "Generation seed (0 picks one from the clock)")
	flagWorkers    = flag.Int("workers", 0, "Goroutines per generation phase")
	flagOut        = flag.String("out", "", "Directory for preview images")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTilesWide > 0 {
		cfg.Terrain.TilesWide = *flagTilesWide
	}
	if *flagTilesDeep > 0 {
		cfg.Terrain.TilesDeep = *flagTilesDeep
	}
	if *flagSeed >= 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagWorkers > 0 {
		cfg.Terrain.Workers = *flagWorkers
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
