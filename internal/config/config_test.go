package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Terrain.TilesWide != 64 || cfg.Terrain.TilesDeep != 64 {
		t.Errorf("expected 64x64 tiles, got %dx%d", cfg.Terrain.TilesWide, cfg.Terrain.TilesDeep)
	}
	if cfg.Terrain.HeightScale != 10 {
		t.Errorf("expected height scale 10, got %f", cfg.Terrain.HeightScale)
	}
	if cfg.Terrain.Seed != 0 {
		t.Errorf("expected clock seed by default, got %d", cfg.Terrain.Seed)
	}
	if cfg.Props.TargetBand != 4 || cfg.Props.Threshold != 8 || cfg.Props.Template != "tree" {
		t.Errorf("unexpected prop defaults %+v", cfg.Props)
	}
	if cfg.Atlas.NumTextures != 8 {
		t.Errorf("expected 8 textures, got %d", cfg.Atlas.NumTextures)
	}
	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720 window, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDefaultMatchesTerrainDefaults(t *testing.T) {
	p, err := Default().TerrainParams()
	if err != nil {
		t.Fatalf("TerrainParams: %v", err)
	}
	if !reflect.DeepEqual(p, terrain.DefaultParams()) {
		t.Errorf("config defaults %+v differ from terrain defaults %+v", p, terrain.DefaultParams())
	}
	if got := Default().PropParams(); got != terrain.DefaultScatterParams() {
		t.Errorf("prop defaults %+v differ from %+v", got, terrain.DefaultScatterParams())
	}
	if got := Default().NoiseOptions(); got != terrain.DefaultNoiseOptions() {
		t.Errorf("noise defaults %+v differ from %+v", got, terrain.DefaultNoiseOptions())
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	yamlContent := `
terrain:
  tiles_wide: 32
  tiles_deep: 16
  tile_width: 2
  height_scale: 25
  normals: flat
  bins: coarse
  workers: 4
  seed: 77

noise:
  scale: 1.5
  octaves: 5

props:
  target_band: 2
  template: "rock"

logging:
  level: "debug"
  log_file: "terrain.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	p, err := cfg.TerrainParams()
	if err != nil {
		t.Fatalf("TerrainParams: %v", err)
	}
	if p.TilesWide != 32 || p.TilesDeep != 16 {
		t.Errorf("expected 32x16 tiles, got %dx%d", p.TilesWide, p.TilesDeep)
	}
	if p.TileWidth != 2 || p.TileHeight != 1 {
		t.Errorf("expected tile 2x1, got %vx%v", p.TileWidth, p.TileHeight)
	}
	if p.HeightScale != 25 || p.NoiseScale != 1.5 {
		t.Errorf("expected scales 25/1.5, got %v/%v", p.HeightScale, p.NoiseScale)
	}
	if p.Normals != terrain.NormalFlat {
		t.Errorf("expected flat normals, got %v", p.Normals)
	}
	if p.Bins.Name != terrain.CoarseBins.Name {
		t.Errorf("expected coarse bins, got %s", p.Bins.Name)
	}
	if p.Workers != 4 || cfg.Terrain.Seed != 77 {
		t.Errorf("expected workers 4 seed 77, got %d/%d", p.Workers, cfg.Terrain.Seed)
	}
	if cfg.Noise.Octaves != 5 || cfg.Noise.Alpha != 2 {
		t.Errorf("expected octaves 5 and default alpha, got %+v", cfg.Noise)
	}

	// untouched keys keep their defaults
	if props := cfg.PropParams(); props.TargetBand != 2 || props.Threshold != 8 || props.Template != "rock" {
		t.Errorf("unexpected props %+v", props)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "terrain.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := map[string]string{
		"bad syntax":  "terrain:\n  tiles_wide: not a number\n  invalid syntax here\n",
		"unknown key": "terrain:\n  tile_wide: 32\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("empty file changed the defaults")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/terrain.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(FileName, []byte("terrain:\n  tiles_wide: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Terrain.Seed = 4242
	cfg.Terrain.Normals = "flat"
	cfg.Props.Enabled = false
	cfg.Output.Dir = "previews"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("round trip mismatch:\n saved  %+v\n loaded %+v", cfg, loaded)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero tiles", func(c *Config) { c.Terrain.TilesWide = 0 }},
		{"unknown normals", func(c *Config) { c.Terrain.Normals = "phong" }},
		{"unknown bins", func(c *Config) { c.Terrain.Bins = "medium" }},
		{"too few textures", func(c *Config) { c.Atlas.NumTextures = 2 }},
		{"prop band out of range", func(c *Config) { c.Props.TargetBand = 8 }},
		{"prop threshold out of range", func(c *Config) { c.Props.Threshold = 10 }},
		{"zero octaves", func(c *Config) { c.Noise.Octaves = 0 }},
		{"negative seed", func(c *Config) { c.Terrain.Seed = -3 }},
		{"zero slot size", func(c *Config) { c.Atlas.SlotSize = 0 }},
		{"zero window", func(c *Config) { c.Graphics.Height = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, terrain.ErrInvalidConfiguration) {
				t.Errorf("error %v does not wrap ErrInvalidConfiguration", err)
			}
		})
	}

	// disabled props are not checked
	cfg := Default()
	cfg.Props.Enabled = false
	cfg.Props.TargetBand = 99
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled props should not be validated: %v", err)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := Default()
	cfg.Terrain.Seed = 12
	if got := cfg.ResolveSeed(); got != 12 {
		t.Errorf("ResolveSeed() = %d, want 12", got)
	}

	cfg.Terrain.Seed = 0
	seed := cfg.ResolveSeed()
	if seed == 0 || cfg.Terrain.Seed != seed {
		t.Errorf("clock seed not stored: seed=%d stored=%d", seed, cfg.Terrain.Seed)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "grid flags",
			setup: func() {
				*flagTilesWide = 128
				*flagTilesDeep = 96
				*flagWorkers = 6
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.TilesWide != 128 || cfg.Terrain.TilesDeep != 96 {
					t.Errorf("expected 128x96, got %dx%d", cfg.Terrain.TilesWide, cfg.Terrain.TilesDeep)
				}
				if cfg.Terrain.Workers != 6 {
					t.Errorf("expected 6 workers, got %d", cfg.Terrain.Workers)
				}
			},
			teardown: func() {
				*flagTilesWide = 0
				*flagTilesDeep = 0
				*flagWorkers = 0
			},
		},
		{
			name:  "seed flag",
			setup: func() { *flagSeed = 99 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.Seed != 99 {
					t.Errorf("expected seed 99, got %d", cfg.Terrain.Seed)
				}
			},
			teardown: func() { *flagSeed = -1 },
		},
		{
			name:  "out flag",
			setup: func() { *flagOut = "/tmp/previews" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Dir != "/tmp/previews" {
					t.Errorf("expected out dir /tmp/previews, got %s", cfg.Output.Dir)
				}
			},
			teardown: func() { *flagOut = "" },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}

	// unset flags leave the config alone
	cfg := Default()
	applyFlags(cfg)
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("unset flags changed the config")
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	yamlContent := `
terrain:
  tiles_wide: 40
  tiles_deep: 20
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagTilesWide = 50
	defer func() {
		*flagConfig = ""
		*flagTilesWide = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Terrain.TilesWide != 50 {
		t.Errorf("expected tiles wide 50 from flag, got %d", cfg.Terrain.TilesWide)
	}
	if cfg.Terrain.TilesDeep != 20 {
		t.Errorf("expected tiles deep 20 from file, got %d", cfg.Terrain.TilesDeep)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("terrain:\n  tiles_deep: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, terrain.ErrInvalidConfiguration) {
		t.Errorf("Load() error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestNewGenerator_FollowsSeed(t *testing.T) {
	cfg := Default()
	cfg.Terrain.TilesWide, cfg.Terrain.TilesDeep = 8, 8
	cfg.Terrain.Seed = 31

	run := func() (*terrain.Terrain, []terrain.Prop) {
		g, err := cfg.NewGenerator(nil)
		if err != nil {
			t.Fatalf("NewGenerator: %v", err)
		}
		tr, err := g.Generate(nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		s, err := cfg.NewPropScatterer(nil)
		if err != nil {
			t.Fatalf("NewPropScatterer: %v", err)
		}
		return tr, s.Scatter(tr, nil)
	}

	a, propsA := run()
	b, propsB := run()
	if !reflect.DeepEqual(a.Mesh(), b.Mesh()) {
		t.Error("same seed produced different meshes")
	}
	if !reflect.DeepEqual(propsA, propsB) {
		t.Error("same seed produced different props")
	}
}

func TestNewGenerator_Invalid(t *testing.T) {
	cfg := Default()
	cfg.Terrain.Normals = "bumpy"
	if _, err := cfg.NewGenerator(nil); !errors.Is(err, terrain.ErrInvalidConfiguration) {
		t.Errorf("NewGenerator() error = %v, want ErrInvalidConfiguration", err)
	}
}
