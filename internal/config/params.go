package config

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

// TerrainParams maps the terrain, noise and atlas sections onto generation parameters.
func (c *Config) TerrainParams() (terrain.Params, error) {
	normals, ok := terrain.ParseNormalMode(c.Terrain.Normals)
	if !ok {
		return terrain.Params{}, fmt.Errorf("%w: unknown normals %q", terrain.ErrInvalidConfiguration, c.Terrain.Normals)
	}
	bins, ok := terrain.ParseBinSet(c.Terrain.Bins)
	if !ok {
		return terrain.Params{}, fmt.Errorf("%w: unknown bins %q", terrain.ErrInvalidConfiguration, c.Terrain.Bins)
	}

	return terrain.Params{
		TilesWide:           c.Terrain.TilesWide,
		TilesDeep:           c.Terrain.TilesDeep,
		TileWidth:           c.Terrain.TileWidth,
		TileHeight:          c.Terrain.TileHeight,
		PlaneOffsetX:        c.Terrain.PlaneOffsetX,
		PlaneOffsetZ:        c.Terrain.PlaneOffsetZ,
		HeightScale:         c.Terrain.HeightScale,
		NoiseScale:          c.Noise.Scale,
		NumTextures:         c.Atlas.NumTextures,
		Bins:                bins,
		Normals:             normals,
		PerTriangleTextures: c.Terrain.PerTriangleTextures,
		Workers:             c.Terrain.Workers,
	}, nil
}

// PropParams maps the props section onto scatter parameters.
func (c *Config) PropParams() terrain.ScatterParams {
	return terrain.ScatterParams{
		TargetBand: c.Props.TargetBand,
		Threshold:  c.Props.Threshold,
		Template:   c.Props.Template,
	}
}

// NoiseOptions maps the noise section onto Perlin options.
func (c *Config) NoiseOptions() terrain.NoiseOptions {
	return terrain.NoiseOptions{
		Alpha:   c.Noise.Alpha,
		Beta:    c.Noise.Beta,
		Octaves: c.Noise.Octaves,
	}
}

// ResolveSeed returns the configured seed, replacing 0 with one taken from the clock.
// The chosen seed is written back so it can be logged and saved.
func (c *Config) ResolveSeed() int64 {
	if c.Terrain.Seed == 0 {
		c.Terrain.Seed = time.Now().UnixNano()
	}
	return c.Terrain.Seed
}

// propSeedSalt separates the prop draws from the noise offset draws of the same seed.
const propSeedSalt = 0x5DEECE66D

// NewGenerator builds a generator from the config, resolving the seed first.
func (c *Config) NewGenerator(log *zap.Logger) (*terrain.Generator, error) {
	p, err := c.TerrainParams()
	if err != nil {
		return nil, err
	}
	return terrain.NewGenerator(p,
		terrain.WithSeed(c.ResolveSeed(), c.NoiseOptions()),
		terrain.WithAtlasTexture(c.Atlas.Texture),
		terrain.WithLogger(log),
	)
}

// NewPropScatterer builds a scatterer whose draws follow the resolved seed.
func (c *Config) NewPropScatterer(log *zap.Logger) (*terrain.PropScatterer, error) {
	rng := terrain.NewRandom(uint64(c.ResolveSeed()) ^ propSeedSalt)
	return terrain.NewPropScatterer(c.PropParams(), rng, log)
}

// Validate checks every section. Every rejection wraps terrain.ErrInvalidConfiguration.
func (c *Config) Validate() error {
	p, err := c.TerrainParams()
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if c.Props.Enabled {
		if err := c.PropParams().Validate(); err != nil {
			return err
		}
	}
	if c.Noise.Octaves <= 0 {
		return fmt.Errorf("%w: noise octaves must be positive, got %d", terrain.ErrInvalidConfiguration, c.Noise.Octaves)
	}
	if c.Terrain.Seed < 0 {
		return fmt.Errorf("%w: seed must not be negative, got %d", terrain.ErrInvalidConfiguration, c.Terrain.Seed)
	}
	if c.Atlas.SlotSize <= 0 {
		return fmt.Errorf("%w: atlas slot size must be positive, got %d", terrain.ErrInvalidConfiguration, c.Atlas.SlotSize)
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", terrain.ErrInvalidConfiguration, c.Graphics.Width, c.Graphics.Height)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", terrain.ErrInvalidConfiguration, err)
	}
	return nil
}
