package terrain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned when generation parameters are rejected.
var ErrInvalidConfiguration = errors.New("invalid terrain configuration")

// DefaultNumTextures is the number of slots in the texture atlas.
const DefaultNumTextures = 8

// Params holds the inputs of one generation pass.
type Params struct {
	TilesWide int // tiles along X
	TilesDeep int // tiles along Z

	TileWidth    float32
	TileHeight   float32
	PlaneOffsetX float32
	PlaneOffsetZ float32

	HeightScale float32
	NoiseScale  float32

	NumTextures int
	Bins        BinSet
	Normals     NormalMode

	// PerTriangleTextures gives the second triangle of a tile its own band.
	// The tile record always keeps the first triangle's band.
	PerTriangleTextures bool

	// Workers > 1 splits each phase across goroutines by row.
	Workers int
}

// DefaultParams returns the parameters of the original 64x64 map.
func DefaultParams() Params {
	return Params{
		TilesWide:   64,
		TilesDeep:   64,
		TileWidth:   1,
		TileHeight:  1,
		HeightScale: 10,
		NoiseScale:  3,
		NumTextures: DefaultNumTextures,
		Bins:        FineBins,
		Normals:     NormalSmoothed,
		Workers:     1,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfiguration.
func (p Params) Validate() error {
	switch {
	case p.TilesWide <= 0:
		return invalid("tiles wide must be positive, got %d", p.TilesWide)
	case p.TilesDeep <= 0:
		return invalid("tiles deep must be positive, got %d", p.TilesDeep)
	case uint64(p.TilesWide)*uint64(p.TilesDeep)*VerticesPerTile > math.MaxUint32:
		return invalid("%dx%d tiles overflow a 32-bit index buffer", p.TilesWide, p.TilesDeep)
	case !(p.TileWidth > 0):
		return invalid("tile width must be positive, got %v", p.TileWidth)
	case !(p.TileHeight > 0):
		return invalid("tile height must be positive, got %v", p.TileHeight)
	case !(p.HeightScale >= 0) || math.IsInf(float64(p.HeightScale), 0):
		return invalid("height scale must be a non-negative number, got %v", p.HeightScale)
	case math.IsNaN(float64(p.NoiseScale)) || math.IsInf(float64(p.NoiseScale), 0):
		return invalid("noise scale must be finite, got %v", p.NoiseScale)
	case p.NumTextures <= 0:
		return invalid("num textures must be positive, got %d", p.NumTextures)
	case p.NumTextures < NumBands:
		return invalid("atlas has %d slots but classification needs %d", p.NumTextures, NumBands)
	case p.Bins.Name == "":
		return invalid("no bin set selected")
	case p.Workers < 0:
		return invalid("workers must not be negative, got %d", p.Workers)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
