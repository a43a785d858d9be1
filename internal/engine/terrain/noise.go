package terrain

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// NoiseSource is a deterministic 2D coherent-noise function with output in [0,1].
type NoiseSource interface {
	Noise2D(a, b float64) float64
}

// RandomSource supplies the noise offsets and the prop draws.
type RandomSource interface {
	// Float64Range returns a uniform value in [lo, hi).
	Float64Range(lo, hi float64) float64
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// NoiseOptions tunes the Perlin generator.
type NoiseOptions struct {
	Alpha   float64 // weight divisor between octaves
	Beta    float64 // frequency multiplier between octaves
	Octaves int32
}

// DefaultNoiseOptions gives smooth rolling hills.
func DefaultNoiseOptions() NoiseOptions {
	return NoiseOptions{Alpha: 2, Beta: 2, Octaves: 3}
}

// PerlinNoise adapts go-perlin to NoiseSource.
type PerlinNoise struct {
	p *perlin.Perlin
}

// NewPerlinNoise creates a Perlin noise source. Safe for concurrent reads.
func NewPerlinNoise(opts NoiseOptions, seed int64) *PerlinNoise {
	if opts.Octaves <= 0 {
		opts = DefaultNoiseOptions()
	}
	return &PerlinNoise{p: perlin.NewPerlin(opts.Alpha, opts.Beta, opts.Octaves, seed)}
}

// Noise2D remaps the raw [-1,1] output to [0,1].
func (n *PerlinNoise) Noise2D(a, b float64) float64 {
	v := (n.p.Noise2D(a, b) + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Random is a seeded RandomSource. Not safe for concurrent use.
type Random struct {
	r *rand.Rand
}

// NewRandom creates a Random seeded with seed.
func NewRandom(seed uint64) *Random {
	return &Random{r: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// Float64Range returns a uniform value in [lo, hi).
func (r *Random) Float64Range(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Intn returns a uniform integer in [0, n).
func (r *Random) Intn(n int) int {
	return r.r.IntN(n)
}
