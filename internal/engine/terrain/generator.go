package terrain

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Phase is a step of the generation pipeline. Phases run in declaration order.
type Phase int

const (
	PhaseSynthesizeHeights Phase = iota
	PhaseEstimateNormals
	PhaseBuildAtlas
	PhaseAssembleMesh
	PhaseBindToRenderer
)

var phaseNames = [...]string{
	PhaseSynthesizeHeights: "synthesize_heights",
	PhaseEstimateNormals:   "estimate_normals",
	PhaseBuildAtlas:        "build_atlas",
	PhaseAssembleMesh:      "assemble_mesh",
	PhaseBindToRenderer:    "bind_to_renderer",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Generator runs the terrain pipeline for a fixed set of parameters.
type Generator struct {
	params  Params
	noise   NoiseSource
	rng     RandomSource
	texture string
	log     *zap.Logger
	onPhase func(Phase)
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithNoise replaces the default Perlin noise source.
func WithNoise(n NoiseSource) Option {
	return func(g *Generator) { g.noise = n }
}

// WithRandom replaces the default random source used for noise offsets.
func WithRandom(r RandomSource) Option {
	return func(g *Generator) { g.rng = r }
}

// WithSeed seeds both the default noise and random sources.
// Explicit WithNoise or WithRandom options still win.
func WithSeed(seed int64, noise NoiseOptions) Option {
	return func(g *Generator) {
		if g.noise == nil {
			g.noise = NewPerlinNoise(noise, seed)
		}
		if g.rng == nil {
			g.rng = NewRandom(uint64(seed))
		}
	}
}

// WithAtlasTexture names the atlas image handed to the renderer.
func WithAtlasTexture(handle string) Option {
	return func(g *Generator) { g.texture = handle }
}

// WithPhaseHook calls fn as each phase starts.
func WithPhaseHook(fn func(Phase)) Option {
	return func(g *Generator) { g.onPhase = fn }
}

// NewGenerator validates p and builds a Generator. Invalid parameters fail here,
// before anything is allocated.
func NewGenerator(p Params, opts ...Option) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{params: p}
	for _, opt := range opts {
		opt(g)
	}
	if g.noise == nil || g.rng == nil {
		WithSeed(time.Now().UnixNano(), DefaultNoiseOptions())(g)
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	return g, nil
}

// Params returns the generation parameters.
func (g *Generator) Params() Params {
	return g.params
}

// Generate runs every phase in order. A nil renderer skips the bind phase.
//
// If binding fails the complete terrain is still returned together with the error.
func (g *Generator) Generate(r Renderer) (*Terrain, error) {
	start := time.Now()
	p := g.params

	g.enter(PhaseSynthesizeHeights)
	offsetX := g.rng.Float64Range(0, NoiseOffsetRange)
	offsetZ := g.rng.Float64Range(0, NoiseOffsetRange)
	hm := SynthesizeHeights(p, g.noise, offsetX, offsetZ)
	g.log.Debug("heights synthesized",
		zap.Float64("offset_x", offsetX),
		zap.Float64("offset_z", offsetZ),
		zap.Float32("min_height", hm.MinHeight),
		zap.Float32("max_height", hm.MaxHeight),
	)

	g.enter(PhaseEstimateNormals)
	normals := EstimateNormals(hm, p.Workers)

	g.enter(PhaseBuildAtlas)
	atlas, err := NewTextureAtlas(p.NumTextures)
	if err != nil {
		return nil, fmt.Errorf("build atlas: %w", err)
	}

	g.enter(PhaseAssembleMesh)
	mesh, textures := BuildMesh(p, hm, normals, atlas)

	t := &Terrain{
		params:   p,
		heights:  hm,
		normals:  normals,
		textures: textures,
		atlas:    atlas,
		mesh:     mesh,
		texture:  g.texture,
	}

	g.log.Info("terrain generated",
		zap.Int("tiles_wide", p.TilesWide),
		zap.Int("tiles_deep", p.TilesDeep),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("indices", len(mesh.Triangles)),
		zap.Stringer("normals", p.Normals),
		zap.String("bins", p.Bins.Name),
		zap.Int("workers", p.Workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	if r == nil {
		g.log.Debug("no renderer, skipping bind")
		return t, nil
	}
	g.enter(PhaseBindToRenderer)
	if err := t.Bind(r); err != nil {
		return t, err
	}
	return t, nil
}

func (g *Generator) enter(p Phase) {
	g.log.Debug("terrain phase", zap.Stringer("phase", p))
	if g.onPhase != nil {
		g.onPhase(p)
	}
}
