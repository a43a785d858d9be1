package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// PropDraws is the size of the per-tile draw: each trial picks from [0, PropDraws).
const PropDraws = 10

// ScatterParams controls prop placement.
type ScatterParams struct {
	TargetBand int    // only tiles of this band are tried
	Threshold  int    // a prop is placed when the draw exceeds this
	Template   string // passed through to the spawner
}

// DefaultScatterParams places trees on band 4 tiles one time in ten.
func DefaultScatterParams() ScatterParams {
	return ScatterParams{TargetBand: 4, Threshold: PropDraws - 2, Template: "tree"}
}

// Validate rejects bands outside the classifier's output and thresholds
// that no draw could ever decide.
func (s ScatterParams) Validate() error {
	if s.TargetBand < 0 || s.TargetBand >= NumBands {
		return invalid("prop target band must be in [0,%d), got %d", NumBands, s.TargetBand)
	}
	if s.Threshold < -1 || s.Threshold >= PropDraws {
		return invalid("prop threshold must be in [-1,%d), got %d", PropDraws, s.Threshold)
	}
	return nil
}

// PropScatterer places props on tiles of a target band.
type PropScatterer struct {
	params ScatterParams
	rng    RandomSource
	log    *zap.Logger
}

// NewPropScatterer validates p and returns a scatterer drawing from rng.
func NewPropScatterer(p ScatterParams, rng RandomSource, log *zap.Logger) (*PropScatterer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PropScatterer{params: p, rng: rng, log: log}, nil
}

// Scatter runs one independent trial per matching tile and reports every placement
// to spawner, which may be nil. Tiles are visited row by row.
func (s *PropScatterer) Scatter(t *Terrain, spawner PropSpawner) []Prop {
	var props []Prop
	tried := 0
	for z := range t.TilesDeep() {
		for x := range t.TilesWide() {
			if t.Band(z, x) != s.params.TargetBand {
				continue
			}
			tried++
			if s.rng.Intn(PropDraws) <= s.params.Threshold {
				continue
			}

			p := Prop{
				Template: s.params.Template,
				TileX:    x,
				TileZ:    z,
				Position: tileCenter(t, z, x),
			}
			props = append(props, p)
			if spawner != nil {
				spawner.SpawnProp(p)
			}
		}
	}

	s.log.Info("props scattered",
		zap.String("template", s.params.Template),
		zap.Int("band", s.params.TargetBand),
		zap.Int("candidates", tried),
		zap.Int("placed", len(props)),
	)
	return props
}

func tileCenter(t *Terrain, z, x int) mgl32.Vec3 {
	p := t.params
	return mgl32.Vec3{
		p.PlaneOffsetX + (float32(x)+0.5)*p.TileWidth,
		t.TileCenterHeight(z, x),
		p.PlaneOffsetZ + (float32(z)+0.5)*p.TileHeight,
	}
}
