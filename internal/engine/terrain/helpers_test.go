package terrain

import (
	"errors"
)

// constNoise returns the same value everywhere.
type constNoise float64

func (c constNoise) Noise2D(a, b float64) float64 { return float64(c) }

// funcNoise adapts a plain function.
type funcNoise func(a, b float64) float64

func (f funcNoise) Noise2D(a, b float64) float64 { return f(a, b) }

// fixedRandom returns lo from every range and the same integer from every draw.
type fixedRandom struct {
	draw  int
	draws int
}

func (r *fixedRandom) Float64Range(lo, hi float64) float64 { return lo }

func (r *fixedRandom) Intn(n int) int {
	r.draws++
	return r.draw
}

type recordingRenderer struct {
	surfaces []Surface
	err      error
}

func (r *recordingRenderer) UploadSurface(s Surface) error {
	if r.err != nil {
		return r.err
	}
	r.surfaces = append(r.surfaces, s)
	return nil
}

type recordingSpawner struct {
	props []Prop
}

func (s *recordingSpawner) SpawnProp(p Prop) {
	s.props = append(s.props, p)
}

var errGPULost = errors.New("gpu lost")

// testTerrain builds a terrain from explicit corner heights, indexed [z][x].
func testTerrain(rows [][]float32) *Terrain {
	p := DefaultParams()
	p.TilesDeep = len(rows) - 1
	p.TilesWide = len(rows[0]) - 1

	hm := &Heightmap{Samples: rows, MinHeight: rows[0][0], MaxHeight: rows[0][0]}
	for _, row := range rows {
		for _, h := range row {
			hm.MinHeight = min(hm.MinHeight, h)
			hm.MaxHeight = max(hm.MaxHeight, h)
		}
	}

	atlas, err := NewTextureAtlas(p.NumTextures)
	if err != nil {
		panic(err)
	}
	normals := EstimateNormals(hm, 1)
	mesh, textures := BuildMesh(p, hm, normals, atlas)
	return &Terrain{
		params:   p,
		heights:  hm,
		normals:  normals,
		textures: textures,
		atlas:    atlas,
		mesh:     mesh,
	}
}

// ramp returns a (deep+1)x(wide+1) grid where h = x + z.
func ramp(wide, deep int) [][]float32 {
	rows := make([][]float32, deep+1)
	for z := range rows {
		rows[z] = make([]float32, wide+1)
		for x := range rows[z] {
			rows[z][x] = float32(x + z)
		}
	}
	return rows
}
