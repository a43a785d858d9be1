package terrain

import (
	"errors"
	"reflect"
	"testing"
)

func TestGenerate_FlatScenario(t *testing.T) {
	p := DefaultParams()
	p.TilesWide, p.TilesDeep = 2, 2
	p.HeightScale = 10
	p.NoiseScale = 0.1

	g, err := NewGenerator(p, WithNoise(constNoise(0.5)), WithRandom(&fixedRandom{}))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	tr, err := g.Generate(nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for z, row := range tr.Heightmap().Samples {
		for x, h := range row {
			if h != 5 {
				t.Errorf("height (%d,%d) = %v, want 5", z, x, h)
			}
		}
	}
	if tr.MinHeight() != 5 || tr.MaxHeight() != 5 {
		t.Errorf("extent = [%v, %v], want [5, 5]", tr.MinHeight(), tr.MaxHeight())
	}
	for z, row := range tr.TextureMap() {
		for x, band := range row {
			if band != 7 {
				t.Errorf("tile (%d,%d) band = %d, want 7", z, x, band)
			}
		}
	}

	mesh := tr.Mesh()
	if len(mesh.Vertices) != 24 || len(mesh.Triangles) != 24 {
		t.Fatalf("mesh has %d vertices and %d indices, want 24 and 24", len(mesh.Vertices), len(mesh.Triangles))
	}
	for i, v := range mesh.Vertices {
		if v.Y() != 5 {
			t.Errorf("vertex %d Y = %v, want 5", i, v.Y())
		}
	}
	if got := tr.BandCounts(); got[7] != 4 {
		t.Errorf("BandCounts()[7] = %d, want 4", got[7])
	}
}

func TestNewGenerator_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{"zero wide", func(p *Params) { p.TilesWide = 0 }},
		{"negative wide", func(p *Params) { p.TilesWide = -4 }},
		{"zero deep", func(p *Params) { p.TilesDeep = 0 }},
		{"negative deep", func(p *Params) { p.TilesDeep = -1 }},
		{"zero textures", func(p *Params) { p.NumTextures = 0 }},
		{"too few textures", func(p *Params) { p.NumTextures = 4 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)

			var phases []Phase
			g, err := NewGenerator(p, WithPhaseHook(func(ph Phase) { phases = append(phases, ph) }))
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("error = %v, want ErrInvalidConfiguration", err)
			}
			if g != nil {
				t.Error("generator returned alongside error")
			}
			if len(phases) != 0 {
				t.Errorf("phases ran: %v", phases)
			}
		})
	}
}

func TestGenerate_Phases(t *testing.T) {
	p := DefaultParams()
	p.TilesWide, p.TilesDeep = 3, 3

	var phases []Phase
	g, err := NewGenerator(p, WithSeed(1, DefaultNoiseOptions()),
		WithPhaseHook(func(ph Phase) { phases = append(phases, ph) }))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	if _, err := g.Generate(&recordingRenderer{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []Phase{PhaseSynthesizeHeights, PhaseEstimateNormals, PhaseBuildAtlas, PhaseAssembleMesh, PhaseBindToRenderer}
	if !reflect.DeepEqual(phases, want) {
		t.Errorf("phases = %v, want %v", phases, want)
	}

	phases = nil
	if _, err := g.Generate(nil); err != nil {
		t.Fatalf("Generate(nil): %v", err)
	}
	if !reflect.DeepEqual(phases, want[:4]) {
		t.Errorf("headless phases = %v, want %v", phases, want[:4])
	}
}

func TestGenerate_BindsMatteSurface(t *testing.T) {
	p := DefaultParams()
	p.TilesWide, p.TilesDeep = 2, 3
	g, err := NewGenerator(p, WithSeed(9, DefaultNoiseOptions()), WithAtlasTexture("atlas.png"))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	r := &recordingRenderer{}
	tr, err := g.Generate(r)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(r.surfaces) != 1 {
		t.Fatalf("renderer received %d surfaces, want 1", len(r.surfaces))
	}

	s := r.surfaces[0]
	if s.Material.Glossiness != 0 || s.Material.Metallic != 0 {
		t.Errorf("material = %+v, want matte", s.Material)
	}
	if s.Texture != "atlas.png" {
		t.Errorf("texture = %q, want atlas.png", s.Texture)
	}
	if !reflect.DeepEqual(s.Mesh, tr.Mesh()) {
		t.Error("bound mesh differs from terrain mesh")
	}

	// the renderer gets a copy
	s.Mesh.Vertices[0][1] += 100
	if tr.Mesh().Vertices[0][1] == s.Mesh.Vertices[0][1] {
		t.Error("renderer mutation leaked into the terrain mesh")
	}
}

func TestGenerate_BindError(t *testing.T) {
	p := DefaultParams()
	p.TilesWide, p.TilesDeep = 2, 2
	g, err := NewGenerator(p, WithSeed(2, DefaultNoiseOptions()))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	tr, err := g.Generate(&recordingRenderer{err: errGPULost})
	if !errors.Is(err, errGPULost) {
		t.Fatalf("error = %v, want %v", err, errGPULost)
	}
	if tr == nil || len(tr.Mesh().Vertices) != 24 {
		t.Error("terrain not returned complete after bind failure")
	}

	// binding again once the host recovers
	if err := tr.Bind(&recordingRenderer{}); err != nil {
		t.Errorf("Bind: %v", err)
	}
}

func TestGenerate_SeedIsDeterministic(t *testing.T) {
	p := DefaultParams()
	p.TilesWide, p.TilesDeep = 12, 8

	run := func(workers int) *Terrain {
		p.Workers = workers
		g, err := NewGenerator(p, WithSeed(1234, DefaultNoiseOptions()))
		if err != nil {
			t.Fatalf("NewGenerator: %v", err)
		}
		tr, err := g.Generate(nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		return tr
	}

	a, b, c := run(1), run(1), run(8)
	if !reflect.DeepEqual(a.Mesh(), b.Mesh()) {
		t.Error("same seed produced different meshes")
	}
	if !reflect.DeepEqual(a.Mesh(), c.Mesh()) || !reflect.DeepEqual(a.TextureMap(), c.TextureMap()) {
		t.Error("parallel run differs from serial run")
	}
	if a.MinHeight() != c.MinHeight() || a.MaxHeight() != c.MaxHeight() {
		t.Error("parallel extent differs from serial extent")
	}
}

func TestPhase_String(t *testing.T) {
	if s := PhaseAssembleMesh.String(); s != "assemble_mesh" {
		t.Errorf("String() = %q", s)
	}
	if s := Phase(42).String(); s != "phase(42)" {
		t.Errorf("String() = %q", s)
	}
}
