// Package terrain generates tiled terrain meshes from noise-synthesized heightmaps.
package terrain

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Heightmap holds elevations sampled at tile corners.
// Samples are indexed [z][x] with (TilesDeep+1) rows of (TilesWide+1) samples.
type Heightmap struct {
	Samples   [][]float32
	MinHeight float32
	MaxHeight float32
}

// At returns the elevation at vertex (z, x).
func (h *Heightmap) At(z, x int) float32 {
	return h.Samples[z][x]
}

// Range returns MaxHeight - MinHeight.
func (h *Heightmap) Range() float32 {
	return h.MaxHeight - h.MinHeight
}

// NormalMap holds one normal per heightmap vertex, indexed [z][x].
type NormalMap [][]mgl32.Vec3

// TextureMap holds the texture band chosen for every tile, indexed [z][x].
type TextureMap [][]int

// MeshBuffers holds the flat buffers handed to the host renderer.
// Vertices are not shared between tiles: every tile owns 6 consecutive entries.
type MeshBuffers struct {
	Vertices  []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Triangles []uint32
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Material holds the surface parameters requested from the host.
// The zero Material is fully matte.
type Material struct {
	Glossiness float32
	Metallic   float32
}

// Clone returns a deep copy of the buffers.
func (m *MeshBuffers) Clone() *MeshBuffers {
	return &MeshBuffers{
		Vertices:  slices.Clone(m.Vertices),
		Normals:   slices.Clone(m.Normals),
		UVs:       slices.Clone(m.UVs),
		Triangles: slices.Clone(m.Triangles),
		Bounds:    m.Bounds,
	}
}

// InterleavedStride is the number of floats per vertex returned by Interleaved.
const InterleavedStride = 8

// Interleaved packs position, normal and UV of every vertex into one slice,
// InterleavedStride floats per vertex, the layout GPU vertex buffers expect.
func (m *MeshBuffers) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*InterleavedStride)
	for i, v := range m.Vertices {
		n, uv := m.Normals[i], m.UVs[i]
		out = append(out, v[0], v[1], v[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return out
}

// Surface is everything the host needs to build a drawable terrain.
type Surface struct {
	Mesh     *MeshBuffers
	Atlas    *TextureAtlas
	Texture  string // host texture handle or path for the atlas image
	Material Material
}

// Prop is a decorative object placed on a tile.
type Prop struct {
	Template string
	TileX    int
	TileZ    int
	Position mgl32.Vec3
}

// Renderer accepts finished terrain surfaces.
// Implementations may also use the mesh as a collision shape.
type Renderer interface {
	UploadSurface(s Surface) error
}

// PropSpawner instantiates props requested by the scatter pass.
type PropSpawner interface {
	SpawnProp(p Prop)
}

// NormalMode selects how vertex normals are computed.
type NormalMode int

const (
	// NormalSmoothed derives normals from neighbouring heightmap samples.
	NormalSmoothed NormalMode = iota
	// NormalFlat gives each triangle one normal from its edge vectors.
	NormalFlat
)

// String returns the config name of the mode.
func (m NormalMode) String() string {
	switch m {
	case NormalSmoothed:
		return "smoothed"
	case NormalFlat:
		return "flat"
	}
	return "unknown"
}

// ParseNormalMode converts a config name to a NormalMode.
func ParseNormalMode(s string) (NormalMode, bool) {
	switch s {
	case "", "smoothed":
		return NormalSmoothed, true
	case "flat":
		return NormalFlat, true
	}
	return NormalSmoothed, false
}
