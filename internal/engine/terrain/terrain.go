package terrain

import (
	"fmt"
)

// Terrain is the result of one generation pass. It is read-only.
type Terrain struct {
	params   Params
	heights  *Heightmap
	normals  NormalMap
	textures TextureMap
	atlas    *TextureAtlas
	mesh     *MeshBuffers
	texture  string
}

// Params returns the parameters the terrain was generated with.
func (t *Terrain) Params() Params {
	return t.params
}

// Heightmap returns the corner elevations.
func (t *Terrain) Heightmap() *Heightmap {
	return t.heights
}

// NormalMap returns the smoothed per-vertex normals.
func (t *Terrain) NormalMap() NormalMap {
	return t.normals
}

// TextureMap returns the band of every tile.
func (t *Terrain) TextureMap() TextureMap {
	return t.textures
}

// Atlas returns the UV index of the texture atlas.
func (t *Terrain) Atlas() *TextureAtlas {
	return t.atlas
}

// Mesh returns the assembled buffers.
func (t *Terrain) Mesh() *MeshBuffers {
	return t.mesh
}

// TilesWide returns the tile count along X.
func (t *Terrain) TilesWide() int {
	return t.params.TilesWide
}

// TilesDeep returns the tile count along Z.
func (t *Terrain) TilesDeep() int {
	return t.params.TilesDeep
}

// TileWidth returns the X size of a tile in world units.
func (t *Terrain) TileWidth() float32 {
	return t.params.TileWidth
}

// TileHeight returns the Z size of a tile in world units.
func (t *Terrain) TileHeight() float32 {
	return t.params.TileHeight
}

// MinHeight returns the lowest sample.
func (t *Terrain) MinHeight() float32 {
	return t.heights.MinHeight
}

// MaxHeight returns the highest sample.
func (t *Terrain) MaxHeight() float32 {
	return t.heights.MaxHeight
}

// Band returns the band of tile (z, x).
func (t *Terrain) Band(z, x int) int {
	return t.textures[z][x]
}

// HeightAtVertex returns the elevation of grid vertex (z, x).
func (t *Terrain) HeightAtVertex(z, x int) float32 {
	return t.heights.At(z, x)
}

// Surface returns what the renderer receives on Bind. The mesh is a copy.
func (t *Terrain) Surface() Surface {
	return Surface{
		Mesh:     t.mesh.Clone(),
		Atlas:    t.atlas,
		Texture:  t.texture,
		Material: Material{Glossiness: 0, Metallic: 0},
	}
}

// Bind hands the surface to r.
func (t *Terrain) Bind(r Renderer) error {
	if err := r.UploadSurface(t.Surface()); err != nil {
		return fmt.Errorf("bind surface: %w", err)
	}
	return nil
}

// TileCenterHeight returns the mean of the 4 corner heights of tile (z, x).
func (t *Terrain) TileCenterHeight(z, x int) float32 {
	hm := t.heights
	sum := hm.At(z, x) + hm.At(z+1, x) + hm.At(z, x+1) + hm.At(z+1, x+1)
	return sum / 4
}

// TileAt returns the tile containing a world position.
func (t *Terrain) TileAt(worldX, worldZ float32) (z, x int, ok bool) {
	fx := (worldX - t.params.PlaneOffsetX) / t.params.TileWidth
	fz := (worldZ - t.params.PlaneOffsetZ) / t.params.TileHeight
	// NaN fails every comparison, so test for the inside instead of the outside
	if !(fx >= 0 && fx < float32(t.params.TilesWide)) || !(fz >= 0 && fz < float32(t.params.TilesDeep)) {
		return 0, 0, false
	}
	x, z = int(fx), int(fz)
	return z, x, true
}

// HeightAt returns the bilinearly interpolated height at a world position.
// Positions outside the map are clamped to its edge.
func (t *Terrain) HeightAt(worldX, worldZ float32) float32 {
	p := t.params
	fx := clampf((worldX-p.PlaneOffsetX)/p.TileWidth, 0, float32(p.TilesWide))
	fz := clampf((worldZ-p.PlaneOffsetZ)/p.TileHeight, 0, float32(p.TilesDeep))

	x := min(int(fx), p.TilesWide-1)
	z := min(int(fz), p.TilesDeep-1)
	fracX := fx - float32(x)
	fracZ := fz - float32(z)

	hm := t.heights
	near := hm.At(z, x)*(1-fracX) + hm.At(z, x+1)*fracX
	far := hm.At(z+1, x)*(1-fracX) + hm.At(z+1, x+1)*fracX
	return near*(1-fracZ) + far*fracZ
}

// BandCounts returns how many tiles fell in each band.
func (t *Terrain) BandCounts() [NumBands]int {
	var counts [NumBands]int
	for _, row := range t.textures {
		for _, band := range row {
			if band >= 0 && band < NumBands {
				counts[band]++
			}
		}
	}
	return counts
}

// clampf maps NaN to lo.
func clampf(v, lo, hi float32) float32 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
