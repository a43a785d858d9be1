package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// VerticesPerTile is the number of buffer entries each tile owns (2 triangles).
const VerticesPerTile = 6

// BuildMesh assembles one quad per tile from the heightmap.
// normals is only read in NormalSmoothed mode. The returned texture map holds the
// band of each tile's first triangle.
func BuildMesh(p Params, hm *Heightmap, normals NormalMap, atlas *TextureAtlas) (*MeshBuffers, TextureMap) {
	numVertices := p.TilesWide * p.TilesDeep * VerticesPerTile
	mesh := &MeshBuffers{
		Vertices:  make([]mgl32.Vec3, numVertices),
		Normals:   make([]mgl32.Vec3, numVertices),
		UVs:       make([]mgl32.Vec2, numVertices),
		Triangles: make([]uint32, numVertices),
	}

	textures := make(TextureMap, p.TilesDeep)
	textureBacking := make([]int, p.TilesDeep*p.TilesWide)
	rowBounds := make([]Bounds, p.TilesDeep)

	forEachRow(p.TilesDeep, p.Workers, func(z int) {
		textures[z] = textureBacking[z*p.TilesWide : (z+1)*p.TilesWide : (z+1)*p.TilesWide]
		bounds := emptyBounds()
		for x := range p.TilesWide {
			buildTile(p, hm, normals, atlas, mesh, textures, z, x)
			base := (z*p.TilesWide + x) * VerticesPerTile
			for _, v := range mesh.Vertices[base : base+VerticesPerTile] {
				bounds.extend(v)
			}
		}
		rowBounds[z] = bounds
	})

	mesh.Bounds = emptyBounds()
	for _, b := range rowBounds {
		mesh.Bounds.extend(b.Min)
		mesh.Bounds.extend(b.Max)
	}
	return mesh, textures
}

// buildTile writes the 6 vertices and 6 indices of tile (z, x).
func buildTile(p Params, hm *Heightmap, normals NormalMap, atlas *TextureAtlas,
	mesh *MeshBuffers, textures TextureMap, z, x int) {

	baseX := p.PlaneOffsetX + float32(x)*p.TileWidth
	baseZ := p.PlaneOffsetZ + float32(z)*p.TileHeight
	base := (z*p.TilesWide + x) * VerticesPerTile

	h0 := hm.At(z, x)
	h1 := hm.At(z+1, x)
	h2 := hm.At(z+1, x+1)
	h3 := hm.At(z, x+1)

	// Corners: 0 = (x, z), 1 = (x, z+1), 2 = (x+1, z+1), 3 = (x+1, z)
	c0 := mgl32.Vec3{baseX, h0, baseZ}
	c1 := mgl32.Vec3{baseX, h1, baseZ + p.TileHeight}
	c2 := mgl32.Vec3{baseX + p.TileWidth, h2, baseZ + p.TileHeight}
	c3 := mgl32.Vec3{baseX + p.TileWidth, h3, baseZ}

	verts := mesh.Vertices[base : base+VerticesPerTile]
	verts[0], verts[1], verts[2] = c0, c1, c2
	verts[3], verts[4], verts[5] = c0, c2, c3

	norms := mesh.Normals[base : base+VerticesPerTile]
	switch p.Normals {
	case NormalFlat:
		a := TriangleNormal(c0, c1, c2)
		b := TriangleNormal(c0, c2, c3)
		norms[0], norms[1], norms[2] = a, a, a
		norms[3], norms[4], norms[5] = b, b, b
	default:
		norms[0] = normals[z][x]
		norms[1] = normals[z+1][x]
		norms[2] = normals[z+1][x+1]
		norms[3] = normals[z][x]
		norms[4] = normals[z+1][x+1]
		norms[5] = normals[z][x+1]
	}

	bandA := p.Bins.Classify(hm.MinHeight, hm.MaxHeight, h0, h1, h2)
	bandB := bandA
	if p.PerTriangleTextures {
		bandB = p.Bins.Classify(hm.MinHeight, hm.MaxHeight, h0, h2, h3)
	}
	textures[z][x] = bandA

	uvA := atlas.Entry(bandA)
	uvB := atlas.Entry(bandB)
	uvs := mesh.UVs[base : base+VerticesPerTile]
	uvs[0], uvs[1], uvs[2] = uvA.BottomLeft, uvA.TopLeft, uvA.TopRight
	uvs[3], uvs[4], uvs[5] = uvB.BottomLeft, uvB.TopRight, uvB.BottomRight

	tris := mesh.Triangles[base : base+VerticesPerTile]
	for i := range tris {
		tris[i] = uint32(base + i)
	}
}

func emptyBounds() Bounds {
	inf := float32(math.Inf(1))
	return Bounds{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

func (b *Bounds) extend(p mgl32.Vec3) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}
