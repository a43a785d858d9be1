package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// EstimateNormals computes a smoothed normal for every heightmap vertex.
//
// Each neighbour becomes a vector (gridX, height, gridZ); the normal is
// Cross(right-left, up-down). Neighbours past the edge reuse the boundary sample.
// Results are not normalized, and with this operand order their Y component is
// negative on any terrain.
func EstimateNormals(hm *Heightmap, workers int) NormalMap {
	rows := len(hm.Samples)
	normals := make(NormalMap, rows)
	if rows == 0 {
		return normals
	}
	cols := len(hm.Samples[0])
	backing := make([]mgl32.Vec3, rows*cols)

	forEachRow(rows, workers, func(z int) {
		row := backing[z*cols : (z+1)*cols : (z+1)*cols]
		for x := range row {
			row[x] = smoothedNormal(hm, z, x)
		}
		normals[z] = row
	})
	return normals
}

func smoothedNormal(hm *Heightmap, z, x int) mgl32.Vec3 {
	maxZ := len(hm.Samples) - 1
	maxX := len(hm.Samples[0]) - 1

	lx, rx := max(x-1, 0), min(x+1, maxX)
	dz, uz := max(z-1, 0), min(z+1, maxZ)

	left := mgl32.Vec3{float32(lx), hm.At(z, lx), float32(z)}
	right := mgl32.Vec3{float32(rx), hm.At(z, rx), float32(z)}
	up := mgl32.Vec3{float32(x), hm.At(uz, x), float32(uz)}
	down := mgl32.Vec3{float32(x), hm.At(dz, x), float32(dz)}

	return right.Sub(left).Cross(up.Sub(down))
}

// TriangleNormal returns the flat normal Cross(b-a, c-a) of triangle (a, b, c), not normalized.
func TriangleNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}
