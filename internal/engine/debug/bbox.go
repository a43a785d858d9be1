package debug

import "github.com/go-gl/mathgl/mgl32"

// BoxLineVertexCount is the number of line endpoints in a box wireframe (12 edges x 2).
const BoxLineVertexCount = 24

// BoxLines returns line endpoints for the wireframe of the box spanning lo to hi.
func BoxLines(lo, hi mgl32.Vec3) []mgl32.Vec3 {
	return AppendBoxLines(make([]mgl32.Vec3, 0, BoxLineVertexCount), lo, hi)
}

// AppendBoxLines appends the wireframe of the box spanning lo to hi to dst.
// Swapped corners are put in order first.
func AppendBoxLines(dst []mgl32.Vec3, lo, hi mgl32.Vec3) []mgl32.Vec3 {
	for i := range 3 {
		if lo[i] > hi[i] {
			lo[i], hi[i] = hi[i], lo[i]
		}
	}

	c := [8]mgl32.Vec3{
		{lo.X(), lo.Y(), lo.Z()}, {hi.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), hi.Z()}, {lo.X(), lo.Y(), hi.Z()},
		{lo.X(), hi.Y(), lo.Z()}, {hi.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), hi.Z()}, {lo.X(), hi.Y(), hi.Z()},
	}
	for i := range 4 {
		next := (i + 1) % 4
		dst = append(dst,
			c[i], c[next],     // bottom
			c[i+4], c[next+4], // top
			c[i], c[i+4],      // vertical
		)
	}
	return dst
}

// PropMarker returns the wireframe of an upright box standing on pos.
// width is the footprint edge, height the box height.
func PropMarker(pos mgl32.Vec3, width, height float32) []mgl32.Vec3 {
	half := width / 2
	return BoxLines(
		mgl32.Vec3{pos.X() - half, pos.Y(), pos.Z() - half},
		mgl32.Vec3{pos.X() + half, pos.Y() + height, pos.Z() + half},
	)
}
