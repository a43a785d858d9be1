package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/internal/engine/debug"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

// lineBatch is a set of GL_LINES endpoints on the GPU.
type lineBatch struct {
	vao, vbo uint32
	count    int32
}

func (b *lineBatch) set(points []mgl32.Vec3) {
	if b.vao == 0 {
		gl.GenVertexArrays(1, &b.vao)
		gl.GenBuffers(1, &b.vbo)
		gl.BindVertexArray(b.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
		gl.EnableVertexAttribArray(0)
		gl.BindVertexArray(0)
	}

	b.count = int32(len(points))
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(points) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(points)*3*4, gl.Ptr(points), gl.DYNAMIC_DRAW)
}

func (b *lineBatch) draw() {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.LINES, 0, b.count)
	gl.BindVertexArray(0)
}

func (b *lineBatch) destroy() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	b.count = 0
}

// propMarkers collects spawned props and uploads their boxes lazily.
type propMarkers struct {
	width, height float32
	points        []mgl32.Vec3
	dirty         bool
	batch         lineBatch
}

func newPropMarkers(width, height float32) *propMarkers {
	return &propMarkers{width: width, height: height}
}

func (m *propMarkers) add(p terrain.Prop) {
	m.points = append(m.points, debug.PropMarker(p.Position, m.width, m.height)...)
	m.dirty = true
}

func (m *propMarkers) clear() {
	m.points = m.points[:0]
	m.dirty = true
}

func (m *propMarkers) flush() {
	if !m.dirty {
		return
	}
	m.batch.set(m.points)
	m.dirty = false
}

func boundsLines(b terrain.Bounds) []mgl32.Vec3 {
	return debug.BoxLines(b.Min, b.Max)
}
