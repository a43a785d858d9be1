package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

// surface is a terrain mesh resident on the GPU.
type surface struct {
	vao, vbo, ebo uint32
	atlasTex      uint32
	indexCount    int32
	material      terrain.Material
}

func uploadSurface(s terrain.Surface, slotSize int) (*surface, error) {
	img, err := atlasImage(s, slotSize)
	if err != nil {
		return nil, fmt.Errorf("atlas texture: %w", err)
	}

	out := &surface{
		atlasTex:   uploadTexture(img),
		indexCount: int32(len(s.Mesh.Triangles)),
		material:   s.Material,
	}
	vertices := s.Mesh.Interleaved()
	indices := s.Mesh.Triangles

	gl.GenVertexArrays(1, &out.vao)
	gl.BindVertexArray(out.vao)

	gl.GenBuffers(1, &out.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, out.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(terrain.InterleavedStride * 4)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &out.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, out.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return out, nil
}

func (s *surface) destroy() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	if s.ebo != 0 {
		gl.DeleteBuffers(1, &s.ebo)
		s.ebo = 0
	}
	if s.atlasTex != 0 {
		gl.DeleteTextures(1, &s.atlasTex)
		s.atlasTex = 0
	}
}
