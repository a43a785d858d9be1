// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for the terrain surface.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for the terrain surface.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// LineVertexShader is the vertex shader for debug lines.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for debug lines.
//
//go:embed line.frag
var LineFragmentShader string
