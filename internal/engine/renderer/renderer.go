// Package renderer is the OpenGL host of generated terrain. It receives the
// terrain surface through UploadSurface, prop placements through SpawnProp, and
// draws both every frame.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/engine/lighting"
	"github.com/Faultbox/midgard-terrain/internal/engine/renderer/shaders"
	"github.com/Faultbox/midgard-terrain/internal/engine/shader"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Wireframe  bool
	ShowBounds bool
	SlotSize   int // pixels per slot when the atlas is generated
	PropWidth  float32
	PropHeight float32
	ClearColor mgl32.Vec4
}

// DefaultConfig returns a renderer config for the given framebuffer size.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		ShowBounds: true,
		SlotSize:   64,
		PropWidth:  0.4,
		PropHeight: 1.5,
		ClearColor: mgl32.Vec4{0.53, 0.70, 0.85, 1},
	}
}

// Frame is the per-frame camera and light state.
type Frame struct {
	ViewProj  mgl32.Mat4
	CameraPos mgl32.Vec3
	Sun       lighting.Sun
}

// Renderer owns the GL programs and the uploaded terrain.
type Renderer struct {
	config Config
	log    *zap.Logger

	terrainProgram uint32
	terrainLocs    map[string]int32
	lineProgram    uint32
	lineLocs       map[string]int32

	surface *surface
	props   *propMarkers
	bounds  *lineBatch
}

var (
	_ terrain.Renderer    = (*Renderer)(nil)
	_ terrain.PropSpawner = (*Renderer)(nil)
)

// New creates a new renderer.
// The OpenGL context must exist and be current on the calling thread.
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{config: cfg, log: log}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.terrainProgram, err = shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	r.terrainLocs, err = shader.Uniforms(r.terrainProgram,
		"uViewProj", "uAtlas", "uLightDir", "uAmbient", "uDiffuse", "uCameraPos", "uGlossiness", "uMetallic")
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	r.lineProgram, err = shader.CompileProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("line shader: %w", err)
	}
	r.lineLocs, err = shader.Uniforms(r.lineProgram, "uViewProj", "uColor")
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.props = newPropMarkers(cfg.PropWidth, cfg.PropHeight)
	r.bounds = &lineBatch{}
	return r, nil
}

// UploadSurface replaces the drawn terrain with s.
func (r *Renderer) UploadSurface(s terrain.Surface) error {
	if s.Mesh == nil || len(s.Mesh.Vertices) == 0 {
		return fmt.Errorf("surface has no vertices")
	}

	next, err := uploadSurface(s, r.config.SlotSize)
	if err != nil {
		return err
	}
	if r.surface != nil {
		r.surface.destroy()
	}
	r.surface = next
	r.props.clear()
	r.bounds.set(boundsLines(s.Mesh.Bounds))

	r.log.Info("surface uploaded",
		zap.Int("vertices", len(s.Mesh.Vertices)),
		zap.Int("indices", len(s.Mesh.Triangles)),
		zap.String("texture", textureName(s.Texture)),
		zap.Float32("glossiness", s.Material.Glossiness),
		zap.Float32("metallic", s.Material.Metallic),
	)
	return nil
}

// SpawnProp adds a marker for p. Markers go to the GPU on the next Draw.
func (r *Renderer) SpawnProp(p terrain.Prop) {
	r.props.add(p)
	r.log.Debug("prop spawned",
		zap.String("template", p.Template),
		zap.Int("tile_x", p.TileX),
		zap.Int("tile_z", p.TileZ),
	)
}

// SetWireframe toggles line rendering of the terrain.
func (r *Renderer) SetWireframe(on bool) {
	r.config.Wireframe = on
}

// Wireframe reports whether the terrain is drawn as lines.
func (r *Renderer) Wireframe() bool {
	return r.config.Wireframe
}

// SetShowBounds toggles the bounding box of the terrain.
func (r *Renderer) SetShowBounds(on bool) {
	r.config.ShowBounds = on
}

// ShowBounds reports whether the bounding box is drawn.
func (r *Renderer) ShowBounds() bool {
	return r.config.ShowBounds
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns the framebuffer aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Draw clears the framebuffer and draws the terrain, prop markers and bounds.
func (r *Renderer) Draw(f Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.surface != nil {
		r.drawSurface(f)
	}

	gl.UseProgram(r.lineProgram)
	gl.UniformMatrix4fv(r.lineLocs["uViewProj"], 1, false, &f.ViewProj[0])

	r.props.flush()
	gl.Uniform3f(r.lineLocs["uColor"], 0.35, 0.2, 0.05)
	r.props.batch.draw()

	if r.config.ShowBounds {
		gl.Uniform3f(r.lineLocs["uColor"], 1, 1, 0)
		r.bounds.draw()
	}
}

func (r *Renderer) drawSurface(f Frame) {
	s := r.surface
	loc := r.terrainLocs

	gl.UseProgram(r.terrainProgram)
	gl.UniformMatrix4fv(loc["uViewProj"], 1, false, &f.ViewProj[0])

	dir := f.Sun.Direction()
	gl.Uniform3f(loc["uLightDir"], dir[0], dir[1], dir[2])
	gl.Uniform3f(loc["uAmbient"], f.Sun.Ambient[0], f.Sun.Ambient[1], f.Sun.Ambient[2])
	gl.Uniform3f(loc["uDiffuse"], f.Sun.Diffuse[0], f.Sun.Diffuse[1], f.Sun.Diffuse[2])
	gl.Uniform3f(loc["uCameraPos"], f.CameraPos[0], f.CameraPos[1], f.CameraPos[2])
	gl.Uniform1f(loc["uGlossiness"], s.material.Glossiness)
	gl.Uniform1f(loc["uMetallic"], s.material.Metallic)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.atlasTex)
	gl.Uniform1i(loc["uAtlas"], 0)

	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.BindVertexArray(s.vao)
	gl.DrawElements(gl.TRIANGLES, s.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Close releases all GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.surface != nil {
		r.surface.destroy()
		r.surface = nil
	}
	if r.props != nil {
		r.props.batch.destroy()
	}
	if r.bounds != nil {
		r.bounds.destroy()
	}
	if r.terrainProgram != 0 {
		gl.DeleteProgram(r.terrainProgram)
		r.terrainProgram = 0
	}
	if r.lineProgram != 0 {
		gl.DeleteProgram(r.lineProgram)
		r.lineProgram = 0
	}
}

func textureName(handle string) string {
	if handle == "" {
		return "generated"
	}
	return handle
}
