// Package viewer implements the interactive terrain viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/camera"
	"github.com/Faultbox/midgard-terrain/internal/engine/debug"
	"github.com/Faultbox/midgard-terrain/internal/engine/input"
	"github.com/Faultbox/midgard-terrain/internal/engine/lighting"
	"github.com/Faultbox/midgard-terrain/internal/engine/renderer"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/engine/window"
)

const title = "Midgard Terrain"

// Viewer owns the window, the renderer and the terrain currently shown.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	camera     *camera.OrbitCamera
	sun        lighting.Sun
	screenshot *debug.ScreenshotCapture

	terrain *terrain.Terrain
	props   []terrain.Prop
}

// New opens the window and generates the first terrain.
func New(cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	v := &Viewer{
		cfg:        cfg,
		log:        log,
		input:      input.New(),
		camera:     camera.NewOrbitCamera(),
		sun:        lighting.DefaultSun(),
		screenshot: debug.NewScreenshotCapture(cfg.Output.Dir, "terrain"),
	}

	// Window first, it creates the OpenGL context
	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w, h := v.window.DrawableSize()
	rcfg := renderer.DefaultConfig(w, h)
	rcfg.Wireframe = cfg.Graphics.Wireframe
	rcfg.SlotSize = cfg.Atlas.SlotSize
	v.renderer, err = renderer.New(rcfg, log.Named("renderer"))
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := v.generate(); err != nil {
		v.Close()
		return nil, err
	}

	log.Info("viewer initialized")
	return v, nil
}

// generate builds a terrain from the current config and hands it to the renderer.
func (v *Viewer) generate() error {
	gen, err := v.cfg.NewGenerator(v.log.Named("terrain"))
	if err != nil {
		return err
	}
	t, err := gen.Generate(v.renderer)
	if err != nil {
		return fmt.Errorf("generating terrain: %w", err)
	}

	var props []terrain.Prop
	if v.cfg.Props.Enabled {
		s, err := v.cfg.NewPropScatterer(v.log.Named("props"))
		if err != nil {
			return err
		}
		props = s.Scatter(t, v.renderer)
	}

	v.terrain = t
	v.props = props
	mesh := t.Mesh()
	v.camera.FitToBounds(mesh.Bounds.Min, mesh.Bounds.Max)

	v.log.Info("terrain ready",
		zap.Int64("seed", v.cfg.Terrain.Seed),
		zap.Float32("min_height", t.MinHeight()),
		zap.Float32("max_height", t.MaxHeight()),
		zap.Int("props", len(props)),
	)
	return nil
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			if err := v.handleEvent(event); err != nil {
				return err
			}
		}
		v.update()

		v.renderer.Draw(renderer.Frame{
			ViewProj:  v.camera.ViewProjection(v.renderer.Aspect()),
			CameraPos: v.camera.Position(),
			Sun:       v.sun,
		})
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			v.window.SetTitle(v.status(frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvent(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		v.renderer.Resize(v.window.DrawableSize())
	case input.EventMouseMove:
		if v.input.IsButtonHeld(sdl.BUTTON_LEFT) {
			v.camera.HandleDrag(event.DeltaX, event.DeltaY)
		}
	case input.EventMouseWheel:
		v.camera.HandleZoom(event.DeltaY)
	case input.EventKeyDown:
		switch event.Key {
		case sdl.SCANCODE_ESCAPE:
			v.running = false
		case sdl.SCANCODE_F:
			v.renderer.SetWireframe(!v.renderer.Wireframe())
		case sdl.SCANCODE_B:
			v.renderer.SetShowBounds(!v.renderer.ShowBounds())
		case sdl.SCANCODE_R:
			// zero picks a fresh clock seed
			v.cfg.Terrain.Seed = 0
			if err := v.generate(); err != nil {
				return fmt.Errorf("regenerating terrain: %w", err)
			}
		case sdl.SCANCODE_F12:
			v.capture()
		}
	}
	return nil
}

// update pans the camera from the held movement keys.
func (v *Viewer) update() {
	var forward, right, up float32
	if v.input.IsKeyHeld(sdl.SCANCODE_W) {
		forward++
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_S) {
		forward--
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_D) {
		right++
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_A) {
		right--
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_E) {
		up++
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_Q) {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		v.camera.HandleMovement(forward, right, up)
	}
}

func (v *Viewer) capture() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.screenshot.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// status is the window title: fps, seed and the ground under the camera center.
func (v *Viewer) status(fps int) string {
	c := v.camera.Center
	s := fmt.Sprintf("%s | %d fps | seed %d", title, fps, v.cfg.Terrain.Seed)
	if z, x, ok := v.terrain.TileAt(c.X(), c.Z()); ok {
		s += fmt.Sprintf(" | tile %d,%d band %d height %.2f", x, z, v.terrain.Band(z, x), v.terrain.HeightAt(c.X(), c.Z()))
	}
	return s
}

// Close releases the renderer and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
