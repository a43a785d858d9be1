// Package camera provides the orbit camera used to inspect generated terrain.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center mgl32.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // radians above the horizon
	Yaw      float32 // radians around Y

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32

	FOV  float32 // vertical field of view, radians
	Near float32
	Far  float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        60,
		Pitch:           0.6,
		MinDistance:     2,
		MaxDistance:     2000,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FOV:             mgl32.DegToRad(50),
		Near:            0.1,
		Far:             5000,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	pitch, yaw := float64(c.Pitch), float64(c.Yaw)
	offset := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Cos(yaw)),
	}
	return c.Center.Add(offset.Mul(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns a perspective projection for the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.ProjectionMatrix(aspect).Mul4(c.ViewMatrix())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = mgl32.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandleMovement pans the center point relative to the current yaw.
// Speed scales with distance so panning feels the same at any zoom.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	speed := c.Distance * 0.01
	sin, cos := float32(math.Sin(float64(c.Yaw))), float32(math.Cos(float64(c.Yaw)))

	// W moves into the scene, away from the camera
	c.Center[0] += (-sin*forward + cos*right) * speed
	c.Center[2] += (-cos*forward - sin*right) * speed
	c.Center[1] += up * speed
}

// FitToBounds centers the camera on a box and backs off far enough to see all of it.
func (c *OrbitCamera) FitToBounds(lo, hi mgl32.Vec3) {
	c.Center = lo.Add(hi).Mul(0.5)

	size := hi.Sub(lo)
	extent := size.X()
	if size.Z() > extent {
		extent = size.Z()
	}
	if size.Y() > extent {
		extent = size.Y()
	}

	c.Distance = mgl32.Clamp(extent*1.1, c.MinDistance, c.MaxDistance)
	c.Far = max(c.Far, c.Distance*4)
	c.Pitch = 0.6
	c.Yaw = 0
}
