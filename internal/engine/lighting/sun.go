// Package lighting provides the directional light of the terrain viewer.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light with ambient and diffuse colours.
type Sun struct {
	Azimuth   float32 // degrees around Y, 0 points toward +Z
	Elevation float32 // degrees above the horizon
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
}

// DefaultSun is a late-morning sun over the terrain.
func DefaultSun() Sun {
	return Sun{
		Azimuth:   135,
		Elevation: 45,
		Ambient:   mgl32.Vec3{0.35, 0.35, 0.4},
		Diffuse:   mgl32.Vec3{0.9, 0.85, 0.75},
	}
}

// Direction returns the normalized vector pointing towards the sun.
func (s Sun) Direction() mgl32.Vec3 {
	return SunDirection(s.Azimuth, s.Elevation)
}

// SunDirection converts azimuth/elevation angles in degrees to a unit vector
// pointing towards the light.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	az := float64(mgl32.DegToRad(azimuth))
	el := float64(mgl32.DegToRad(elevation))

	return mgl32.Vec3{
		float32(math.Cos(el) * math.Sin(az)),
		float32(math.Sin(el)),
		float32(math.Cos(el) * math.Cos(az)),
	}
}
