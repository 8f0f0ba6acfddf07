// Package view projects mesh vertices onto the screen.
package view

import (
	"github.com/chewxy/math32"

	"github.com/iburimskiy/times-circle/internal/geom"
)

const maxPitch = math32.Pi / 2

// Camera orbits the origin. Yaw turns around the world y axis, pitch tilts
// toward the viewer, and Scale is pixels per world unit.
type Camera struct {
	Yaw   float32
	Pitch float32
	Scale float32
}

func NewCamera(scale float32) *Camera { return &Camera{Scale: scale} }

// Orbit adds to yaw and pitch, keeping pitch within a quarter turn.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw = math32.Mod(c.Yaw+dYaw, 2*math32.Pi)
	c.Pitch = max(-maxPitch, min(c.Pitch+dPitch, maxPitch))
}

// Zoom multiplies Scale by factor, bounded to a sane range.
func (c *Camera) Zoom(factor float32) {
	const minScale, maxScale = 1, 2000
	c.Scale = max(minScale, min(c.Scale*factor, maxScale))
}

// Project maps v to screen coordinates for a viewport of width w and
// height h. World y points up while screen y points down.
func (c *Camera) Project(v geom.Vec3, w, h int) (x, y float32) {
	sy, cy := math32.Sin(c.Yaw), math32.Cos(c.Yaw)
	rx := v.X*cy + v.Z*sy
	rz := -v.X*sy + v.Z*cy

	sp, cp := math32.Sin(c.Pitch), math32.Cos(c.Pitch)
	ry := v.Y*cp - rz*sp

	return float32(w)/2 + rx*c.Scale, float32(h)/2 - ry*c.Scale
}
