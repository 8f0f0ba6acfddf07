// Package palette colors connections by the relationship of their endpoints.
package palette

import (
	"github.com/chewxy/math32"

	"github.com/iburimskiy/times-circle/internal/geom"
)

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	a = uint32(alpha*0xffff + 0.5)
	r = uint32(clamp01(c.R)*alpha*0xffff + 0.5)
	g = uint32(clamp01(c.G)*alpha*0xffff + 0.5)
	b = uint32(clamp01(c.B)*alpha*0xffff + 0.5)
	return
}

// Hue maps the connection a-b to a hue in [0, 1]. In distance mode the
// chord length is measured against the ring diameter; otherwise the angle
// between the two position vectors is measured against 180 degrees.
func Hue(a, b geom.Vec2, byDistance bool, radius float32) float32 {
	if byDistance {
		return clamp01(geom.Distance(a, b) / (radius * 2 * 0.01) * 0.01)
	}
	return clamp01(geom.Angle(a, b) / 1.8 * 0.01)
}

// Connection returns the fully saturated color for the connection a-b.
func Connection(a, b geom.Vec2, byDistance bool, radius float32) Color {
	return HSV(Hue(a, b, byDistance, radius), 1, 1)
}

// HSV converts hue, saturation and value, all in [0, 1], to an opaque color.
// A hue of exactly 1 wraps back to red.
func HSV(h, s, v float32) Color {
	h6 := clamp01(h) * 6
	c := v * s
	x := c * (1 - math32.Abs(math32.Mod(h6, 2)-1))
	m := v - c

	var r, g, b float32
	switch {
	case h6 < 1:
		r, g, b = c, x, 0
	case h6 < 2:
		r, g, b = x, c, 0
	case h6 < 3:
		r, g, b = 0, c, x
	case h6 < 4:
		r, g, b = 0, x, c
	case h6 < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{
		R: clamp01(r + m),
		G: clamp01(g + m),
		B: clamp01(b + m),
		A: 1,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
