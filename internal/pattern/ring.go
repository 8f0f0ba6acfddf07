package pattern

import "github.com/iburimskiy/times-circle/internal/geom"

// ComputeRing returns n points evenly spaced on a circle of the given radius,
// starting at angle 0.
func ComputeRing(n int, radius float32) []geom.Vec2 {
	if n < 1 {
		return nil
	}
	ring := make([]geom.Vec2, n)
	for i := range ring {
		ring[i] = geom.Polar(radius, 360*float32(i)/float32(n))
	}
	return ring
}
