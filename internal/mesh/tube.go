package mesh

import (
	"github.com/iburimskiy/times-circle/internal/config"
	"github.com/iburimskiy/times-circle/internal/geom"
	"github.com/iburimskiy/times-circle/internal/palette"
)

const (
	MinSegments = config.MinSegments
	MaxSegments = config.MaxSegments
)

// ClampSegments bounds a tube resolution to [MinSegments, MaxSegments].
func ClampSegments(segments int) int {
	return max(MinSegments, min(segments, MaxSegments))
}

// TubeVertices is the number of vertices AppendTube adds for a resolution.
func TubeVertices(segments int) int { return 2 * ClampSegments(segments) }

// AppendTube adds a closed ring of line segments around the midpoint of
// p0-p1. The ring spans the plane holding the segment direction and
// geom.Forward and has the segment as its diameter. Shared ring points are
// duplicated so each segment owns both of its vertices.
//
// A zero-length connection has no direction; its ring collapses onto the
// single point so the vertex count stays the same.
func (b *Buffer) AppendTube(p0, p1 geom.Vec2, segments int, c palette.Color) {
	segments = ClampSegments(segments)

	a, z := p0.Vec3(), p1.Vec3()
	r := geom.Distance(p0, p1) * 0.5
	center := geom.Lerp(a, z, 0.5)
	forward := z.Sub(a).Normalized()

	step := 360 / float32(segments)
	ringPoint := func(k int) geom.Vec3 {
		uv := geom.Polar(r, step*float32(k))
		return center.Add(forward.Scale(uv.Y)).Add(geom.Forward.Scale(uv.X))
	}

	b.Grow(2 * segments)
	first := ringPoint(0)
	prev := first
	for k := 1; k <= segments; k++ {
		next := first
		if k < segments {
			next = ringPoint(k)
		}
		b.Vertices = append(b.Vertices, prev, next)
		b.Colors = append(b.Colors, c, c)
		prev = next
	}
	b.reindex()
}
