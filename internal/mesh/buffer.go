// Package mesh builds the line-topology buffers the renderer draws.
package mesh

import (
	"slices"

	"github.com/iburimskiy/times-circle/internal/geom"
	"github.com/iburimskiy/times-circle/internal/palette"
)

// Buffer is a line-list mesh: Vertices and Colors run in parallel and every
// consecutive pair in Indices is one independent segment.
type Buffer struct {
	Vertices []geom.Vec3
	Colors   []palette.Color
	Indices  []uint32
}

// Reset empties the buffer but keeps its backing storage.
func (b *Buffer) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Colors = b.Colors[:0]
	b.Indices = b.Indices[:0]
}

// Grow ensures room for n more vertices without reallocating.
func (b *Buffer) Grow(n int) {
	b.Vertices = slices.Grow(b.Vertices, n)
	b.Colors = slices.Grow(b.Colors, n)
	b.Indices = slices.Grow(b.Indices, n)
}

func (b *Buffer) VertexCount() int { return len(b.Vertices) }

// SegmentCount returns the number of line segments described by Indices.
func (b *Buffer) SegmentCount() int { return len(b.Indices) / 2 }

// Segment returns the endpoints and their colors for segment i.
func (b *Buffer) Segment(i int) (p0, p1 geom.Vec3, c0, c1 palette.Color) {
	i0, i1 := b.Indices[2*i], b.Indices[2*i+1]
	return b.Vertices[i0], b.Vertices[i1], b.Colors[i0], b.Colors[i1]
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Vertices: slices.Clone(b.Vertices),
		Colors:   slices.Clone(b.Colors),
		Indices:  slices.Clone(b.Indices),
	}
}

// AppendLine adds the segment a-b in the z = 0 plane with a single color.
func (b *Buffer) AppendLine(p0, p1 geom.Vec2, c palette.Color) {
	b.Vertices = append(b.Vertices, p0.Vec3(), p1.Vec3())
	b.Colors = append(b.Colors, c, c)
	b.reindex()
}

// reindex extends Indices so it covers every vertex in order.
func (b *Buffer) reindex() {
	for i := len(b.Indices); i < len(b.Vertices); i++ {
		b.Indices = append(b.Indices, uint32(i))
	}
}
