package mesh

import (
	"github.com/chewxy/math32"

	"github.com/iburimskiy/times-circle/internal/config"
	"github.com/iburimskiy/times-circle/internal/geom"
	"github.com/iburimskiy/times-circle/internal/palette"
)

// Builder rebuilds the whole pattern from scratch on every call. It keeps two
// buffers: one is filled while the other stays published, so readers never
// observe a half-built mesh.
type Builder struct {
	front, back *Buffer
}

func NewBuilder() *Builder {
	return &Builder{front: &Buffer{}, back: &Buffer{}}
}

// Mesh returns the last published buffer.
func (bl *Builder) Mesh() *Buffer { return bl.front }

// Regenerate clears the back buffer, emits one line or tube per ring point
// and publishes the result. The returned buffer is valid until the next
// call; Clone it to keep it longer.
func (bl *Builder) Regenerate(cfg config.Config, ring []geom.Vec2, multiplier float32) *Buffer {
	buf := bl.back
	buf.Reset()

	perConnection := 2
	if cfg.ThreeDimensional {
		perConnection = TubeVertices(cfg.CircleSegments)
	}
	buf.Grow(len(ring) * perConnection)

	for i, a := range ring {
		b := Partner(ring, i, multiplier, cfg.Smooth, cfg.Radius)
		c := palette.Connection(a, b, cfg.ColorMode, cfg.Radius)
		if cfg.ThreeDimensional {
			buf.AppendTube(a, b, cfg.CircleSegments, c)
		} else {
			buf.AppendLine(a, b, c)
		}
	}

	bl.front, bl.back = buf, bl.front
	return buf
}

// PartnerIndex returns floor(i*multiplier) mod n.
func PartnerIndex(i, n int, multiplier float32) int {
	j := int(math32.Floor(float32(i)*multiplier)) % n
	if j < 0 {
		j += n
	}
	return j
}

// Partner returns the far end of the connection starting at ring[i]. When
// smooth is set the fractional partner position is kept and placed on the
// circle directly instead of snapping to a ring point.
func Partner(ring []geom.Vec2, i int, multiplier float32, smooth bool, radius float32) geom.Vec2 {
	n := len(ring)
	if smooth {
		j := math32.Mod(float32(i)*multiplier, float32(n))
		return geom.Polar(radius, 360*j/float32(n))
	}
	return ring[PartnerIndex(i, n, multiplier)]
}
