package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/times-circle/internal/config"
	"github.com/iburimskiy/times-circle/internal/geom"
	"github.com/iburimskiy/times-circle/internal/palette"
)

func ring(n int, radius float32) []geom.Vec2 {
	pts := make([]geom.Vec2, n)
	for i := range pts {
		pts[i] = geom.Polar(radius, 360*float32(i)/float32(n))
	}
	return pts
}

func flatConfig(n int, m, radius float32) config.Config {
	cfg := config.Default()
	cfg.N = n
	cfg.M = m
	cfg.Radius = radius
	cfg.ThreeDimensional = false
	return cfg
}

func TestPartnerIndex(t *testing.T) {
	tests := []struct {
		i, n int
		m    float32
		want int
	}{
		{0, 4, 2, 0},
		{1, 4, 2, 2},
		{2, 4, 2, 0},
		{3, 4, 2, 2},
		{7, 10, 2.5, 7},
		{3, 10, 0.3, 0},
		{5, 20, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PartnerIndex(tt.i, tt.n, tt.m), "i=%d n=%d m=%v", tt.i, tt.n, tt.m)
	}
}

func TestRegenerateFlat(t *testing.T) {
	cfg := flatConfig(4, 2, 1)
	pts := ring(4, 1)

	buf := NewBuilder().Regenerate(cfg, pts, cfg.M)
	require.Equal(t, 8, buf.VertexCount())
	require.Equal(t, 4, buf.SegmentCount())
	assertSequentialIndices(t, buf)

	wantPartner := []int{0, 2, 0, 2}
	for i, j := range wantPartner {
		p0, p1, c0, c1 := buf.Segment(i)
		assert.Equal(t, pts[i].Vec3(), p0)
		assert.Equal(t, pts[j].Vec3(), p1)
		assert.Equal(t, c0, c1)
		assert.Equal(t, palette.Connection(pts[i], pts[j], false, 1), c0)
	}

	// connection 0 -> 0 is degenerate
	p0, p1, _, _ := buf.Segment(0)
	assert.Equal(t, p0, p1)
}

func TestRegenerateCounts(t *testing.T) {
	for _, n := range []int{1, 5, 20, 100} {
		pts := ring(n, 5)
		cfg := flatConfig(n, 3, 5)
		bl := NewBuilder()

		buf := bl.Regenerate(cfg, pts, 3)
		assert.Equal(t, 2*n, buf.VertexCount())
		assert.Equal(t, n, buf.SegmentCount())

		cfg.ThreeDimensional = true
		for _, s := range []int{3, 17, 360} {
			cfg.CircleSegments = s
			buf = bl.Regenerate(cfg, pts, 3)
			assert.Equal(t, n*2*s, buf.VertexCount(), "n=%d segments=%d", n, s)
			assert.Equal(t, n*s, buf.SegmentCount())
			assertSequentialIndices(t, buf)
		}
	}
}

func TestRegenerateIdempotent(t *testing.T) {
	cfg := config.Default()
	pts := ring(cfg.N, cfg.Radius)
	bl := NewBuilder()

	first := bl.Regenerate(cfg, pts, 2.37).Clone()
	second := bl.Regenerate(cfg, pts, 2.37)
	assert.Equal(t, first, second.Clone())
	assert.Same(t, second, bl.Mesh())
}

func TestRegenerateKeepsPublishedBuffer(t *testing.T) {
	cfg := flatConfig(6, 2, 1)
	pts := ring(6, 1)
	bl := NewBuilder()

	flat := bl.Regenerate(cfg, pts, 2)
	snapshot := flat.Clone()

	cfg.ThreeDimensional = true
	tube := bl.Regenerate(cfg, pts, 2)
	assert.NotSame(t, flat, tube)
	assert.Equal(t, snapshot, flat.Clone())
}

func TestRegenerateColorModes(t *testing.T) {
	pts := ring(8, 2)
	cfg := flatConfig(8, 3, 2)
	bl := NewBuilder()

	byAngle := bl.Regenerate(cfg, pts, 3).Clone()
	cfg.ColorMode = true
	byDistance := bl.Regenerate(cfg, pts, 3)

	assert.Equal(t, byAngle.Vertices, byDistance.Vertices)
	for i := range 8 {
		j := PartnerIndex(i, 8, 3)
		assert.Equal(t, palette.Connection(pts[i], pts[j], true, 2), byDistance.Colors[2*i])
	}
}

func TestPartnerSmooth(t *testing.T) {
	pts := ring(10, 1)
	got := Partner(pts, 3, 2.5, true, 1)
	want := geom.Polar(1, 360*7.5/10)
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)

	assert.Equal(t, pts[7], Partner(pts, 3, 2.5, false, 1))
}
