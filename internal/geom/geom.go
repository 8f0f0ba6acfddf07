// Package geom holds the small float32 vector toolkit the pattern is built on.
package geom

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	deg2Rad float32 = math.Pi / 180
	rad2Deg float32 = 180 / math.Pi

	// normalizeEpsilon is the shortest vector Normalized still scales.
	normalizeEpsilon = 1e-5
	// angleEpsilon guards Angle against zero-length inputs.
	angleEpsilon = 1e-15
)

// Vec2 is a point or direction in the plane of the ring.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a mesh vertex position.
type Vec3 struct {
	X, Y, Z float32
}

// Forward is the fixed world axis tubes are extruded along.
var Forward = Vec3{Z: 1}

// Polar returns the point at angleDeg on a circle of radius r. The negated
// cosine and sine put angle 0 on the left and sweep clockwise.
func Polar(r, angleDeg float32) Vec2 {
	rad := angleDeg * deg2Rad
	return Vec2{
		X: -r * math32.Cos(rad),
		Y: -r * math32.Sin(rad),
	}
}

// Vec3 promotes v into 3D with z = 0.
func (v Vec2) Vec3() Vec3 { return Vec3{X: v.X, Y: v.Y} }

func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) SqrLength() float32 { return v.Dot(v) }

func (v Vec2) Length() float32 { return math32.Sqrt(v.SqrLength()) }

// Angle returns the unsigned angle in degrees between v and o, in [0, 180].
// Zero-length inputs yield 0.
func Angle(v, o Vec2) float32 {
	den := math32.Sqrt(v.SqrLength() * o.SqrLength())
	if den < angleEpsilon {
		return 0
	}
	cos := v.Dot(o) / den
	if cos < -1 {
		cos = -1
	} else if cos > 1 {
		cos = 1
	}
	return math32.Acos(cos) * rad2Deg
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float32 {
	return Vec2{X: b.X - a.X, Y: b.Y - a.Y}.Length()
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }

func (v Vec3) Scale(s float32) Vec3 { return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Length() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalized returns v scaled to unit length, or the zero vector when v is
// too short to have a meaningful direction.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l > normalizeEpsilon {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

// Lerp interpolates between a and b by t without clamping.
func Lerp(a, b Vec3, t float32) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}
