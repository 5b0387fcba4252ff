// Package vecmath provides the small set of vector and matrix primitives
// the ray tracer core is built on: 3-vectors, 2-vectors, rays, and affine
// 4x4 transforms. It wraps github.com/go-gl/mathgl's float32 vector math
// rather than hand-rolling it, the way go-3d-graphics hand-rolls its own
// Matrix4x4/Point types.
package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3-space vector used for points, directions, and linear colors.
type Vec3 struct {
	X, Y, Z float32
}

func NewVec3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) mgl() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

func fromMgl(m mgl32.Vec3) Vec3 { return Vec3{X: m[0], Y: m[1], Z: m[2]} }

func (a Vec3) Add(b Vec3) Vec3 { return fromMgl(a.mgl().Add(b.mgl())) }
func (a Vec3) Sub(b Vec3) Vec3 { return fromMgl(a.mgl().Sub(b.mgl())) }
func (a Vec3) Scale(t float32) Vec3 { return fromMgl(a.mgl().Mul(t)) }

// Mul is the componentwise (Hadamard) product, used to combine albedo with
// light color during shading.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

func (a Vec3) Dot(b Vec3) float32 { return a.mgl().Dot(b.mgl()) }

func (a Vec3) Cross(b Vec3) Vec3 { return fromMgl(a.mgl().Cross(b.mgl())) }

func (a Vec3) Length() float32 { return a.mgl().Len() }

// Normalize returns the unit vector. Mirrors the zero-length guard the
// teacher's normalizeVector uses, but returns the zero vector instead of an
// arbitrary default: BVH/triangle math downstream treats a zero direction
// as "no intersection" rather than silently substituting a fake axis.
func (a Vec3) Normalize() Vec3 {
	length := a.Length()
	if length < 1e-10 {
		return Vec3{}
	}
	return a.Scale(1 / length)
}

// Min and Max are componentwise, used by AABB.Expand.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{X: MinF(a.X, b.X), Y: MinF(a.Y, b.Y), Z: MinF(a.Z, b.Z)}
}

func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{X: MaxF(a.X, b.X), Y: MaxF(a.Y, b.Y), Z: MaxF(a.Z, b.Z)}
}

// Component returns the vector's coordinate along the given axis (0=x,1=y,2=z).
func (a Vec3) Component(axis int) float32 {
	switch axis {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// MinF and MaxF are the scalar building blocks behind Vec3.Min/Vec3.Max,
// exported so aabb.go's slab test can share their NaN handling instead of
// keeping a second, divergent copy.
func MinF(a, b float32) float32 {
	if math.IsNaN(float64(a)) {
		return a
	}
	if a < b {
		return a
	}
	return b
}

func MaxF(a, b float32) float32 {
	if math.IsNaN(float64(a)) {
		return a
	}
	if a > b {
		return a
	}
	return b
}

// Vec2 holds texture coordinates.
type Vec2 struct {
	U, V float32
}

func NewVec2(u, v float32) Vec2 { return Vec2{U: u, V: v} }

func (a Vec2) Scale(t float32) Vec2 { return Vec2{U: a.U * t, V: a.V * t} }
func (a Vec2) Add(b Vec2) Vec2      { return Vec2{U: a.U + b.U, V: a.V + b.V} }

// Ray is a parametric ray: point(t) = Origin + t*Direction. Direction is
// expected to be unit length wherever the core hands a Ray around.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
