package raytracer

import (
	"math"

	"github.com/markusheimerl/raytracer/internal/vecmath"
)

// AABB is an axis-aligned bounding box. The empty box has Min at +inf and
// Max at -inf on every axis, so that expanding it with any point makes that
// point both the min and the max — spec.md §4.1, grounded on
// original_source/geometry/aabb.c's create_empty_aabb/expand_aabb.
type AABB struct {
	Min, Max vecmath.Vec3
}

// EmptyAABB returns the sentinel empty box.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: vecmath.Vec3{X: inf, Y: inf, Z: inf},
		Max: vecmath.Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Expand grows the box to also contain p.
func (b AABB) Expand(p vecmath.Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Merge returns the union of two boxes.
func (b AABB) Merge(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Extent returns Max - Min componentwise.
func (b AABB) Extent() vecmath.Vec3 {
	return b.Max.Sub(b.Min)
}

// RayIntersects is the slab test: returns true iff tmax >= tmin and
// tmax > 0. Precomputing 1/direction lets a zero direction component
// produce IEEE-754 +/-Inf slab bounds, which min/max still resolve
// correctly for a ray whose origin lies inside that slab — spec.md §4.1.
func (b AABB) RayIntersects(r vecmath.Ray) bool {
	invX := 1 / r.Direction.X
	invY := 1 / r.Direction.Y
	invZ := 1 / r.Direction.Z

	tx1 := (b.Min.X - r.Origin.X) * invX
	tx2 := (b.Max.X - r.Origin.X) * invX
	tmin := vecmath.MinF(tx1, tx2)
	tmax := vecmath.MaxF(tx1, tx2)

	ty1 := (b.Min.Y - r.Origin.Y) * invY
	ty2 := (b.Max.Y - r.Origin.Y) * invY
	tmin = vecmath.MaxF(tmin, vecmath.MinF(ty1, ty2))
	tmax = vecmath.MinF(tmax, vecmath.MaxF(ty1, ty2))

	tz1 := (b.Min.Z - r.Origin.Z) * invZ
	tz2 := (b.Max.Z - r.Origin.Z) * invZ
	tmin = vecmath.MaxF(tmin, vecmath.MinF(tz1, tz2))
	tmax = vecmath.MinF(tmax, vecmath.MaxF(tz1, tz2))

	return tmax >= tmin && tmax > 0
}
