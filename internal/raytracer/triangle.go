package raytracer

import "github.com/markusheimerl/raytracer/internal/vecmath"

// Triangle is a mesh-local triangle: three positions, three UVs, three
// vertex normals. spec.md §3.
type Triangle struct {
	V0, V1, V2 vecmath.Vec3
	T0, T1, T2 vecmath.Vec2
	N0, N1, N2 vecmath.Vec3
}

// Centroid is the arithmetic mean of the three vertices, used by the BVH
// builder to choose a split axis and split value.
func (t Triangle) Centroid() vecmath.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Scale(1.0 / 3.0)
}

// Bounds returns the triangle's own AABB.
func (t Triangle) Bounds() AABB {
	return EmptyAABB().Expand(t.V0).Expand(t.V1).Expand(t.V2)
}

const intersectEpsilon = 1e-7

// IntersectRay is the Möller–Trumbore ray-triangle test. It returns the hit
// distance t and barycentric coordinates (u, v) — with w = 1-u-v the weight
// of V0 — and ok=false if the ray misses. Front and back faces both hit; no
// face culling is performed. spec.md §4.2.
func (t Triangle) IntersectRay(r vecmath.Ray) (dist, u, v float32, ok bool) {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)

	h := r.Direction.Cross(edge2)
	det := edge1.Dot(h)

	if det > -intersectEpsilon && det < intersectEpsilon {
		return 0, 0, 0, false
	}

	invDet := 1 / det
	s := r.Origin.Sub(t.V0)
	u = invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = invDet * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	dist = invDet * edge2.Dot(q)
	if dist <= intersectEpsilon {
		return 0, 0, 0, false
	}
	return dist, u, v, true
}
