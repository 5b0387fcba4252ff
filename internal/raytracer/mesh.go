package raytracer

import (
	"fmt"
	"math"

	"github.com/markusheimerl/raytracer/internal/vecmath"
)

// Texture is a decoded, tightly packed RGBA8 image: row-major, top-left
// origin, UV (0,0) mapping to the top-left texel. spec.md §6.
type Texture struct {
	RGBA          []byte
	Width, Height int
}

// NewTexture validates and wraps a decoded RGBA8 buffer. spec.md §7
// "Invalid texture".
func NewTexture(rgba []byte, width, height int) (Texture, error) {
	if width <= 0 || height <= 0 {
		return Texture{}, fmt.Errorf("raytracer: invalid texture dimensions %dx%d", width, height)
	}
	if len(rgba) < width*height*4 {
		return Texture{}, fmt.Errorf("raytracer: texture buffer too small for %dx%d RGBA8", width, height)
	}
	return Texture{RGBA: rgba, Width: width, Height: height}, nil
}

// Sample performs nearest-neighbor, wrapped UV sampling and returns a
// linear-space color with alpha discarded. spec.md §4.5.
func (t Texture) Sample(u, v float32) vecmath.Vec3 {
	u -= float32(math.Floor(float64(u)))
	v -= float32(math.Floor(float64(v)))

	x := int(u * float32(t.Width-1))
	y := int(v * float32(t.Height-1))
	idx := (y*t.Width + x) * 4

	return vecmath.Vec3{
		X: float32(t.RGBA[idx]) / 255,
		Y: float32(t.RGBA[idx+1]) / 255,
		Z: float32(t.RGBA[idx+2]) / 255,
	}
}

// Mesh owns its (possibly reordered) triangle array, its texture, its BVH,
// and its per-instance transform. The BVH never outlives Triangles: both
// are constructed together by NewMesh and Triangles is read-only for the
// life of the BVH afterward. spec.md §3.
type Mesh struct {
	Triangles []Triangle
	Texture   Texture
	BVH       *BVHNode
	Transform vecmath.Transform

	matrix        vecmath.Mat4
	inverseMatrix vecmath.Mat4
	normalMatrix  vecmath.Mat4
}

// NewMesh builds a mesh's BVH over triangles (reordering them in place) and
// caches the matrices derived from transform. spec.md §7 "Invalid mesh":
// zero triangles is refused.
func NewMesh(triangles []Triangle, texture Texture, transform vecmath.Transform) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, fmt.Errorf("raytracer: mesh has zero triangles")
	}

	m := &Mesh{
		Triangles: triangles,
		Texture:   texture,
		Transform: transform,
	}
	m.BVH = BuildBVH(m.Triangles, 0, uint32(len(m.Triangles)))
	m.recomputeMatrices()
	return m, nil
}

// SetTransform updates the mesh's placement and recomputes cached matrices.
// Used by the animation driver between frames.
func (m *Mesh) SetTransform(transform vecmath.Transform) {
	m.Transform = transform
	m.recomputeMatrices()
}

func (m *Mesh) recomputeMatrices() {
	m.matrix = vecmath.BuildMeshMatrix(m.Transform)
	m.inverseMatrix = m.matrix.Inverse()
	m.normalMatrix = m.matrix.UpperLeft3x3().Inverse().Transpose()
}

// ToLocal transforms a world-space ray into this mesh's local frame: the
// origin by the inverse matrix as a point, the direction by the inverse
// matrix as a vector, renormalized. Because the mesh matrix is rigid
// (rotation + translation only, no scale), local t equals world t.
// spec.md §4.5.
func (m *Mesh) ToLocal(r vecmath.Ray) vecmath.Ray {
	origin := m.inverseMatrix.TransformPoint(r.Origin)
	direction := m.inverseMatrix.TransformDirection(r.Direction).Normalize()
	return vecmath.Ray{Origin: origin, Direction: direction}
}

// WorldNormal transforms a mesh-local interpolated normal to world space
// using the inverse-transpose of the rotation sub-matrix, renormalized.
// spec.md §4.5.
func (m *Mesh) WorldNormal(localNormal vecmath.Vec3) vecmath.Vec3 {
	return m.normalMatrix.TransformDirection(localNormal).Normalize()
}
