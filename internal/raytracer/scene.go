package raytracer

import (
	"fmt"
	"math"

	"github.com/markusheimerl/raytracer/internal/vecmath"
)

// Scene-wide shading constants, frozen per spec.md §6.
const (
	shadowOffset = 0.001
	ambientFloor = 0.2
)

var backgroundColor = [3]byte{50, 50, 50}

// Scene owns its meshes, camera, light, and per-frame pixel dimensions. It
// produces one packed 8-bit RGB frame buffer (row-major, top-left origin)
// per render. spec.md §3.
type Scene struct {
	Meshes        []*Mesh
	Camera        Camera
	Light         DirectionalLight
	Width, Height uint32
}

// NewScene validates the scene's dimensions. spec.md §6 "Image width and
// height in pixels (positive)".
func NewScene(meshes []*Mesh, camera Camera, light DirectionalLight, width, height uint32) (*Scene, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("raytracer: scene dimensions must be positive, got %dx%d", width, height)
	}
	return &Scene{Meshes: meshes, Camera: camera, Light: light, Width: width, Height: height}, nil
}

// meshHit is the closest-hit record across every mesh in the scene for one
// primary ray.
type meshHit struct {
	t           float32
	u, v        float32
	triIdx      uint32
	mesh        *Mesh
}

// closestHit transforms ray into each mesh's local frame in turn and keeps
// the closest result, carrying the running bound (tBest) across meshes so
// later meshes only need to beat the best hit found so far. spec.md §4.7
// steps 2-3.
func closestHit(meshes []*Mesh, ray vecmath.Ray) (meshHit, bool) {
	best := meshHit{}
	found := false
	tBest := float32(math.MaxFloat32)

	for _, mesh := range meshes {
		localRay := mesh.ToLocal(ray)
		if hit, ok := Intersect(mesh.BVH, localRay, mesh.Triangles, tBest); ok {
			tBest = hit.T
			best = meshHit{t: hit.T, u: hit.U, v: hit.V, triIdx: hit.TriangleIndex, mesh: mesh}
			found = true
		}
	}
	return best, found
}

// anyHit is the shadow-ray variant: it stops at the first mesh reporting
// any intersection, without a t limit other than +inf. spec.md §4.7 step 7.
func anyHit(meshes []*Mesh, ray vecmath.Ray) bool {
	for _, mesh := range meshes {
		localRay := mesh.ToLocal(ray)
		if _, ok := Intersect(mesh.BVH, localRay, mesh.Triangles, float32(math.MaxFloat32)); ok {
			return true
		}
	}
	return false
}

// shadePixel computes the per-pixel closest-hit, texture sample, and
// shadow-attenuated diffuse shading described in spec.md §4.7, returning a
// clamped 8-bit RGB triple.
func shadePixel(scene *Scene, ray vecmath.Ray) [3]byte {
	hit, ok := closestHit(scene.Meshes, ray)
	if !ok {
		return backgroundColor
	}

	tri := hit.mesh.Triangles[hit.triIdx]
	w := 1 - hit.u - hit.v

	uv := tri.T0.Scale(w).Add(tri.T1.Scale(hit.u)).Add(tri.T2.Scale(hit.v))

	localNormal := tri.N0.Scale(w).Add(tri.N1.Scale(hit.u)).Add(tri.N2.Scale(hit.v)).Normalize()
	normal := hit.mesh.WorldNormal(localNormal)

	albedo := hit.mesh.Texture.Sample(uv.U, uv.V)

	hitPoint := ray.At(hit.t)
	shadowOrigin := hitPoint.Add(normal.Scale(shadowOffset))
	shadowRay := vecmath.Ray{Origin: shadowOrigin, Direction: scene.Light.Direction}

	diffuse := float32(ambientFloor)
	if !anyHit(scene.Meshes, shadowRay) {
		lambert := normal.Dot(scene.Light.Direction)
		if lambert > diffuse {
			diffuse = lambert
		}
	}

	color := albedo.Mul(scene.Light.Color).Scale(diffuse)
	return [3]byte{
		clampByte(color.X * 255),
		clampByte(color.Y * 255),
		clampByte(color.Z * 255),
	}
}

func clampByte(v float32) byte {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return byte(v)
}
