package raytracer

import (
	"math"

	"github.com/markusheimerl/raytracer/internal/vecmath"
)

// Camera is a pinhole camera described by position, look-at target, up
// hint, and vertical field of view in degrees. spec.md §3, §4.6.
type Camera struct {
	Position, LookAt, Up vecmath.Vec3
	FovDeg               float32
}

// RayFor builds the primary ray through pixel-center normalized screen
// coordinates nx, ny in [0,1], with image row 0 at the top. spec.md §4.6.
func (c Camera) RayFor(nx, ny, aspect float32) vecmath.Ray {
	forward := c.LookAt.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	camUp := right.Cross(forward)

	scale := float32(math.Tan(float64(c.FovDeg) * math.Pi / 360))

	rx := (2*nx - 1) * aspect * scale
	ry := (1 - 2*ny) * scale

	dir := right.Scale(rx).Add(camUp.Scale(ry)).Add(forward).Normalize()
	return vecmath.Ray{Origin: c.Position, Direction: dir}
}

// DirectionalLight is a light at infinity. Direction is the unit vector
// from a shaded surface toward the light — the vector used directly in the
// Lambert dot product. spec.md §3, §9 "Light direction sign".
type DirectionalLight struct {
	Direction vecmath.Vec3
	Color     vecmath.Vec3
}
