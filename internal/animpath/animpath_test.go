package animpath

import (
	"math"
	"testing"

	"github.com/markusheimerl/raytracer/internal/vecmath"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestOrbitStaysOnCircle(t *testing.T) {
	path := Orbit(2, 1, 0.2)
	for _, t64 := range []float32{0, 1, 2, 3, 5} {
		transform := path(t64)
		radius := math.Sqrt(float64(transform.Position.X*transform.Position.X + transform.Position.Z*transform.Position.Z))
		if !almostEqual(float32(radius), 2) {
			t.Errorf("Orbit(%v) radius = %v, want 2", t64, radius)
		}
	}
}

func TestBobStaysAtFixedXZ(t *testing.T) {
	path := Bob(vecmath.NewVec3(1, 0, 1), 0.1)
	for _, t64 := range []float32{0, 1, 2} {
		transform := path(t64)
		if transform.Position.X != 1 || transform.Position.Z != 1 {
			t.Errorf("Bob(%v) xz = (%v,%v), want (1,1)", t64, transform.Position.X, transform.Position.Z)
		}
	}
}

func TestStaticNeverMoves(t *testing.T) {
	want := vecmath.Transform{Position: vecmath.NewVec3(3, 4, 5)}
	path := Static(want)
	for _, t64 := range []float32{0, 1, 100} {
		if got := path(t64); got != want {
			t.Errorf("Static(%v) = %+v, want %+v", t64, got, want)
		}
	}
}

func TestDriverResamplesOneRevolution(t *testing.T) {
	d := NewDriver(Orbit(1, 0, 0), 4)

	first := d.TransformAt(0)
	if !almostEqual(first.Position.X, 1) || !almostEqual(first.Position.Z, 0) {
		t.Errorf("frame 0 = %+v, want (1,_,0)", first.Position)
	}

	quarter := d.TransformAt(1)
	if !almostEqual(quarter.Position.X, 0) || !almostEqual(quarter.Position.Z, 1) {
		t.Errorf("frame 1 (quarter turn) = %+v, want (0,_,1)", quarter.Position)
	}
}
