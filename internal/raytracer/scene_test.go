package raytracer

import (
	"testing"

	"github.com/markusheimerl/raytracer/internal/vecmath"
)

func simpleScene(t *testing.T) *Scene {
	t.Helper()
	tri := Triangle{
		V0: vecmath.NewVec3(-5, -5, 5), V1: vecmath.NewVec3(5, -5, 5), V2: vecmath.NewVec3(0, 5, 5),
		T0: vecmath.NewVec2(0, 0), T1: vecmath.NewVec2(1, 0), T2: vecmath.NewVec2(0.5, 1),
		N0: vecmath.NewVec3(0, 0, -1), N1: vecmath.NewVec3(0, 0, -1), N2: vecmath.NewVec3(0, 0, -1),
	}
	mesh, err := NewMesh([]Triangle{tri}, onePixelTexture(), vecmath.Transform{})
	if err != nil {
		t.Fatal(err)
	}

	camera := Camera{
		Position: vecmath.NewVec3(0, 0, -5),
		LookAt:   vecmath.NewVec3(0, 0, 0),
		Up:       vecmath.NewVec3(0, 1, 0),
		FovDeg:   60,
	}
	light := DirectionalLight{Direction: vecmath.NewVec3(0, 0, -1), Color: vecmath.NewVec3(1, 1, 1)}

	scene, err := NewScene([]*Mesh{mesh}, camera, light, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	return scene
}

func TestNewSceneRejectsZeroDimensions(t *testing.T) {
	if _, err := NewScene(nil, Camera{}, DirectionalLight{}, 0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestShadePixelBackground(t *testing.T) {
	scene := simpleScene(t)
	ray := vecmath.Ray{Origin: vecmath.NewVec3(100, 100, -5), Direction: vecmath.NewVec3(0, 0, 1)}

	rgb := shadePixel(scene, ray)
	if rgb != backgroundColor {
		t.Errorf("shadePixel for a ray missing everything = %v, want background %v", rgb, backgroundColor)
	}
}

func TestShadePixelHitIsLitAboveAmbient(t *testing.T) {
	scene := simpleScene(t)
	ray := scene.Camera.RayFor(0.5, 0.5, 1)

	rgb := shadePixel(scene, ray)
	if rgb == backgroundColor {
		t.Fatal("expected center ray to hit the triangle, not the background")
	}

	// The light points straight at the camera-facing normal, so lit output
	// must exceed the ambient-only floor on every channel that has any
	// albedo at all.
	ambientOnly := byte(float32(0.2) * float32(onePixelTexture().RGBA[0]))
	if rgb[0] <= ambientOnly {
		t.Errorf("lit red channel = %d, want more than ambient-only %d", rgb[0], ambientOnly)
	}
}

func TestAnyHitReportsOccludingMesh(t *testing.T) {
	scene := simpleScene(t)
	shadowRay := vecmath.Ray{Origin: vecmath.NewVec3(0, 0, 0), Direction: vecmath.NewVec3(0, 0, 1)}

	if !anyHit(scene.Meshes, shadowRay) {
		t.Error("expected shadow ray toward the triangle to report a hit")
	}
}
