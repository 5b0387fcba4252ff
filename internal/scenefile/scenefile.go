// Package scenefile describes a renderable scene declaratively, the way
// original_source/main.c wires one up in code (camera, light, and a list of
// meshes each with an OBJ/texture pair and a transform) but as data a
// caller can load without recompiling. No JSON/YAML/TOML config library
// appears anywhere in the example pack, so this is built on stdlib
// encoding/json (DESIGN.md records the justification); the rest of the
// module's dependency stack is unaffected.
package scenefile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/markusheimerl/raytracer/internal/animpath"
	"github.com/markusheimerl/raytracer/internal/objloader"
	"github.com/markusheimerl/raytracer/internal/raytracer"
	"github.com/markusheimerl/raytracer/internal/texture"
	"github.com/markusheimerl/raytracer/internal/vecmath"
)

// Vec3 is the wire representation of a vecmath.Vec3.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) toVecmath() vecmath.Vec3 { return vecmath.NewVec3(v.X, v.Y, v.Z) }

// MeshEntry names one mesh's geometry, texture, static placement, and an
// optional named animation path.
type MeshEntry struct {
	OBJPath     string `json:"obj_path"`
	TexturePath string `json:"texture_path"`
	Position    Vec3   `json:"position"`
	Rotation    Vec3   `json:"rotation"`
	Animation   *Animation `json:"animation,omitempty"`
}

// Animation selects one of animpath's built-in paths by name and supplies
// its parameters. Kind is "orbit", "bob", or omitted for a static mesh.
type Animation struct {
	Kind         string `json:"kind"`
	Radius       float32 `json:"radius,omitempty"`
	Height       float32 `json:"height,omitempty"`
	BobAmplitude float32 `json:"bob_amplitude,omitempty"`
}

// Document is the top-level scene description.
type Document struct {
	Width      uint32 `json:"width"`
	Height     uint32 `json:"height"`
	FrameCount int    `json:"frame_count"`

	CameraPosition Vec3    `json:"camera_position"`
	CameraLookAt   Vec3    `json:"camera_look_at"`
	CameraUp       Vec3    `json:"camera_up"`
	CameraFovDeg   float32 `json:"camera_fov_deg"`

	LightDirection Vec3 `json:"light_direction"`
	LightColor     Vec3 `json:"light_color"`

	Meshes []MeshEntry `json:"meshes"`
}

// Load reads and parses a scene document from path.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("scenefile: cannot open %q: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a scene document from r.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("scenefile: invalid document: %w", err)
	}
	if len(doc.Meshes) == 0 {
		return Document{}, fmt.Errorf("scenefile: document has no meshes")
	}
	return doc, nil
}

// BuiltScene is a fully loaded scene plus the per-mesh animation paths
// (nil where a mesh has no animation) so a caller can drive frames forward.
type BuiltScene struct {
	Scene *raytracer.Scene
	Paths []animpath.Path
}

// Build loads every mesh's geometry and texture and assembles the scene and
// camera/light described by doc.
func Build(doc Document) (*BuiltScene, error) {
	camera := raytracer.Camera{
		Position: doc.CameraPosition.toVecmath(),
		LookAt:   doc.CameraLookAt.toVecmath(),
		Up:       doc.CameraUp.toVecmath(),
		FovDeg:   doc.CameraFovDeg,
	}
	light := raytracer.DirectionalLight{
		Direction: doc.LightDirection.toVecmath(),
		Color:     doc.LightColor.toVecmath(),
	}

	meshes := make([]*raytracer.Mesh, 0, len(doc.Meshes))
	paths := make([]animpath.Path, 0, len(doc.Meshes))

	for i, entry := range doc.Meshes {
		triangles, err := objloader.Load(entry.OBJPath)
		if err != nil {
			return nil, fmt.Errorf("scenefile: mesh %d: %w", i, err)
		}
		tex, err := texture.Load(entry.TexturePath)
		if err != nil {
			return nil, fmt.Errorf("scenefile: mesh %d: %w", i, err)
		}

		transform := vecmath.Transform{
			Position: entry.Position.toVecmath(),
			Rotation: entry.Rotation.toVecmath(),
		}
		mesh, err := raytracer.NewMesh(triangles, tex, transform)
		if err != nil {
			return nil, fmt.Errorf("scenefile: mesh %d: %w", i, err)
		}
		meshes = append(meshes, mesh)
		paths = append(paths, buildPath(entry, transform))
	}

	scene, err := raytracer.NewScene(meshes, camera, light, doc.Width, doc.Height)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	return &BuiltScene{Scene: scene, Paths: paths}, nil
}

func buildPath(entry MeshEntry, static vecmath.Transform) animpath.Path {
	if entry.Animation == nil {
		return animpath.Static(static)
	}
	switch entry.Animation.Kind {
	case "orbit":
		return animpath.Orbit(entry.Animation.Radius, entry.Animation.Height, entry.Animation.BobAmplitude)
	case "bob":
		return animpath.Bob(static.Position, entry.Animation.BobAmplitude)
	default:
		return animpath.Static(static)
	}
}
