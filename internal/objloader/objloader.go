// Package objloader parses Wavefront OBJ files into triangle arrays ready
// for raytracer.NewMesh. It is a supplementary, non-core collaborator:
// spec.md §1 lists OBJ parsing as explicitly out of scope for the core, and
// SPEC_FULL.md §5 adds it back as the component that actually produces the
// core's triangle arrays. Grounded on
// _examples/mirstar13-3d-graphics/obj_loader.go's scanner-based parser,
// adapted to the strict v/vt/vn-per-vertex triangle format
// original_source/mesh.h:create_mesh expects.
package objloader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/markusheimerl/raytracer/internal/raytracer"
	"github.com/markusheimerl/raytracer/internal/vecmath"
)

// Load reads an OBJ file from path and returns its triangles. Every face
// must be a triangle (three vertices) with v/vt/vn indices present on each
// vertex; n-gon faces and bare v or v/vt vertex references are rejected
// rather than silently triangulated or defaulted, since original_source
// never handles them either.
func Load(path string) ([]raytracer.Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objloader: cannot open %q: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads OBJ-formatted text from r and returns its triangles.
func Parse(r io.Reader) ([]raytracer.Triangle, error) {
	var positions, normals []vecmath.Vec3
	var uvs []vecmath.Vec2
	var triangles []raytracer.Triangle

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objloader: line %d: invalid vertex: %w", lineNum, err)
			}
			positions = append(positions, v)

		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objloader: line %d: invalid normal: %w", lineNum, err)
			}
			normals = append(normals, n)

		case "vt":
			uv, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objloader: line %d: invalid texture coordinate: %w", lineNum, err)
			}
			uvs = append(uvs, uv)

		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("objloader: line %d: face must have exactly 3 vertices, got %d", lineNum, len(fields)-1)
			}
			tri, err := parseFace(fields[1:], positions, uvs, normals)
			if err != nil {
				return nil, fmt.Errorf("objloader: line %d: %w", lineNum, err)
			}
			triangles = append(triangles, tri)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objloader: read error: %w", err)
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("objloader: no triangles found")
	}
	return triangles, nil
}

func parseVec3(fields []string) (vecmath.Vec3, error) {
	if len(fields) < 3 {
		return vecmath.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err1 := strconv.ParseFloat(fields[0], 32)
	y, err2 := strconv.ParseFloat(fields[1], 32)
	z, err3 := strconv.ParseFloat(fields[2], 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return vecmath.Vec3{}, fmt.Errorf("non-numeric component")
	}
	return vecmath.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

func parseVec2(fields []string) (vecmath.Vec2, error) {
	if len(fields) < 2 {
		return vecmath.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	u, err1 := strconv.ParseFloat(fields[0], 32)
	v, err2 := strconv.ParseFloat(fields[1], 32)
	if err1 != nil || err2 != nil {
		return vecmath.Vec2{}, fmt.Errorf("non-numeric component")
	}
	return vecmath.NewVec2(float32(u), float32(v)), nil
}

func parseFace(vertices []string, positions []vecmath.Vec3, uvs []vecmath.Vec2, normals []vecmath.Vec3) (raytracer.Triangle, error) {
	var p [3]vecmath.Vec3
	var t [3]vecmath.Vec2
	var n [3]vecmath.Vec3

	for i, vertex := range vertices {
		parts := strings.Split(vertex, "/")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return raytracer.Triangle{}, fmt.Errorf("face vertex %q must be in v/vt/vn form", vertex)
		}

		vi, err := faceIndex(parts[0], len(positions))
		if err != nil {
			return raytracer.Triangle{}, fmt.Errorf("vertex index: %w", err)
		}
		ti, err := faceIndex(parts[1], len(uvs))
		if err != nil {
			return raytracer.Triangle{}, fmt.Errorf("texture index: %w", err)
		}
		ni, err := faceIndex(parts[2], len(normals))
		if err != nil {
			return raytracer.Triangle{}, fmt.Errorf("normal index: %w", err)
		}

		p[i] = positions[vi]
		t[i] = uvs[ti]
		n[i] = normals[ni]
	}

	return raytracer.Triangle{
		V0: p[0], V1: p[1], V2: p[2],
		T0: t[0], T1: t[1], T2: t[2],
		N0: n[0], N1: n[1], N2: n[2],
	}, nil
}

// faceIndex converts a 1-based OBJ index to a 0-based slice index and
// bounds-checks it. Negative (relative-to-end) indices are not supported,
// matching original_source's sscanf-based parser.
func faceIndex(raw string, count int) (int, error) {
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("non-numeric index %q", raw)
	}
	if idx < 1 || idx > count {
		return 0, fmt.Errorf("index %d out of range [1,%d]", idx, count)
	}
	return idx - 1, nil
}
