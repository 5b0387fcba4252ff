package raytracer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/markusheimerl/raytracer/internal/vecmath"
)

// gridOfTriangles builds n axis-aligned, non-overlapping unit triangles
// scattered along the x-axis, enough to force the BVH builder past the leaf
// threshold and recurse.
func gridOfTriangles(n int) []Triangle {
	triangles := make([]Triangle, n)
	for i := 0; i < n; i++ {
		x := float32(i) * 3
		triangles[i] = Triangle{
			V0: vecmath.NewVec3(x, 0, 0),
			V1: vecmath.NewVec3(x+1, 0, 0),
			V2: vecmath.NewVec3(x, 1, 0),
			T0: vecmath.NewVec2(0, 0), T1: vecmath.NewVec2(1, 0), T2: vecmath.NewVec2(0, 1),
			N0: vecmath.NewVec3(0, 0, 1), N1: vecmath.NewVec3(0, 0, 1), N2: vecmath.NewVec3(0, 0, 1),
		}
	}
	return triangles
}

func bruteForceIntersect(triangles []Triangle, r vecmath.Ray) (Hit, bool) {
	best := Hit{}
	found := false
	closest := float32(math.MaxFloat32)
	for i, tri := range triangles {
		if t, u, v, ok := tri.IntersectRay(r); ok && t < closest {
			closest = t
			best = Hit{T: t, U: u, V: v, TriangleIndex: uint32(i)}
			found = true
		}
	}
	return best, found
}

func TestBVHMatchesBruteForce(t *testing.T) {
	triangles := gridOfTriangles(40)
	// Copy before BuildBVH reorders in place, so brute force walks the
	// original ordering while we compare against the tree built over the
	// reordered slice.
	original := append([]Triangle(nil), triangles...)

	root := BuildBVH(triangles, 0, uint32(len(triangles)))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		origin := vecmath.NewVec3(rng.Float32()*120-10, rng.Float32()*3-1, -5)
		direction := vecmath.NewVec3(0, 0, 1)
		ray := vecmath.Ray{Origin: origin, Direction: direction}

		wantHit, wantOK := bruteForceIntersect(original, ray)
		gotHit, gotOK := Intersect(root, ray, triangles, float32(math.MaxFloat32))

		if gotOK != wantOK {
			t.Fatalf("ray %d: Intersect ok=%v, brute force ok=%v", i, gotOK, wantOK)
		}
		if wantOK && !almostEqual(gotHit.T, wantHit.T) {
			t.Fatalf("ray %d: Intersect t=%v, brute force t=%v", i, gotHit.T, wantHit.T)
		}
	}
}

func TestBVHLeafThreshold(t *testing.T) {
	triangles := gridOfTriangles(3)
	root := BuildBVH(triangles, 0, uint32(len(triangles)))
	if !root.isLeaf() {
		t.Error("expected a tree with <= leafThreshold triangles to stay a single leaf")
	}
	if root.Count != 3 {
		t.Errorf("root.Count = %d, want 3", root.Count)
	}
}

func TestBVHBoundsContainAllTriangles(t *testing.T) {
	triangles := gridOfTriangles(50)
	root := BuildBVH(triangles, 0, uint32(len(triangles)))

	var checkBounds func(n *BVHNode)
	checkBounds = func(n *BVHNode) {
		if n.isLeaf() {
			for i := uint32(0); i < n.Count; i++ {
				tri := triangles[n.Start+i]
				for _, v := range [3]vecmath.Vec3{tri.V0, tri.V1, tri.V2} {
					if v.X < n.Bounds.Min.X-1e-4 || v.X > n.Bounds.Max.X+1e-4 ||
						v.Y < n.Bounds.Min.Y-1e-4 || v.Y > n.Bounds.Max.Y+1e-4 ||
						v.Z < n.Bounds.Min.Z-1e-4 || v.Z > n.Bounds.Max.Z+1e-4 {
						t.Errorf("vertex %+v escapes leaf bounds %+v", v, n.Bounds)
					}
				}
			}
			return
		}
		checkBounds(n.Left)
		checkBounds(n.Right)
	}
	checkBounds(root)
}

func TestBVHDegeneratePartitionStaysLeaf(t *testing.T) {
	// All triangles share the exact same centroid: the mean-split partition
	// can never separate them, and BuildBVH must stop recursing rather than
	// loop forever.
	triangles := make([]Triangle, 10)
	for i := range triangles {
		triangles[i] = Triangle{
			V0: vecmath.NewVec3(-1, -1, 0), V1: vecmath.NewVec3(1, -1, 0), V2: vecmath.NewVec3(0, 1, 0),
			T0: vecmath.NewVec2(0, 0), T1: vecmath.NewVec2(1, 0), T2: vecmath.NewVec2(0, 1),
			N0: vecmath.NewVec3(0, 0, 1), N1: vecmath.NewVec3(0, 0, 1), N2: vecmath.NewVec3(0, 0, 1),
		}
	}
	root := BuildBVH(triangles, 0, uint32(len(triangles)))
	if !root.isLeaf() {
		t.Error("expected degenerate (identical-centroid) partition to stay a leaf")
	}
}
