package raytracer

import "github.com/markusheimerl/raytracer/internal/vecmath"

// leafThreshold is the maximum triangle count a BVH leaf holds before the
// builder attempts to split it further. spec.md §4.3 step 2, frozen per §6.
const leafThreshold = 4

// BVHNode is either a leaf describing a contiguous triangle slice
// [Start, Start+Count) of the owning mesh's (reordered) triangle array, or
// an internal node with two children and no triangles of its own.
// spec.md §3.
type BVHNode struct {
	Bounds      AABB
	Left, Right *BVHNode
	Start       uint32
	Count       uint32
}

func (n *BVHNode) isLeaf() bool { return n.Left == nil && n.Right == nil }

// BuildBVH recursively partitions triangles[start:start+count] in place and
// returns the root of the resulting tree. The caller's slice is mutated:
// indices referenced by the returned tree are positions in the reordered
// array. spec.md §4.3, grounded on
// original_source/accel/bvh.c:create_bvh_node.
func BuildBVH(triangles []Triangle, start, count uint32) *BVHNode {
	node := &BVHNode{Start: start, Count: count}

	bounds := EmptyAABB()
	for i := uint32(0); i < count; i++ {
		tri := triangles[start+i]
		bounds = bounds.Expand(tri.V0).Expand(tri.V1).Expand(tri.V2)
	}
	node.Bounds = bounds

	if count <= leafThreshold {
		return node
	}

	extent := bounds.Extent()
	axis := 0
	if extent.Y > extent.X {
		axis = 1
	}
	if extent.Z > extent.X && extent.Z > extent.Y {
		axis = 2
	}

	var splitSum float32
	for i := uint32(0); i < count; i++ {
		splitSum += triangles[start+i].Centroid().Component(axis)
	}
	split := splitSum / float32(count)

	mid := start
	for i := start; i < start+count; i++ {
		if triangles[i].Centroid().Component(axis) < split {
			triangles[i], triangles[mid] = triangles[mid], triangles[i]
			mid++
		}
	}

	if mid == start || mid == start+count {
		// Degenerate partition: all centroids fell on one side of the mean.
		// Keep this node as a leaf rather than recursing forever.
		// spec.md §4.3 step 6, §9 open question (a).
		return node
	}

	node.Left = BuildBVH(triangles, start, mid-start)
	node.Right = BuildBVH(triangles, mid, (start+count)-mid)
	return node
}

// Hit is a closest-hit result: distance t, barycentric (u, v), and the
// index of the hit triangle in the mesh's (reordered) triangle array.
type Hit struct {
	T             float32
	U, V          float32
	TriangleIndex uint32
}

// Intersect queries the BVH rooted at n for the closest hit along r that is
// strictly closer than tMax. It returns (Hit{}, false) on a miss.
//
// Internal nodes query both children with the same tMax bound rather than
// tightening it between the two calls, so traversal may visit subtrees a
// tighter bound would have skipped; this matches
// original_source/accel/bvh.c:intersect_bvh exactly and is required for the
// BVH-vs-brute-force equivalence spec.md §8 demands. spec.md §4.4, §9.
func Intersect(n *BVHNode, r vecmath.Ray, triangles []Triangle, tMax float32) (Hit, bool) {
	if !n.Bounds.RayIntersects(r) {
		return Hit{}, false
	}

	if n.isLeaf() {
		best := Hit{}
		found := false
		closest := tMax
		for i := uint32(0); i < n.Count; i++ {
			idx := n.Start + i
			if t, u, v, ok := triangles[idx].IntersectRay(r); ok && t < closest {
				closest = t
				best = Hit{T: t, U: u, V: v, TriangleIndex: idx}
				found = true
			}
		}
		return best, found
	}

	leftHit, leftOK := Intersect(n.Left, r, triangles, tMax)
	rightHit, rightOK := Intersect(n.Right, r, triangles, tMax)

	switch {
	case leftOK && rightOK:
		if leftHit.T < rightHit.T {
			return leftHit, true
		}
		return rightHit, true
	case leftOK:
		return leftHit, true
	case rightOK:
		return rightHit, true
	default:
		return Hit{}, false
	}
}
