package vecmath

// Transform holds a mesh instance's placement: a translation and Euler
// rotation angles in radians, applied X then Y then Z, then translation —
// the same position/rotation pair the teacher's Transform carries in
// transform.go, minus the scale and parent-chain fields the core has no use
// for (the spec's Mesh is a single rigid instance, not a scene-graph node).
type Transform struct {
	Position Vec3
	Rotation Vec3 // radians: X=pitch, Y=yaw, Z=roll
}

// BuildMeshMatrix composes T * (Rz * Ry * Rx): rotate around X, then Y, then
// Z, then translate — spec.md §4.5.
func BuildMeshMatrix(t Transform) Mat4 {
	rx := RotationX(t.Rotation.X)
	ry := RotationY(t.Rotation.Y)
	rz := RotationZ(t.Rotation.Z)
	rotation := rz.Mul(ry).Mul(rx)
	return Translation(t.Position).Mul(rotation)
}
