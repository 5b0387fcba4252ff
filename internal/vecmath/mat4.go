package vecmath

import "github.com/go-gl/mathgl/mgl32"

// Mat4 is a 4x4 affine transform, stored as mathgl's column-major float32
// matrix. Transform built this way matches spec.md's "row-major 4x4" in
// behavior (it composes and inverts the same affine transform); the storage
// order is an implementation detail mgl32 owns internally.
type Mat4 struct {
	m mgl32.Mat4
}

func IdentityMat4() Mat4 { return Mat4{m: mgl32.Ident4()} }

// RotationX/Y/Z build a pure-rotation affine matrix for the given angle in
// radians, reusing mgl32's homogeneous rotation builders instead of the
// teacher's hand-rolled sin/cos block in transform.go.
func RotationX(radians float32) Mat4 { return Mat4{m: mgl32.HomogRotate3DX(radians)} }
func RotationY(radians float32) Mat4 { return Mat4{m: mgl32.HomogRotate3DY(radians)} }
func RotationZ(radians float32) Mat4 { return Mat4{m: mgl32.HomogRotate3DZ(radians)} }

func Translation(t Vec3) Mat4 {
	return Mat4{m: mgl32.Translate3D(t.X, t.Y, t.Z)}
}

// Mul composes matrices left-to-right as linear operators:
// a.Mul(b).TransformPoint(p) equals a.TransformPoint(b.TransformPoint(p)).
func (a Mat4) Mul(b Mat4) Mat4 { return Mat4{m: a.m.Mul4(b.m)} }

// Inverse returns the matrix inverse. Callers in this repository only ever
// invert rigid (rotation + translation) transforms built by
// BuildMeshMatrix, which are always invertible; mgl32.Mat4.Inv() on a
// singular matrix returns a zero matrix, which would manifest downstream as
// every ray missing every triangle — see spec.md §7 "Degenerate transform".
func (a Mat4) Inverse() Mat4 { return Mat4{m: a.m.Inv()} }

// Transpose returns the matrix transpose, used to build the
// inverse-transpose normal matrix (spec.md §4.5).
func (a Mat4) Transpose() Mat4 { return Mat4{m: a.m.Transpose()} }

// TransformPoint applies the full affine transform (rotation + translation).
func (a Mat4) TransformPoint(p Vec3) Vec3 {
	v := a.m.Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// TransformDirection applies only the linear (rotation/scale) part, ignoring
// translation — used for ray directions and normals.
func (a Mat4) TransformDirection(d Vec3) Vec3 {
	v := a.m.Mul4x1(mgl32.Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// UpperLeft3x3 extracts the rotation/scale sub-matrix as its own Mat4 with
// identity translation, for building the normal transform independent of
// the mesh's translation component.
func (a Mat4) UpperLeft3x3() Mat4 {
	m := a.m
	m[12], m[13], m[14] = 0, 0, 0
	return Mat4{m: m}
}
