package vecmath

import (
	"math"
	"testing"
)

func TestTransformPointTranslation(t *testing.T) {
	m := Translation(NewVec3(1, 2, 3))
	p := m.TransformPoint(NewVec3(0, 0, 0))
	want := NewVec3(1, 2, 3)
	if !almostEqual(p.X, want.X) || !almostEqual(p.Y, want.Y) || !almostEqual(p.Z, want.Z) {
		t.Errorf("TransformPoint = %+v, want %+v", p, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translation(NewVec3(10, 20, 30))
	d := m.TransformDirection(NewVec3(1, 0, 0))
	want := NewVec3(1, 0, 0)
	if !almostEqual(d.X, want.X) || !almostEqual(d.Y, want.Y) || !almostEqual(d.Z, want.Z) {
		t.Errorf("TransformDirection = %+v, want %+v (translation should not affect vectors)", d, want)
	}
}

func TestRotationXQuarterTurn(t *testing.T) {
	m := RotationX(float32(math.Pi / 2))
	v := m.TransformDirection(NewVec3(0, 1, 0))
	want := NewVec3(0, 0, 1)
	if !almostEqual(v.X, want.X) || !almostEqual(v.Y, want.Y) || !almostEqual(v.Z, want.Z) {
		t.Errorf("RotationX(pi/2) * (0,1,0) = %+v, want %+v", v, want)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	transform := Transform{
		Position: NewVec3(3, -1, 2),
		Rotation: NewVec3(0.4, 1.1, -0.7),
	}
	m := BuildMeshMatrix(transform)
	inv := m.Inverse()

	original := NewVec3(2, 5, -3)
	roundTrip := inv.TransformPoint(m.TransformPoint(original))

	if !almostEqual(roundTrip.X, original.X) || !almostEqual(roundTrip.Y, original.Y) || !almostEqual(roundTrip.Z, original.Z) {
		t.Errorf("inverse round trip = %+v, want %+v", roundTrip, original)
	}
}

func TestUpperLeft3x3DropsTranslation(t *testing.T) {
	m := Translation(NewVec3(5, 5, 5)).Mul(RotationY(0.3))
	sub := m.UpperLeft3x3()

	originPoint := sub.TransformPoint(NewVec3(0, 0, 0))
	if !almostEqual(originPoint.X, 0) || !almostEqual(originPoint.Y, 0) || !almostEqual(originPoint.Z, 0) {
		t.Errorf("UpperLeft3x3 point transform of origin = %+v, want zero (translation stripped)", originPoint)
	}
}
