package vecmath

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	t.Run("Add", func(t *testing.T) {
		got := a.Add(b)
		want := NewVec3(5, 7, 9)
		if got != want {
			t.Errorf("Add = %+v, want %+v", got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		got := b.Sub(a)
		want := NewVec3(3, 3, 3)
		if got != want {
			t.Errorf("Sub = %+v, want %+v", got, want)
		}
	})

	t.Run("Dot", func(t *testing.T) {
		got := a.Dot(b)
		want := float32(1*4 + 2*5 + 3*6)
		if !almostEqual(got, want) {
			t.Errorf("Dot = %v, want %v", got, want)
		}
	})

	t.Run("Cross", func(t *testing.T) {
		x := NewVec3(1, 0, 0)
		y := NewVec3(0, 1, 0)
		got := x.Cross(y)
		want := NewVec3(0, 0, 1)
		if got != want {
			t.Errorf("Cross = %+v, want %+v", got, want)
		}
	})
}

func TestVec3Normalize(t *testing.T) {
	t.Run("UnitLength", func(t *testing.T) {
		v := NewVec3(3, 4, 0)
		n := v.Normalize()
		if !almostEqual(n.Length(), 1) {
			t.Errorf("normalized length = %v, want 1", n.Length())
		}
	})

	t.Run("ZeroVector", func(t *testing.T) {
		n := NewVec3(0, 0, 0).Normalize()
		if n != (Vec3{}) {
			t.Errorf("Normalize of zero vector = %+v, want zero vector", n)
		}
	})
}

func TestVec3MinMax(t *testing.T) {
	a := NewVec3(1, 5, -2)
	b := NewVec3(3, 2, 4)

	min := a.Min(b)
	if min != (NewVec3(1, 2, -2)) {
		t.Errorf("Min = %+v", min)
	}

	max := a.Max(b)
	if max != (NewVec3(3, 5, 4)) {
		t.Errorf("Max = %+v", max)
	}
}

func TestVec3Component(t *testing.T) {
	v := NewVec3(1, 2, 3)
	cases := []struct {
		axis int
		want float32
	}{{0, 1}, {1, 2}, {2, 3}}
	for _, c := range cases {
		if got := v.Component(c.axis); got != c.want {
			t.Errorf("Component(%d) = %v, want %v", c.axis, got, c.want)
		}
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: NewVec3(0, 0, 0), Direction: NewVec3(1, 0, 0)}
	p := r.At(5)
	if p != (NewVec3(5, 0, 0)) {
		t.Errorf("At(5) = %+v, want (5,0,0)", p)
	}
}
