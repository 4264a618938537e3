package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		a, b, want Vec3
	}{
		{Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{Vec3{0, 0, 1}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{Vec3{0, 1, 0}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{Vec3{2, 3, 4}, Vec3{2, 3, 4}, Vec3{}},
	}

	for _, tt := range tests {
		got := tt.a.Cross(tt.b)
		if got != tt.want {
			t.Errorf("%v.Cross(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVec3Normalize(t *testing.T) {
	inputs := []Vec3{
		{3, 4, 0},
		{1, 1, 1},
		{-0.001, 0.002, 0},
		{500, -250, 12},
	}

	for _, v := range inputs {
		n := v.Normalize()
		if l := n.Length(); l < 0.999 || l > 1.001 {
			t.Errorf("%v.Normalize().Length() = %v, want ~1", v, l)
		}

		// Same direction: n * |v| reconstructs v.
		back := n.Scale(v.Length())
		if back.Sub(v).Length() > 1e-3*v.Length() {
			t.Errorf("%v.Normalize() changed direction: %v", v, n)
		}
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", got)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Negate(); got != (Vec3{-1, -2, -3}) {
		t.Errorf("Negate = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); !approx(got, 3.14159265, 1e-6) {
		t.Errorf("DegToRad(180) = %v", got)
	}
	if got := DegToRad(-90); !approx(got, -1.57079633, 1e-6) {
		t.Errorf("DegToRad(-90) = %v", got)
	}
}
