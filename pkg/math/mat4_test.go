package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformVec3(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"translate", Translate(10, 20, 30), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"scale then translate", Translate(1, 1, 1).Mul(Scale(2, 3, 4)), Vec3{1, 1, 1}, Vec3{3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformVec3(tt.in)
			if got != tt.want {
				t.Errorf("TransformVec3(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPerspectiveEntries(t *testing.T) {
	fov := float32(math.Pi / 4)
	near, far := float32(0.1), float32(1000)

	m := Perspective(fov, 2, near, far)
	f := float32(1 / math.Tan(math.Pi/8))

	want := Mat4{
		f / 2, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), -1,
		0, 0, 2 * far * near / (near - far), 0,
	}
	for i := range want {
		if !approx(m[i], want[i], 1e-4) {
			t.Errorf("Perspective[%d] = %f, want %f", i, m[i], want[i])
		}
	}
}

func TestPerspectiveMatchesMathGL(t *testing.T) {
	fov := mgl32.DegToRad(60)
	m := Perspective(fov, 16.0/9.0, 0.5, 250)
	ref := mgl32.Perspective(fov, 16.0/9.0, 0.5, 250)

	for i := 0; i < 16; i++ {
		if !approx(m[i], ref[i], 1e-4) {
			t.Errorf("element %d: got %f, mathgl %f", i, m[i], ref[i])
		}
	}
}

func TestFromBasis(t *testing.T) {
	m := FromBasis(Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, -1})
	if m != Identity() {
		t.Errorf("canonical basis should give identity, got %v", m)
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho(-2, 2, -1, 1, -1, 1)
	got := m.TransformVec3(Vec3{2, 1, 0})
	if !approx(got.X, 1, 1e-6) || !approx(got.Y, 1, 1e-6) {
		t.Errorf("corner should map to (1,1), got %v", got)
	}
}

func approx(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
