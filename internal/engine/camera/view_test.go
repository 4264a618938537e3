package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/boxview/pkg/math"
)

func TestBasisIsOrthonormal(t *testing.T) {
	for pitch := float32(-85); pitch <= 85; pitch += 17 {
		for yaw := float32(-360); yaw <= 360; yaw += 45 {
			right, up, forward := Basis(math.Vec3{X: pitch, Y: yaw})

			for name, v := range map[string]math.Vec3{"right": right, "up": up, "forward": forward} {
				if !near(v.Length(), 1) {
					t.Errorf("pitch %v yaw %v: |%s| = %v", pitch, yaw, name, v.Length())
				}
			}
			if !near(right.Dot(up), 0) || !near(right.Dot(forward), 0) || !near(up.Dot(forward), 0) {
				t.Errorf("pitch %v yaw %v: basis not orthogonal: r=%v u=%v f=%v", pitch, yaw, right, up, forward)
			}
		}
	}
}

func TestRollHasNoEffect(t *testing.T) {
	pos := math.Vec3{X: 1, Y: 2, Z: 3}
	a := ViewMatrix(pos, math.Vec3{X: 10, Y: 20, Z: 0})
	b := ViewMatrix(pos, math.Vec3{X: 10, Y: 20, Z: 75})
	if a != b {
		t.Errorf("roll changed the view matrix:\n%v\n%v", a, b)
	}
}

func TestForwardFromAngles(t *testing.T) {
	tests := []struct {
		pitch, yaw float32
		want       math.Vec3
	}{
		{0, 0, math.Vec3{X: 1}},
		{0, 90, math.Vec3{Z: 1}},
		{0, 180, math.Vec3{X: -1}},
		{0, -90, math.Vec3{Z: -1}},
		{90, 0, math.Vec3{Y: 1}},
	}

	for _, tt := range tests {
		got := ForwardFromAngles(tt.pitch, tt.yaw)
		if !nearVec(got, tt.want) {
			t.Errorf("ForwardFromAngles(%v, %v) = %v, want %v", tt.pitch, tt.yaw, got, tt.want)
		}
	}
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	pos := math.Vec3{X: 4, Y: -2, Z: 9}
	rot := math.Vec3{X: -25, Y: 130}

	view := ViewMatrix(pos, rot)

	f := ForwardFromAngles(rot.X, rot.Y)
	target := pos.Add(f)
	ref := mgl32.LookAtV(
		mgl32.Vec3{pos.X, pos.Y, pos.Z},
		mgl32.Vec3{target.X, target.Y, target.Z},
		mgl32.Vec3{0, 1, 0},
	)

	for i := 0; i < 16; i++ {
		if !near(view[i], ref[i]) {
			t.Errorf("element %d: got %f, mathgl %f", i, view[i], ref[i])
		}
	}
}

func TestViewMatrixPutsForwardOnNegativeZ(t *testing.T) {
	c := NewFlyCamera(math.Vec3{X: 0, Y: 0, Z: 5}, math.Vec3{X: 0, Y: 180})
	ahead := c.Position.Add(c.Forward().Scale(10))

	got := c.ViewMatrix().TransformVec3(ahead)
	if !nearVec(got, math.Vec3{Z: -10}) {
		t.Errorf("point ahead maps to %v, want (0,0,-10)", got)
	}
}

func TestProjectionMatchesMathGL(t *testing.T) {
	l := DefaultLens()
	l.SetViewport(1920, 1080)

	got := l.Projection()
	ref := mgl32.Perspective(mgl32.DegToRad(45), 1920.0/1080.0, 0.1, 1000)

	for i := 0; i < 16; i++ {
		if !near(got[i], ref[i]) {
			t.Errorf("element %d: got %f, mathgl %f", i, got[i], ref[i])
		}
	}
}

func TestSetViewportIgnoresEmptySize(t *testing.T) {
	l := DefaultLens()
	l.SetViewport(0, 600)
	if l.Aspect != 1 {
		t.Errorf("aspect = %v, want unchanged 1", l.Aspect)
	}
}
