package camera

import (
	gomath "math"

	"github.com/Faultbox/boxview/pkg/math"
)

// ForwardFromAngles returns the unit direction for pitch and yaw in degrees:
// (cos yaw·cos pitch, sin pitch, sin yaw·cos pitch).
func ForwardFromAngles(pitchDeg, yawDeg float32) math.Vec3 {
	pitch := float64(math.DegToRad(pitchDeg))
	yaw := float64(math.DegToRad(yawDeg))

	return math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}

// Basis returns the camera axes for a rotation in degrees.
// right = forward × up and up is recomputed as right × forward.
// Roll (rotation.Z) is ignored.
func Basis(rotation math.Vec3) (right, up, forward math.Vec3) {
	forward = ForwardFromAngles(rotation.X, rotation.Y)
	right = forward.Cross(WorldUp).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// ViewMatrix builds a look-direction view transform: the basis rotation
// followed by a translation by -position.
func ViewMatrix(position, rotation math.Vec3) math.Mat4 {
	right, up, forward := Basis(rotation)
	return math.FromBasis(right, up, forward).
		Mul(math.Translate(-position.X, -position.Y, -position.Z))
}

// Lens holds perspective projection parameters.
type Lens struct {
	FOV    float32 // vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultLens matches a square window with a 45° field of view and a
// render distance of 1000.
func DefaultLens() Lens {
	return Lens{
		FOV:    45,
		Aspect: 1,
		Near:   0.1,
		Far:    1000,
	}
}

// Projection returns the perspective projection for the lens.
// Near and far must satisfy 0 < Near < Far.
func (l Lens) Projection() math.Mat4 {
	return Projection(l.FOV, l.Aspect, l.Near, l.Far)
}

// SetViewport updates the aspect ratio from a viewport size.
func (l *Lens) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	l.Aspect = float32(width) / float32(height)
}

// Projection returns a perspective projection with fov in degrees.
func Projection(fovDeg, aspect, near, far float32) math.Mat4 {
	return math.Perspective(math.DegToRad(fovDeg), aspect, near, far)
}
