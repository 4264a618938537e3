// Package camera provides the free-flying first-person camera and its lens.
package camera

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/boxview/pkg/math"
)

// Direction is an abstract movement command.
// Mapping physical keys to directions is the caller's job.
type Direction int

const (
	MoveForward Direction = iota
	MoveBack
	StrafeLeft
	StrafeRight
)

func (d Direction) String() string {
	switch d {
	case MoveForward:
		return "forward"
	case MoveBack:
		return "back"
	case StrafeLeft:
		return "left"
	case StrafeRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// PitchMode selects what happens to pitch after a rotation.
type PitchMode int

const (
	// PitchFree never constrains pitch. Past ±90° the view flips.
	PitchFree PitchMode = iota
	// PitchClamp limits pitch to ±PitchLimit degrees.
	PitchClamp
	// PitchWrap keeps pitch in [-180, 180).
	PitchWrap
)

// ParsePitchMode converts a config string to a PitchMode.
func ParsePitchMode(s string) (PitchMode, error) {
	switch s {
	case "", "free":
		return PitchFree, nil
	case "clamp":
		return PitchClamp, nil
	case "wrap":
		return PitchWrap, nil
	default:
		return PitchFree, fmt.Errorf("unknown pitch mode %q", s)
	}
}

func (m PitchMode) String() string {
	switch m {
	case PitchClamp:
		return "clamp"
	case PitchWrap:
		return "wrap"
	default:
		return "free"
	}
}

// Default tuning.
const (
	DefaultSpeed      = 200.0
	DefaultPitchLimit = 89.0
)

// WorldUp is the fixed up axis used to build the camera basis.
var WorldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// FlyCamera is a free-flying camera.
// Rotation holds pitch (X), yaw (Y) and roll (Z) in degrees.
// Roll is stored but has no effect on the view.
type FlyCamera struct {
	Position math.Vec3
	Rotation math.Vec3

	// Units per second.
	Speed float32

	PitchMode  PitchMode
	PitchLimit float32
}

// NewFlyCamera creates a camera at position with the given rotation in degrees.
func NewFlyCamera(position, rotation math.Vec3) *FlyCamera {
	return &FlyCamera{
		Position:   position,
		Rotation:   rotation,
		Speed:      DefaultSpeed,
		PitchMode:  PitchFree,
		PitchLimit: DefaultPitchLimit,
	}
}

// Pitch returns the pitch in degrees.
func (c *FlyCamera) Pitch() float32 { return c.Rotation.X }

// Yaw returns the yaw in degrees.
func (c *FlyCamera) Yaw() float32 { return c.Rotation.Y }

// Move advances the camera by Speed*dt along dir.
//
// Forward and back follow (cos yaw, sin pitch, sin yaw), so flying forward
// also climbs or descends with pitch. Strafing uses yaw±90° and stays level.
func (c *FlyCamera) Move(dir Direction, dt float32) {
	step := c.Speed * dt
	yaw := float64(math.DegToRad(c.Yaw()))
	pitch := float64(math.DegToRad(c.Pitch()))

	var v math.Vec3
	switch dir {
	case MoveForward, MoveBack:
		v = math.Vec3{
			X: float32(gomath.Cos(yaw)),
			Y: float32(gomath.Sin(pitch)),
			Z: float32(gomath.Sin(yaw)),
		}
		if dir == MoveBack {
			v = v.Negate()
		}
	case StrafeLeft, StrafeRight:
		side := yaw - gomath.Pi/2
		if dir == StrafeRight {
			side = yaw + gomath.Pi/2
		}
		v = math.Vec3{
			X: float32(gomath.Cos(side)),
			Z: float32(gomath.Sin(side)),
		}
	default:
		return
	}

	c.Position = c.Position.Add(v.Scale(step))
}

// Rotate adds deltaYaw to yaw and subtracts deltaPitch from pitch, both in degrees.
// Pitch is inverted because screen Y grows downwards.
func (c *FlyCamera) Rotate(deltaYaw, deltaPitch float32) {
	c.Rotation.Y += deltaYaw
	c.Rotation.X -= deltaPitch

	switch c.PitchMode {
	case PitchClamp:
		if c.Rotation.X > c.PitchLimit {
			c.Rotation.X = c.PitchLimit
		}
		if c.Rotation.X < -c.PitchLimit {
			c.Rotation.X = -c.PitchLimit
		}
	case PitchWrap:
		c.Rotation.X = wrapDegrees(c.Rotation.X)
	}
}

// Forward returns the unit view direction.
func (c *FlyCamera) Forward() math.Vec3 {
	return ForwardFromAngles(c.Pitch(), c.Yaw())
}

// ViewMatrix returns the view transform for the current position and rotation.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return ViewMatrix(c.Position, c.Rotation)
}

// wrapDegrees maps a into [-180, 180).
func wrapDegrees(a float32) float32 {
	w := gomath.Mod(float64(a)+180, 360)
	if w < 0 {
		w += 360
	}
	return float32(w - 180)
}
