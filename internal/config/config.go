// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/boxview/internal/engine/camera"
	"github.com/Faultbox/boxview/internal/engine/picking"
	"github.com/Faultbox/boxview/pkg/math"
)

// Validation errors.
var (
	ErrInvalidProjection = errors.New("invalid projection")
	ErrInvalidPitchMode  = errors.New("invalid pitch mode")
	ErrInvalidPicking    = errors.New("invalid picking parameters")
	ErrInvalidPickMode   = errors.New("invalid pick mode")
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Picking  PickingConfig  `yaml:"picking"`
	Controls ControlsConfig `yaml:"controls"`
	World    WorldConfig    `yaml:"world"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds lens and movement settings. Angles are in degrees.
type CameraConfig struct {
	FOV         float32   `yaml:"fov"`
	Near        float32   `yaml:"near"`
	Far         float32   `yaml:"far"`
	Speed       float32   `yaml:"speed"`
	Sensitivity float32   `yaml:"sensitivity"` // degrees per pixel of drag
	PitchMode   string    `yaml:"pitch_mode"`  // free, clamp or wrap
	PitchLimit  float32   `yaml:"pitch_limit"`
	Position    math.Vec3 `yaml:"position"`
	Rotation    math.Vec3 `yaml:"rotation"` // pitch, yaw, roll
}

// PickingConfig holds ray picking settings.
type PickingConfig struct {
	Mode          string  `yaml:"mode"` // march or nearest
	StartDistance float32 `yaml:"start_distance"`
	Step          float32 `yaml:"step"`
	MaxDistance   float32 `yaml:"max_distance"`
	Nudge         float32 `yaml:"nudge"`
}

// ControlsConfig maps actions to SDL key names and mouse buttons.
type ControlsConfig struct {
	Forward    string `yaml:"forward"`
	Back       string `yaml:"back"`
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	Screenshot string `yaml:"screenshot"`
	Quit       string `yaml:"quit"`
	LookButton uint8  `yaml:"look_button"`
	PickButton uint8  `yaml:"pick_button"`
}

// BoxConfig describes one box of the initial world.
type BoxConfig struct {
	Origin math.Vec3 `yaml:"origin"`
	Extent math.Vec3 `yaml:"extent"`
	Color  math.Vec3 `yaml:"color"`
}

// WorldConfig holds the boxes created at startup.
type WorldConfig struct {
	Boxes []BoxConfig `yaml:"boxes"`
}

// DebugConfig holds developer aids.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	HighlightPick bool   `yaml:"highlight_pick"`
	Crosshair     bool   `yaml:"crosshair"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1080,
			Height:     1080,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOV:         45,
			Near:        0.1,
			Far:         1000,
			Speed:       camera.DefaultSpeed,
			Sensitivity: 0.2,
			PitchMode:   "free",
			PitchLimit:  camera.DefaultPitchLimit,
			Position:    math.Vec3{X: 0, Y: 5, Z: 40},
			Rotation:    math.Vec3{X: -5, Y: -90, Z: 0},
		},
		Picking: PickingConfig{
			Mode:          "march",
			StartDistance: picking.DefaultStart,
			Step:          picking.DefaultStep,
			MaxDistance:   picking.DefaultMaxDistance,
			Nudge:         2,
		},
		Controls: ControlsConfig{
			Forward:    "W",
			Back:       "S",
			Left:       "A",
			Right:      "D",
			Screenshot: "F12",
			Quit:       "Escape",
			LookButton: 3, // SDL_BUTTON_RIGHT
			PickButton: 1, // SDL_BUTTON_LEFT
		},
		World: WorldConfig{
			// Tall box first, then the ground; the march resolves shared
			// samples in this order.
			Boxes: []BoxConfig{
				{
					Origin: math.Vec3{X: -1, Y: 3.5, Z: -2.5},
					Extent: math.Vec3{X: 5, Y: 15, Z: 5},
					Color:  math.Vec3{X: 255, Y: 0, Z: 0},
				},
				{
					Origin: math.Vec3{X: 0, Y: 0, Z: 0},
					Extent: math.Vec3{X: 50, Y: 0.1, Z: 50},
					Color:  math.Vec3{X: 70, Y: 110, Z: 70},
				},
			},
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
			HighlightPick: true,
			Crosshair:     true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings the core relies on as preconditions.
func (c *Config) Validate() error {
	cam := c.Camera
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("%w: need 0 < near < far, got near=%g far=%g", ErrInvalidProjection, cam.Near, cam.Far)
	}
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return fmt.Errorf("%w: fov %g outside (0, 180)", ErrInvalidProjection, cam.FOV)
	}
	if _, err := camera.ParsePitchMode(cam.PitchMode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPitchMode, err)
	}
	if cam.PitchLimit < 0 {
		return fmt.Errorf("%w: pitch_limit must not be negative, got %g", ErrInvalidPitchMode, cam.PitchLimit)
	}

	p := c.Picking
	if _, err := picking.ParseMode(p.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPickMode, err)
	}
	if p.Step <= 0 {
		return fmt.Errorf("%w: step must be positive, got %g", ErrInvalidPicking, p.Step)
	}
	if p.StartDistance < 0 || p.MaxDistance <= p.StartDistance {
		return fmt.Errorf("%w: need 0 <= start_distance < max_distance, got %g and %g",
			ErrInvalidPicking, p.StartDistance, p.MaxDistance)
	}
	return nil
}
