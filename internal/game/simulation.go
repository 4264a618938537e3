package game

import (
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/boxview/internal/config"
	"github.com/Faultbox/boxview/internal/engine/camera"
	"github.com/Faultbox/boxview/internal/engine/picking"
	"github.com/Faultbox/boxview/internal/game/world"
	"github.com/Faultbox/boxview/internal/logger"
	"github.com/Faultbox/boxview/pkg/math"
)

// DefaultNudge is how far a picked box moves up.
const DefaultNudge = 2.0

// Simulation owns the camera, the lens and the world for one session.
// Every method runs on the frame thread; nothing here is safe for concurrent use.
type Simulation struct {
	Camera *camera.FlyCamera
	Lens   camera.Lens
	World  *world.World
	Picker picking.Picker

	// Degrees of rotation per unit of pointer drag.
	Sensitivity float32
	// Distance a picked box moves along +Y.
	Nudge float32

	pending  []camera.Direction
	lastPick uuid.UUID
}

// NewSimulation creates a simulation with a default lens and picker.
func NewSimulation(cam *camera.FlyCamera, w *world.World) *Simulation {
	return &Simulation{
		Camera:      cam,
		Lens:        camera.DefaultLens(),
		World:       w,
		Picker:      picking.NewPicker(picking.ModeMarch),
		Sensitivity: 1,
		Nudge:       DefaultNudge,
		pending:     make([]camera.Direction, 0, 4),
	}
}

// NewSimulationFromConfig builds a simulation and its initial world from cfg.
// cfg is expected to have passed Validate.
func NewSimulationFromConfig(cfg *config.Config) (*Simulation, error) {
	pitchMode, err := camera.ParsePitchMode(cfg.Camera.PitchMode)
	if err != nil {
		return nil, err
	}
	pickMode, err := picking.ParseMode(cfg.Picking.Mode)
	if err != nil {
		return nil, err
	}

	cam := camera.NewFlyCamera(cfg.Camera.Position, cfg.Camera.Rotation)
	cam.Speed = cfg.Camera.Speed
	cam.PitchMode = pitchMode
	cam.PitchLimit = cfg.Camera.PitchLimit

	w := world.New()
	for _, b := range cfg.World.Boxes {
		w.AddBox(b.Origin, b.Extent, b.Color)
	}

	s := NewSimulation(cam, w)
	s.Lens = camera.Lens{
		FOV:    cfg.Camera.FOV,
		Aspect: 1,
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
	}
	s.Lens.SetViewport(cfg.Graphics.Width, cfg.Graphics.Height)
	s.Picker = picking.Picker{
		Mode: pickMode,
		Marcher: picking.Marcher{
			Start:       cfg.Picking.StartDistance,
			Step:        cfg.Picking.Step,
			MaxDistance: cfg.Picking.MaxDistance,
		},
	}
	s.Sensitivity = cfg.Camera.Sensitivity
	s.Nudge = cfg.Picking.Nudge

	logger.Info("simulation ready",
		zap.Int("boxes", w.Len()),
		zap.Stringer("pick_mode", pickMode),
		zap.Stringer("pitch_mode", pitchMode),
		logger.Vec3("position", cam.Position),
		logger.Vec3("rotation", cam.Rotation),
	)
	return s, nil
}

// OnDirectionalKey queues a movement for the next frame tick.
func (s *Simulation) OnDirectionalKey(dir camera.Direction) {
	s.pending = append(s.pending, dir)
}

// OnFrame applies queued movements using the elapsed time in seconds since
// the previous tick, then clears the queue.
func (s *Simulation) OnFrame(dt float64) {
	for _, dir := range s.pending {
		s.Camera.Move(dir, float32(dt))
	}
	s.pending = s.pending[:0]
}

// OnPointerDrag rotates the camera by a pointer delta while the look button is held.
func (s *Simulation) OnPointerDrag(deltaX, deltaY float32) {
	s.Camera.Rotate(deltaX*s.Sensitivity, deltaY*s.Sensitivity)
}

// OnPrimaryClick casts a ray along the view direction and nudges the picked
// box. Screen coordinates are only logged; picking follows the camera.
// It returns the box after the nudge. A miss leaves the world unchanged.
func (s *Simulation) OnPrimaryClick(screenX, screenY int) (world.Box, bool) {
	logger.Debug("primary click", zap.Int("x", screenX), zap.Int("y", screenY))

	ray := picking.Ray{
		Origin:    s.Camera.Position,
		Direction: s.Camera.Forward(),
	}

	hit, ok := s.Picker.Pick(ray, s.World.Bounds())
	if !ok {
		logger.Debug("pick missed",
			logger.Vec3("origin", ray.Origin),
			logger.Vec3("direction", ray.Direction),
		)
		return world.Box{}, false
	}

	target := s.World.At(hit.Index)
	box, ok := s.World.Mutate(world.ByID(target.ID), func(b *world.Box) {
		b.Origin.Y += s.Nudge
	})
	if !ok {
		return world.Box{}, false
	}
	s.lastPick = box.ID

	logger.Info("box nudged",
		zap.Stringer("id", box.ID),
		zap.Int("index", hit.Index),
		zap.Float32("distance", hit.Distance),
		logger.Vec3("origin", box.Origin),
	)
	return box, true
}

// Resize updates the lens aspect ratio.
func (s *Simulation) Resize(width, height int) {
	s.Lens.SetViewport(width, height)
}

// IterateBoxes yields every box in insertion order without modifying the world.
func (s *Simulation) IterateBoxes() iter.Seq2[int, world.Box] {
	return s.World.All()
}

// CurrentProjection returns the projection transform for this frame.
func (s *Simulation) CurrentProjection() math.Mat4 {
	return s.Lens.Projection()
}

// CurrentView returns the view transform for this frame.
func (s *Simulation) CurrentView() math.Mat4 {
	return s.Camera.ViewMatrix()
}

// LastPick returns the most recently nudged box, refreshed from the world.
func (s *Simulation) LastPick() (world.Box, bool) {
	if s.lastPick == uuid.Nil {
		return world.Box{}, false
	}
	return s.World.Find(world.ByID(s.lastPick))
}
