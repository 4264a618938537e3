// Package game runs the box viewer: the simulation and the frame loop that drives it.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/boxview/internal/config"
	"github.com/Faultbox/boxview/internal/engine/debug"
	"github.com/Faultbox/boxview/internal/engine/input"
	"github.com/Faultbox/boxview/internal/engine/renderer"
	"github.com/Faultbox/boxview/internal/engine/window"
	"github.com/Faultbox/boxview/internal/logger"
)

const title = "BoxView"

// Game owns the platform resources and the simulation they drive.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	bindings bindings
	shots    *debug.ScreenshotCapture

	sim *Simulation
}

// New creates the window, renderer and simulation from cfg.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	sim, err := NewSimulationFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	keys, err := resolveBindings(cfg.Controls, input.Scancode)
	if err != nil {
		return nil, err
	}

	g := &Game{
		config:   cfg,
		bindings: keys,
		shots:    debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "boxview"),
		sim:      sim,
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fbWidth, fbHeight := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  fbWidth,
		Height: fbHeight,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.sim.Resize(fbWidth, fbHeight)

	g.input = input.New()

	logger.Info("viewer initialized")
	return g, nil
}

// Run starts the frame loop and returns when the window closes.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}

		screenshot := g.handleEvents()
		g.queueMovement()
		g.sim.OnFrame(dt)

		g.render()

		if screenshot {
			g.captureScreenshot()
		}

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("dt_ms", dt*1000),
				logger.Vec3("position", g.sim.Camera.Position),
				logger.Vec3("rotation", g.sim.Camera.Rotation),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up platform resources.
func (g *Game) Close() {
	logger.Info("closing viewer")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// handleEvents feeds this frame's discrete events to the simulation.
// It reports whether a screenshot was requested.
func (g *Game) handleEvents() bool {
	screenshot := false

	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := g.window.DrawableSize()
			g.renderer.Resize(w, h)
			g.sim.Resize(w, h)

		case input.EventKeyDown:
			switch event.Key {
			case g.bindings.quit:
				g.running = false
			case g.bindings.screenshot:
				screenshot = true
			}

		case input.EventMouseMove:
			if g.input.IsButtonHeld(g.bindings.lookButton) {
				g.sim.OnPointerDrag(float32(event.DeltaX), float32(event.DeltaY))
			}

		case input.EventMouseDown:
			if event.Button == g.bindings.pickButton {
				g.sim.OnPrimaryClick(event.MouseX, event.MouseY)
			}
		}
	}

	return screenshot
}

// queueMovement queues one movement per held direction key.
func (g *Game) queueMovement() {
	for _, m := range g.bindings.moves {
		if g.input.IsKeyHeld(m.key) {
			g.sim.OnDirectionalKey(m.dir)
		}
	}
}

func (g *Game) render() {
	g.renderer.Begin(g.sim.CurrentProjection(), g.sim.CurrentView())

	for _, b := range g.sim.IterateBoxes() {
		g.renderer.DrawBox(b.Origin, b.Extent, b.Color)
	}

	if g.config.Debug.HighlightPick {
		if b, ok := g.sim.LastPick(); ok {
			g.renderer.DrawHighlight(b.Origin, b.Extent)
		}
	}
	if g.config.Debug.Crosshair {
		g.renderer.DrawCrosshair()
	}
}

func (g *Game) captureScreenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
