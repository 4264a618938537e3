// Package window opens the SDL2 window the viewer draws into.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/boxview/internal/logger"
)

func init() {
	// SDL and GL calls have to stay on the thread that created the context.
	runtime.LockOSThread()
}

// Config describes the window to open.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window is an SDL2 window with a current OpenGL 4.1 core context.
type Window struct {
	handle  *sdl.Window
	context sdl.GLContext
}

type glAttribute struct {
	attr  sdl.GLattr
	value int
}

// contextAttributes request a 4.1 core profile, the highest macOS offers.
var contextAttributes = []glAttribute{
	{sdl.GL_CONTEXT_MAJOR_VERSION, 4},
	{sdl.GL_CONTEXT_MINOR_VERSION, 1},
	{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
	{sdl.GL_DOUBLEBUFFER, 1},
	{sdl.GL_DEPTH_SIZE, 24},
}

// New initialises SDL video, opens the window and makes its GL context current.
func New(cfg Config) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	for _, a := range contextAttributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("gl attribute %d: %w", a.attr, err)
		}
	}

	handle, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height),
		windowFlags(cfg))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	ctx, err := handle.GLCreateContext()
	if err != nil {
		handle.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create gl context: %w", err)
	}

	w := &Window{handle: handle, context: ctx}
	w.applySwapInterval(cfg.VSync)

	fbWidth, fbHeight := w.DrawableSize()
	logger.Info("window open",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("drawable_width", fbWidth),
		zap.Int("drawable_height", fbHeight),
		zap.Bool("fullscreen", cfg.Fullscreen),
	)
	return w, nil
}

// applySwapInterval tries each interval in turn; adaptive vsync is not
// supported by every driver.
func (w *Window) applySwapInterval(vsync bool) {
	for _, interval := range swapIntervals(vsync) {
		if err := sdl.GLSetSwapInterval(interval); err != nil {
			logger.Debug("swap interval rejected", zap.Int("interval", interval), zap.Error(err))
			continue
		}
		logger.Debug("swap interval set", zap.Int("interval", interval))
		return
	}
	logger.Warn("no swap interval accepted, frame rate is driver-controlled")
}

// Close releases the context and the window and shuts SDL down.
func (w *Window) Close() {
	if w.context != nil {
		sdl.GLDeleteContext(w.context)
		w.context = nil
	}
	if w.handle != nil {
		w.handle.Destroy()
		w.handle = nil
	}
	sdl.Quit()
	logger.Info("window closed")
}

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() {
	w.handle.GLSwap()
}

// DrawableSize is the framebuffer size in pixels. On HiDPI displays it is
// larger than the size the window was created with.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.handle.GLGetDrawableSize()
	return int(width), int(height)
}

func windowFlags(cfg Config) uint32 {
	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}

// swapIntervals lists the intervals to try: adaptive then regular vsync, or
// immediate presentation.
func swapIntervals(vsync bool) []int {
	if vsync {
		return []int{-1, 1}
	}
	return []int{0}
}
