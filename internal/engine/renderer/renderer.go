// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/boxview/internal/engine/debug"
	"github.com/Faultbox/boxview/internal/engine/renderer/shaders"
	"github.com/Faultbox/boxview/internal/engine/shader"
	"github.com/Faultbox/boxview/internal/logger"
	"github.com/Faultbox/boxview/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

var (
	highlightColor = math.Vec3{X: 1, Y: 1, Z: 1}
	crosshairColor = math.Vec3{X: 0.9, Y: 0.9, Z: 0.9}
)

const crosshairSize = 8

// Renderer draws boxes, the pick highlight and the crosshair.
type Renderer struct {
	config Config

	boxProgram  *shader.Program
	lineProgram *shader.Program

	cubeVAO uint32
	cubeVBO uint32

	// Dynamic line buffer shared by the highlight and the crosshair
	lineVAO uint32
	lineVBO uint32

	projection math.Mat4
	view       math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		projection: math.Identity(),
		view:       math.Identity(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.boxProgram, err = shader.NewProgram(shaders.BoxVertexShader, shaders.BoxFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("box shader: %w", err)
	}
	r.lineProgram, err = shader.NewProgram(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		r.boxProgram.Delete()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.createCube()
	r.createLineBuffer()
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	r.boxProgram.Delete()
	r.lineProgram.Delete()
}

// Resize sets the viewport to the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the frame and sets the camera transforms used by later draws.
func (r *Renderer) Begin(projection, view math.Mat4) {
	r.projection = projection
	r.view = view
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawBox draws a solid box spanning origin..origin+extent.
// color channels are in [0, 255].
func (r *Renderer) DrawBox(origin, extent, color math.Vec3) {
	r.boxProgram.Use()
	r.boxProgram.SetMat4("uProjection", r.projection)
	r.boxProgram.SetMat4("uView", r.view)
	r.boxProgram.SetMat4("uModel", BoxModel(origin, extent))
	r.boxProgram.SetVec3("uColor", color.Scale(1.0/255.0))

	gl.BindVertexArray(r.cubeVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(unitCube)/3))
	gl.BindVertexArray(0)
}

// DrawHighlight outlines a box in world space.
func (r *Renderer) DrawHighlight(origin, extent math.Vec3) {
	r.drawLines(highlightVertices(origin, extent), r.projection, r.view, highlightColor)
}

// highlightVertices takes the outline corners from the model transform
// DrawBox uses, so the outline tracks the drawn cube.
func highlightVertices(origin, extent math.Vec3) []float32 {
	model := BoxModel(origin, extent)
	lower := model.TransformVec3(math.Vec3{})
	upper := model.TransformVec3(math.Vec3{X: 1, Y: 1, Z: 1})
	return debug.BoxWireframe(lower, upper, debug.HighlightPadding)
}

// DrawCrosshair draws a screen-centered crosshair over the scene.
func (r *Renderer) DrawCrosshair() {
	w, h := float32(r.config.Width), float32(r.config.Height)
	ortho := math.Ortho(0, w, 0, h, -1, 1)
	verts := debug.CrosshairVertices(w/2, h/2, crosshairSize)

	gl.Disable(gl.DEPTH_TEST)
	r.drawLines(verts, ortho, math.Identity(), crosshairColor)
	gl.Enable(gl.DEPTH_TEST)
}

// ReadPixels returns the framebuffer as RGBA, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// BoxModel maps the unit cube onto origin..origin+extent.
func BoxModel(origin, extent math.Vec3) math.Mat4 {
	return math.Translate(origin.X, origin.Y, origin.Z).Mul(math.Scale(extent.X, extent.Y, extent.Z))
}

func (r *Renderer) drawLines(verts []float32, projection, view math.Mat4, color math.Vec3) {
	if len(verts) == 0 {
		return
	}
	r.lineProgram.Use()
	r.lineProgram.SetMat4("uProjection", projection)
	r.lineProgram.SetMat4("uView", view)
	r.lineProgram.SetVec3("uColor", color)

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(verts)/3))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (r *Renderer) createCube() {
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(unitCube)*4, unsafe.Pointer(&unitCube[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("cube created",
		zap.Uint32("vao", r.cubeVAO),
		zap.Uint32("vbo", r.cubeVBO),
	)
}

func (r *Renderer) createLineBuffer() {
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)

	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, debug.WireframeVertexCount*3*4, nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}
