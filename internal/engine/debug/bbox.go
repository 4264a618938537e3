// Package debug provides debug visualization utilities.
package debug

import "github.com/Faultbox/boxview/pkg/math"

// WireframeVertexCount is the number of line vertices in a box wireframe (12 edges x 2).
const WireframeVertexCount = 24

// HighlightPadding keeps the pick highlight from z-fighting with the box faces.
const HighlightPadding = 0.05

// BoxWireframe returns line vertices [x, y, z] for the edges of the box
// spanning lower..upper, grown by padding on every side. Inverted corners are
// reordered so the wireframe always encloses the box.
func BoxWireframe(lower, upper math.Vec3, padding float32) []float32 {
	if lower.X > upper.X {
		lower.X, upper.X = upper.X, lower.X
	}
	if lower.Y > upper.Y {
		lower.Y, upper.Y = upper.Y, lower.Y
	}
	if lower.Z > upper.Z {
		lower.Z, upper.Z = upper.Z, lower.Z
	}
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	lo, hi := lower.Sub(pad), upper.Add(pad)

	return []float32{
		// Bottom face
		lo.X, lo.Y, lo.Z, hi.X, lo.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, lo.Y, hi.Z,
		hi.X, lo.Y, hi.Z, lo.X, lo.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, lo.Y, lo.Z,
		// Top face
		lo.X, hi.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, hi.Y, lo.Z, hi.X, hi.Y, hi.Z,
		hi.X, hi.Y, hi.Z, lo.X, hi.Y, hi.Z,
		lo.X, hi.Y, hi.Z, lo.X, hi.Y, lo.Z,
		// Verticals
		lo.X, lo.Y, lo.Z, lo.X, hi.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, lo.Y, hi.Z, hi.X, hi.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, hi.Y, hi.Z,
	}
}

// CrosshairVertices returns two lines crossing at (cx, cy) in screen pixels,
// for drawing with an orthographic projection.
func CrosshairVertices(cx, cy, size float32) []float32 {
	return []float32{
		cx - size, cy, 0, cx + size, cy, 0,
		cx, cy - size, 0, cx, cy + size, 0,
	}
}
