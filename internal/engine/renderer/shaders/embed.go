// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BoxVertexShader transforms the unit cube by model, view and projection.
//
//go:embed box.vert
var BoxVertexShader string

// BoxFragmentShader fills with a flat color.
//
//go:embed box.frag
var BoxFragmentShader string

// LineVertexShader is used for wireframes and the crosshair.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is used for wireframes and the crosshair.
//
//go:embed line.frag
var LineFragmentShader string
