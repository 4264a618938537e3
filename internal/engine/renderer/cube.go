package renderer

// unitCube is the [0,1]^3 cube as 12 triangles.
var unitCube = []float32{
	// Front (z=0)
	0, 0, 0, 1, 0, 0, 1, 1, 0,
	0, 0, 0, 1, 1, 0, 0, 1, 0,
	// Back (z=1)
	0, 0, 1, 1, 1, 1, 1, 0, 1,
	0, 0, 1, 0, 1, 1, 1, 1, 1,
	// Top (y=1)
	0, 1, 0, 1, 1, 0, 1, 1, 1,
	0, 1, 0, 1, 1, 1, 0, 1, 1,
	// Bottom (y=0)
	0, 0, 0, 1, 0, 1, 1, 0, 0,
	0, 0, 0, 0, 0, 1, 1, 0, 1,
	// Right (x=1)
	1, 0, 0, 1, 0, 1, 1, 1, 1,
	1, 0, 0, 1, 1, 1, 1, 1, 0,
	// Left (x=0)
	0, 0, 0, 0, 1, 1, 0, 0, 1,
	0, 0, 0, 0, 1, 0, 0, 1, 1,
}
