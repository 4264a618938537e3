package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/boxview/pkg/math"
)

func TestBoxWireframe(t *testing.T) {
	verts := BoxWireframe(math.Vec3{X: 0, Y: 0, Z: 0}, math.Vec3{X: 1, Y: 2, Z: 3}, 0)
	require.Len(t, verts, WireframeVertexCount*3)

	for i := 0; i < len(verts); i += 3 {
		assert.Contains(t, []float32{0, 1}, verts[i])
		assert.Contains(t, []float32{0, 2}, verts[i+1])
		assert.Contains(t, []float32{0, 3}, verts[i+2])
	}
}

func TestBoxWireframePaddingAndInvertedCorners(t *testing.T) {
	verts := BoxWireframe(math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: 0, Y: 0, Z: 0}, 0.5)

	// First vertex is the padded minimum corner.
	assert.Equal(t, []float32{-0.5, -0.5, -0.5}, verts[0:3])
	// Second is +X along the bottom edge.
	assert.Equal(t, []float32{1.5, -0.5, -0.5}, verts[3:6])
}

func TestCrosshairVertices(t *testing.T) {
	verts := CrosshairVertices(100, 50, 10)
	assert.Equal(t, []float32{
		90, 50, 0, 110, 50, 0,
		100, 40, 0, 100, 60, 0,
	}, verts)
}

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "boxview")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	// 1x2 image: bottom row red, top row blue (OpenGL order)
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "boxview_2024-05-01_12-00-00.000.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0xffff), b)
	r, _, _, _ = img.At(0, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestCaptureFromPixelsRejectsBadInput(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "x")

	_, err := sc.CaptureFromPixels([]byte{1, 2, 3}, 1, 1)
	assert.Error(t, err)

	_, err = sc.CaptureFromPixels(nil, 0, 0)
	assert.Error(t, err)
}
