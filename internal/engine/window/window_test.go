package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowFlags(t *testing.T) {
	windowed := windowFlags(Config{})
	assert.NotZero(t, windowed&sdl.WINDOW_OPENGL)
	assert.NotZero(t, windowed&sdl.WINDOW_ALLOW_HIGHDPI)
	assert.Zero(t, windowed&sdl.WINDOW_FULLSCREEN_DESKTOP)

	full := windowFlags(Config{Fullscreen: true})
	assert.Equal(t, uint32(sdl.WINDOW_FULLSCREEN_DESKTOP), full&sdl.WINDOW_FULLSCREEN_DESKTOP)
}

func TestSwapIntervals(t *testing.T) {
	assert.Equal(t, []int{-1, 1}, swapIntervals(true))
	assert.Equal(t, []int{0}, swapIntervals(false))
}
