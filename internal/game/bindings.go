package game

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/boxview/internal/config"
	"github.com/Faultbox/boxview/internal/engine/camera"
)

// ErrUnknownKey is returned when a control names a key SDL does not know.
var ErrUnknownKey = errors.New("unknown key name")

type moveBinding struct {
	key sdl.Scancode
	dir camera.Direction
}

type bindings struct {
	moves      []moveBinding
	screenshot sdl.Scancode
	quit       sdl.Scancode
	lookButton uint8
	pickButton uint8
}

// resolveBindings maps configured key names to scancodes using lookup.
func resolveBindings(c config.ControlsConfig, lookup func(string) sdl.Scancode) (bindings, error) {
	resolve := func(action, name string) (sdl.Scancode, error) {
		sc := lookup(name)
		if sc == sdl.SCANCODE_UNKNOWN {
			return 0, fmt.Errorf("%w: %s=%q", ErrUnknownKey, action, name)
		}
		return sc, nil
	}

	b := bindings{
		lookButton: c.LookButton,
		pickButton: c.PickButton,
	}

	moves := []struct {
		action string
		name   string
		dir    camera.Direction
	}{
		{"forward", c.Forward, camera.MoveForward},
		{"back", c.Back, camera.MoveBack},
		{"left", c.Left, camera.StrafeLeft},
		{"right", c.Right, camera.StrafeRight},
	}
	for _, m := range moves {
		sc, err := resolve(m.action, m.name)
		if err != nil {
			return bindings{}, err
		}
		b.moves = append(b.moves, moveBinding{key: sc, dir: m.dir})
	}

	var err error
	if b.screenshot, err = resolve("screenshot", c.Screenshot); err != nil {
		return bindings{}, err
	}
	if b.quit, err = resolve("quit", c.Quit); err != nil {
		return bindings{}, err
	}
	return b, nil
}
