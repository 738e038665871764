package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input tracks previous key/button states for edge detection, so a held
// key produces exactly one intent.
type Input struct {
	prevKeys  map[glfw.Key]bool
	prevMouse map[glfw.MouseButton]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys:  make(map[glfw.Key]bool),
		prevMouse: make(map[glfw.MouseButton]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// keyBindings maps keyboard keys to directional intents. Arrow keys and
// WASD are equivalent.
var keyBindings = []struct {
	key glfw.Key
	dir Direction
}{
	{glfw.KeyUp, DirUp},
	{glfw.KeyW, DirUp},
	{glfw.KeyDown, DirDown},
	{glfw.KeyS, DirDown},
	{glfw.KeyLeft, DirLeft},
	{glfw.KeyA, DirLeft},
	{glfw.KeyRight, DirRight},
	{glfw.KeyD, DirRight},
}

// ProcessInput translates raw device events into router calls. It runs
// once per frame on the main thread, between ticks, so intents never
// race with a step. Pass a nil pad when the on-screen pad is disabled.
func ProcessInput(window *glfw.Window, in *Input, router *Router, pad *Pad) {
	for _, b := range keyBindings {
		if in.JustPressed(window, b.key) {
			router.DirectionIntent(b.dir)
		}
	}
	if in.JustPressed(window, glfw.KeySpace) {
		router.PauseToggle()
	}
	if in.JustPressed(window, glfw.KeyR) {
		router.Restart()
	}
	if pad != nil && in.JustClicked(window, glfw.MouseButtonLeft) {
		if d, ok := pad.Hit(window.GetCursorPos()); ok {
			router.DirectionIntent(d)
		}
	}
}
