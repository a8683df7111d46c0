// Package window presents the game in a raylib window with keyboard and gamepad steering.
// Every function here must run on the goroutine that called Open; raylib binds the main OS thread.
package window

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window owns the raylib context and the display and gamepad bound to it
type Window struct {
	Display *Display
	Gamepad *Gamepad
}

// Open creates a window showing a width x height pixel panel magnified by scale
func Open(title string, width, height, scale int) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("open window: invalid panel size %dx%d", width, height)
	}
	scale = max(scale, 1)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width*scale), int32(height*scale), title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("open window: raylib failed to initialize")
	}
	// Escape is a game binding, not a close request
	rl.SetExitKey(0)

	return &Window{
		Display: newDisplay(width, height, scale),
		Gamepad: NewGamepad(),
	}, nil
}

// Close releases the render target and the window
func (w *Window) Close() {
	w.Display.unload()
	rl.CloseWindow()
}

// Bind routes presented frames to the gamepad so input is sampled once per frame
func (w *Window) Bind() {
	w.Display.afterShow = w.Gamepad.Poll
}
