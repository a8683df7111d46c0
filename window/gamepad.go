package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
)

// gamepadID is the first connected controller
const gamepadID = 0

// stickDeadZone ignores small analog drift
const stickDeadZone = 0.2

// Gamepad reads the first controller's left stick and south face button, falling back to
// keyboard steering through a virtual stick when the stick rests
type Gamepad struct {
	keys *input.VirtualStick
}

// NewGamepad creates a gamepad with the default keyboard bindings
func NewGamepad() *Gamepad {
	return &Gamepad{keys: input.NewVirtualStick(nil)}
}

// keyMap translates raylib key codes to backend-neutral keys
var keyMap = map[int32]input.Key{
	rl.KeyUp:     input.KeyUp,
	rl.KeyDown:   input.KeyDown,
	rl.KeyLeft:   input.KeyLeft,
	rl.KeyRight:  input.KeyRight,
	rl.KeyEnter:  input.KeyEnter,
	rl.KeyEscape: input.KeyEscape,
}

// runeMap translates raylib key codes of the bound letter keys
var runeMap = map[int32]rune{
	rl.KeySpace: ' ',
	rl.KeyH:     'h',
	rl.KeyJ:     'j',
	rl.KeyK:     'k',
	rl.KeyL:     'l',
	rl.KeyQ:     'q',
}

// HandleKeyCode applies one raylib key press
func (g *Gamepad) HandleKeyCode(code int32) {
	if k, ok := keyMap[code]; ok {
		g.keys.HandleKey(k, 0)
		return
	}
	if r, ok := runeMap[code]; ok {
		g.keys.HandleKey(input.KeyNone, r)
	}
}

// Poll drains the key queue and samples window close and the gamepad button.
// Raylib refreshes both during EndDrawing, so Poll runs right after each presented frame.
func (g *Gamepad) Poll() {
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		g.HandleKeyCode(code)
	}
	if rl.WindowShouldClose() {
		g.keys.RequestQuit()
	}
	if rl.IsGamepadAvailable(gamepadID) && rl.IsGamepadButtonPressed(gamepadID, rl.GamepadButtonRightFaceDown) {
		g.keys.Apply(input.Intent{Type: input.IntentButton})
	}
}

// ReadAxis returns the stick reading when deflected, otherwise the keyboard latch
func (g *Gamepad) ReadAxis(channel int) int {
	if rl.IsGamepadAvailable(gamepadID) {
		// Panel is rotated: vertical stick travel drives channel X, horizontal drives Y inverted
		switch channel {
		case core.AxisX:
			if v := rl.GetGamepadAxisMovement(gamepadID, rl.GamepadAxisLeftY); deflected(v) {
				return AxisReading(v)
			}
		case core.AxisY:
			if v := rl.GetGamepadAxisMovement(gamepadID, rl.GamepadAxisLeftX); deflected(v) {
				return AxisReading(-v)
			}
		}
	}
	return g.keys.ReadAxis(channel)
}

func (g *Gamepad) ReadButton() bool {
	return g.keys.ReadButton()
}

func (g *Gamepad) QuitRequested() bool {
	return g.keys.QuitRequested()
}

func deflected(v float32) bool {
	return v > stickDeadZone || v < -stickDeadZone
}

// AxisReading converts a normalized stick position in [-1, 1] to a 10-bit reading
func AxisReading(v float32) int {
	v = min(max(v, -1), 1)
	return int((v + 1) / 2 * core.AxisMax)
}
