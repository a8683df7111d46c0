package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/input"
)

// Joystick is a virtual analog stick fed by tcell key events
type Joystick struct {
	*input.VirtualStick
}

// NewJoystick creates a centred joystick with the default bindings
func NewJoystick() *Joystick {
	return &Joystick{VirtualStick: input.NewVirtualStick(nil)}
}

// specialKeys translates tcell keys to backend-neutral keys
var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyEnter:  input.KeyEnter,
	tcell.KeyEscape: input.KeyEscape,
	tcell.KeyCtrlC:  input.KeyCtrlC,
}

// HandleEvent applies a key event; other events are ignored
func (j *Joystick) HandleEvent(ev tcell.Event) {
	if ek, ok := ev.(*tcell.EventKey); ok {
		j.HandleTerminalKey(ek.Key(), ek.Rune())
	}
}

// HandleTerminalKey applies a key press given as tcell key and rune
func (j *Joystick) HandleTerminalKey(key tcell.Key, r rune) {
	if key == tcell.KeyRune {
		j.HandleKey(input.KeyNone, r)
		return
	}
	if k, ok := specialKeys[key]; ok {
		j.HandleKey(k, 0)
	}
}
