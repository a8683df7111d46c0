package input

import (
	"sync"

	"github.com/lixenwraith/vi-snake/core"
)

// VirtualStick emulates the analog joystick from key presses.
// A steering key pushes the matching axis to full deflection and centres the other one;
// the deflection latches until the next steering key, like a stick held in place.
// The button latches until read. Backends feed it from their event goroutine.
type VirtualStick struct {
	mu     sync.Mutex
	table  *KeyTable
	axes   [2]int
	button bool
	quit   bool
}

// NewVirtualStick creates a centred stick using table, or the default bindings if nil
func NewVirtualStick(table *KeyTable) *VirtualStick {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &VirtualStick{
		table: table,
		axes:  [2]int{core.AxisCenter, core.AxisCenter},
	}
}

// HandleKey translates one key press and applies it
func (v *VirtualStick) HandleKey(key Key, r rune) {
	v.Apply(v.table.Lookup(key, r))
}

// Apply updates the latches for an intent
func (v *VirtualStick) Apply(in Intent) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch in.Type {
	case IntentQuit:
		v.quit = true
	case IntentButton:
		v.button = true
	case IntentSteer:
		v.axes = Deflect(in.Direction)
	}
}

// RequestQuit marks the stick as asking the process to exit
func (v *VirtualStick) RequestQuit() {
	v.Apply(Intent{Type: IntentQuit})
}

func (v *VirtualStick) ReadAxis(channel int) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if channel < 0 || channel >= len(v.axes) {
		return core.AxisCenter
	}
	return v.axes[channel]
}

// ReadButton reports and clears a latched press
func (v *VirtualStick) ReadButton() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	pressed := v.button
	v.button = false
	return pressed
}

func (v *VirtualStick) QuitRequested() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.quit
}
