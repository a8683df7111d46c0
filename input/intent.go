package input

import "github.com/lixenwraith/vi-snake/core"

// IntentType discriminates what a key press asks of the virtual stick
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // Esc, q, Ctrl+C
	IntentButton // Space, Enter
	IntentSteer  // Arrows, hjkl
)

// Intent is the backend-neutral meaning of a key press
type Intent struct {
	Type      IntentType
	Direction core.Direction // Valid for IntentSteer
}
