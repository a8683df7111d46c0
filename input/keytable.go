package input

import "github.com/lixenwraith/vi-snake/core"

// Key identifies a non-printable key independently of the backend that reported it
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyCtrlC
)

// KeyTable maps keys and runes to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[Key]Intent

	// Printable bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the fixed bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[Key]Intent{
			KeyUp:     {IntentSteer, core.DirUp},
			KeyDown:   {IntentSteer, core.DirDown},
			KeyLeft:   {IntentSteer, core.DirLeft},
			KeyRight:  {IntentSteer, core.DirRight},
			KeyEnter:  {Type: IntentButton},
			KeyEscape: {Type: IntentQuit},
			KeyCtrlC:  {Type: IntentQuit},
		},

		Runes: map[rune]Intent{
			'h': {IntentSteer, core.DirLeft},
			'j': {IntentSteer, core.DirDown},
			'k': {IntentSteer, core.DirUp},
			'l': {IntentSteer, core.DirRight},
			' ': {Type: IntentButton},
			'q': {Type: IntentQuit},
		},
	}
}

// Lookup resolves a key press; r is consulted only when key is KeyNone
func (kt *KeyTable) Lookup(key Key, r rune) Intent {
	if key != KeyNone {
		return kt.SpecialKeys[key]
	}
	return kt.Runes[r]
}
