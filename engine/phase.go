package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for a phase change the state machine does not allow
var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase is the explicit game phase
type Phase int

const (
	PhaseIdle     Phase = iota // Start screen, waiting for the button
	PhaseRunning               // Main loop
	PhaseGameOver              // Terminal, no further updates
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// validTransitions is the complete transition table; GameOver has no exits
var validTransitions = map[Phase][]Phase{
	PhaseIdle:    {PhaseRunning},
	PhaseRunning: {PhaseGameOver},
}

// CanTransition reports whether from -> to is allowed
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Transition moves the state to phase to
func (gs *GameState) Transition(to Phase) error {
	if !CanTransition(gs.Phase, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, gs.Phase, to)
	}
	gs.Phase = to
	return nil
}
