package engine

import "github.com/lixenwraith/vi-snake/constants"

// Collision classifies the terminal condition detected on a tick
type Collision int

const (
	CollisionNone Collision = iota
	CollisionSelf
	CollisionBarrier
)

// String returns the collision name
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "None"
	case CollisionSelf:
		return "Self"
	case CollisionBarrier:
		return "Barrier"
	default:
		return "Unknown"
	}
}

// Outcome reports what happened during one motion step
type Outcome struct {
	AteFood      bool
	HazardsEaten int
	Collision    Collision
}

// Move shifts the body, steps the head in the current direction and wraps it toroidally
func Move(gs *GameState) {
	gs.Snake.shift()
	head := gs.Direction.Step(gs.Snake.Head(), gs.Grid.CellSize)
	gs.Snake.SetHead(gs.Grid.Wrap(head))
}

// Pickup applies primary food and hazard pickups at the head cell
func Pickup(gs *GameState) (ateFood bool, hazards int) {
	head := gs.Snake.Head()

	if gs.Food.Active && head == gs.Food.Pos {
		gs.Score++
		gs.Snake.Grow()
		gs.Food.Active = false
		ateFood = true
	}

	for i := 0; i < gs.HazardTarget; i++ {
		if gs.Hazards[i].Active && head == gs.Hazards[i].Pos {
			gs.Score--
			gs.Hazards[i].Active = false
			hazards++
		}
	}

	return ateFood, hazards
}

// Collides tests the head against the body, then against the barrier footprint
func Collides(gs *GameState) Collision {
	head := gs.Snake.Head()
	if gs.Snake.BodyContains(head) {
		return CollisionSelf
	}
	if gs.Level >= constants.BarrierLevel && gs.Barrier.Active && gs.Barrier.Footprint().Contains(head) {
		return CollisionBarrier
	}
	return CollisionNone
}

// Advance runs one motion step: move, pickups, then collision tests.
// Score changes from pickups are applied before a collision is reported.
func Advance(gs *GameState) Outcome {
	Move(gs)
	ate, hazards := Pickup(gs)
	return Outcome{
		AteFood:      ate,
		HazardsEaten: hazards,
		Collision:    Collides(gs),
	}
}
