package engine

import (
	"log"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// UpdateLevel recomputes the level from a positive even score.
// Runs every tick; recomputing with an unchanged score is a no-op.
func UpdateLevel(gs *GameState) bool {
	if gs.Score <= 0 || gs.Score%2 != 0 {
		return false
	}
	level := gs.Score/2 + 1
	if level == gs.Level {
		return false
	}
	gs.Level = level
	return true
}

// UpdateSpeed shrinks the tick delay by 20% on every tick spent above SpeedUpLevel.
// The reduction compounds per tick, not per level-up.
func UpdateSpeed(gs *GameState) {
	if gs.Level <= constants.SpeedUpLevel {
		return
	}
	gs.TickDelayMs = gs.TickDelayMs * constants.SpeedUpNumerator / constants.SpeedUpDenominator
	if gs.TickDelayMs < 0 {
		gs.TickDelayMs = 0
	}
}

// HazardTarget returns how many hazard slots are in play at level
func HazardTarget(level int) int {
	if level < constants.HazardLevel {
		return 0
	}
	return min(level-constants.HazardLevel+1, constants.MaxHazards)
}

// UpdateProgression derives level and speed, activates the barrier and refills consumed pickups.
// Hazard pickups can lower the level; slots above the new target are retired and their cells
// returned so the caller can erase them.
func UpdateProgression(gs *GameState, sp *Spawner) (retired []core.Cell) {
	if UpdateLevel(gs) {
		log.Printf("progression: level %d at score %d", gs.Level, gs.Score)
	}
	UpdateSpeed(gs)

	if gs.Level >= constants.BarrierLevel && !gs.Barrier.Active {
		sp.SpawnBarrier(gs)
	}

	if !gs.Food.Active {
		sp.SpawnFood(gs)
	}

	gs.HazardTarget = HazardTarget(gs.Level)
	retired = RetireHazards(gs)
	for i := 0; i < gs.HazardTarget; i++ {
		if !gs.Hazards[i].Active {
			sp.SpawnHazard(gs, i)
		}
	}
	return retired
}

// RetireHazards deactivates active slots at or above HazardTarget and returns their cells
func RetireHazards(gs *GameState) []core.Cell {
	var cells []core.Cell
	for i := gs.HazardTarget; i < len(gs.Hazards); i++ {
		if gs.Hazards[i].Active {
			gs.Hazards[i].Active = false
			cells = append(cells, gs.Hazards[i].Pos)
		}
	}
	return cells
}
