package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// UpdateFoodTimer steps the primary food countdown once per elapsed real second.
// Returns true when the food expired on this call; the caller erases it from the display.
func UpdateFoodTimer(gs *GameState, now time.Time) bool {
	if gs.Level < constants.TimedFoodLevel || !gs.Food.Active {
		return false
	}
	if now.Sub(gs.FoodTimer) < constants.FoodCountdownStep {
		return false
	}

	gs.FoodTimer = now
	gs.Countdown--
	if gs.Countdown <= 0 {
		gs.Food.Active = false
		return true
	}
	return false
}
