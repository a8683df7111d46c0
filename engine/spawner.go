package engine

import (
	"log"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// BarrierPlacement selects how the barrier anchor is chosen
type BarrierPlacement int

const (
	// BarrierRandom anchors the barrier on a random cell
	BarrierRandom BarrierPlacement = iota
	// BarrierCenter anchors the glyph footprint at the display centre
	BarrierCenter
)

// SpawnerConfig holds placement tunables
type SpawnerConfig struct {
	Seed        uint64
	MaxAttempts int // Upper bound on samples per placement; <= 0 uses the default
	Placement   BarrierPlacement
}

// Spawner picks cell positions for food, hazards and the barrier.
// Placement samples random cells until one satisfies every constraint. The loop is bounded:
// after MaxAttempts samples the candidate with the fewest violated constraints is used.
type Spawner struct {
	rng         *rand.Rand
	clock       core.Clock
	maxAttempts int
	placement   BarrierPlacement

	// Fallbacks counts placements that exhausted their attempts
	Fallbacks int
}

// NewSpawner creates a spawner seeded from cfg
func NewSpawner(cfg SpawnerConfig, clock core.Clock) *Spawner {
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = constants.DefaultMaxSpawnAttempts
	}
	return &Spawner{
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		clock:       clock,
		maxAttempts: attempts,
		placement:   cfg.Placement,
	}
}

// randomCell draws a cell uniformly from [0, cols) x [0, rows)
func (s *Spawner) randomCell(g core.Grid) core.Cell {
	return g.CellAt(s.rng.Intn(g.Cols()), s.rng.Intn(g.Rows()))
}

// place samples until violations returns zero or attempts run out
func (s *Spawner) place(g core.Grid, what string, violations func(core.Cell) int) core.Cell {
	best := core.Cell{}
	bestScore := -1
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		c := s.randomCell(g)
		v := violations(c)
		if v == 0 {
			return c
		}
		if bestScore < 0 || v < bestScore {
			best, bestScore = c, v
		}
	}
	s.Fallbacks++
	log.Printf("spawner: %s placement exhausted %d attempts, using %v with %d violations",
		what, s.maxAttempts, best, bestScore)
	return best
}

// SpawnFood places the primary food and restarts its countdown
func (s *Spawner) SpawnFood(gs *GameState) {
	head := gs.Snake.Head()
	gs.Food.Pos = s.place(gs.Grid, "food", func(c core.Cell) int {
		v := 0
		if gs.BarrierBlocks(c) {
			v++
		}
		if c == head {
			v++
		}
		return v
	})
	gs.Food.Active = true
	gs.Countdown = constants.FoodCountdownSeconds
	gs.FoodTimer = s.clock.Now()
}

// SpawnHazard places hazard slot i.
// Besides the barrier and head, a hazard avoids the primary food and, for i > 0, only the
// hazard in slot i-1. Other slots are not checked, so two hazards may share a cell.
func (s *Spawner) SpawnHazard(gs *GameState, i int) {
	if i < 0 || i >= len(gs.Hazards) {
		return
	}
	head := gs.Snake.Head()
	gs.Hazards[i].Pos = s.place(gs.Grid, "hazard", func(c core.Cell) int {
		v := 0
		if gs.BarrierBlocks(c) {
			v++
		}
		if c == head {
			v++
		}
		if c == gs.Food.Pos {
			v++
		}
		if i > 0 && c == gs.Hazards[i-1].Pos {
			v++
		}
		return v
	})
	gs.Hazards[i].Active = true
}

// SpawnBarrier activates the barrier. A head inside the central region is moved to the
// escape corner; no other collision check is made for the moved head.
func (s *Spawner) SpawnBarrier(gs *GameState) {
	switch s.placement {
	case BarrierCenter:
		gs.Barrier.Anchor = core.Cell{
			X: (gs.Grid.Width - constants.BarrierWidth) / 2,
			Y: (gs.Grid.Height - constants.BarrierHeight) / 2,
		}
	default:
		gs.Barrier.Anchor = s.randomCell(gs.Grid)
	}

	if gs.Grid.InCentralRegion(gs.Snake.Head()) {
		gs.Snake.SetHead(core.Cell{X: constants.BarrierEscapeX, Y: constants.BarrierEscapeY})
	}

	gs.Barrier.Active = true
	log.Printf("spawner: barrier at %v", gs.Barrier.Anchor)
}
