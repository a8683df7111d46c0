package engine

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

// TestSpawnsAvoidBarrier checks food and hazards never land on the barrier footprint
func TestSpawnsAvoidBarrier(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		gs, sp, _ := newTestState(t, seed)
		gs.Level = 5
		gs.HazardTarget = HazardTarget(gs.Level)
		sp.SpawnBarrier(gs)
		footprint := gs.Barrier.Footprint()

		for round := 0; round < 20; round++ {
			sp.SpawnFood(gs)
			if footprint.Overlaps(gs.Food.Pos, gs.Grid.CellSize) {
				t.Fatalf("seed %d: food %v overlaps barrier %+v", seed, gs.Food.Pos, footprint)
			}
			if gs.Food.Pos == gs.Snake.Head() {
				t.Fatalf("seed %d: food spawned on the head %v", seed, gs.Food.Pos)
			}
			if !gs.Grid.Contains(gs.Food.Pos) {
				t.Fatalf("seed %d: food %v is not a valid cell", seed, gs.Food.Pos)
			}

			for i := 0; i < gs.HazardTarget; i++ {
				sp.SpawnHazard(gs, i)
				h := gs.Hazards[i].Pos
				if footprint.Overlaps(h, gs.Grid.CellSize) {
					t.Fatalf("seed %d: hazard %d at %v overlaps barrier", seed, i, h)
				}
				if h == gs.Food.Pos {
					t.Fatalf("seed %d: hazard %d shares the primary food cell %v", seed, i, h)
				}
				if i > 0 && h == gs.Hazards[i-1].Pos {
					t.Fatalf("seed %d: hazard %d shares the previous hazard cell %v", seed, i, h)
				}
			}
		}
	}

	// Spawning itself succeeds without falling back on a roomy grid
	gs, sp, _ := newTestState(t, 7)
	sp.SpawnFood(gs)
	if sp.Fallbacks != 0 {
		t.Errorf("Expected no fallbacks, got %d", sp.Fallbacks)
	}
}

// TestHazardExclusionIsOnlyAgainstPrevious shows non-adjacent hazard slots may share a cell.
// On a 4-cell strip with the head and food pinned, slots 0 and 2 are forced together.
func TestHazardExclusionIsOnlyAgainstPrevious(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	gs := NewGameState(core.NewGrid(40, 10, 10), 400)
	mustLayout(t, gs, core.Cell{X: 0, Y: 0})
	gs.Food = Food{Pos: core.Cell{X: 10, Y: 0}, Active: true}
	gs.Level = 6
	gs.HazardTarget = HazardTarget(gs.Level)

	sp := NewSpawner(SpawnerConfig{Seed: 3}, clock)
	for i := 0; i < 3; i++ {
		sp.SpawnHazard(gs, i)
	}

	if sp.Fallbacks != 0 {
		t.Fatalf("Expected every hazard to find a valid cell, got %d fallbacks", sp.Fallbacks)
	}
	if gs.Hazards[0].Pos == gs.Hazards[1].Pos || gs.Hazards[1].Pos == gs.Hazards[2].Pos {
		t.Errorf("Expected adjacent slots to differ, got %v %v %v",
			gs.Hazards[0].Pos, gs.Hazards[1].Pos, gs.Hazards[2].Pos)
	}
	if gs.Hazards[0].Pos != gs.Hazards[2].Pos {
		t.Errorf("Expected slots 0 and 2 to share a cell, got %v and %v",
			gs.Hazards[0].Pos, gs.Hazards[2].Pos)
	}
}

func TestSpawnFoodResetsCountdown(t *testing.T) {
	gs, sp, clock := newTestState(t, 9)
	gs.Countdown = 1
	clock.Advance(12345)

	sp.SpawnFood(gs)

	if !gs.Food.Active {
		t.Error("Expected food to be active")
	}
	if gs.Countdown != 5 {
		t.Errorf("Expected countdown 5, got %d", gs.Countdown)
	}
	if !gs.FoodTimer.Equal(clock.Now()) {
		t.Errorf("Expected food timer %v, got %v", clock.Now(), gs.FoodTimer)
	}
}

// TestSpawnFallback verifies the bounded loop settles on the least-bad candidate
func TestSpawnFallback(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	gs := NewGameState(core.NewGrid(10, 10, 10), 400)
	mustLayout(t, gs, core.Cell{X: 0, Y: 0})

	sp := NewSpawner(SpawnerConfig{Seed: 1, MaxAttempts: 5}, clock)
	sp.SpawnFood(gs)

	if sp.Fallbacks != 1 {
		t.Errorf("Expected 1 fallback, got %d", sp.Fallbacks)
	}
	if !gs.Food.Active || gs.Food.Pos != (core.Cell{X: 0, Y: 0}) {
		t.Errorf("Expected fallback food at the only cell, got %+v", gs.Food)
	}
}

func TestSpawnBarrierRelocatesCentralHead(t *testing.T) {
	gs, sp, _ := newTestState(t, 11)
	body := gs.Snake.Segment(1)

	sp.SpawnBarrier(gs)

	if !gs.Barrier.Active {
		t.Fatal("Expected barrier to be active")
	}
	if head := gs.Snake.Head(); head != (core.Cell{X: 10, Y: 10}) {
		t.Errorf("Expected central head to move to {10 10}, got %v", head)
	}
	if gs.Snake.Segment(1) != body {
		t.Error("Expected only the head to move")
	}
	if !gs.Grid.Contains(gs.Barrier.Anchor) {
		t.Errorf("Expected random anchor to be a grid cell, got %v", gs.Barrier.Anchor)
	}
}

func TestSpawnBarrierKeepsOuterHead(t *testing.T) {
	gs, sp, _ := newTestState(t, 11)
	mustLayout(t, gs, core.Cell{X: 300, Y: 20}, core.Cell{X: 290, Y: 20})

	sp.SpawnBarrier(gs)

	if head := gs.Snake.Head(); head != (core.Cell{X: 300, Y: 20}) {
		t.Errorf("Expected outer head to stay put, got %v", head)
	}
}

func TestSpawnBarrierCentered(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	gs := NewGameState(core.NewGrid(320, 240, 10), 400)
	sp := NewSpawner(SpawnerConfig{Seed: 1, Placement: BarrierCenter}, clock)

	sp.SpawnBarrier(gs)

	if gs.Barrier.Anchor != (core.Cell{X: 150, Y: 108}) {
		t.Errorf("Expected centred anchor {150 108}, got %v", gs.Barrier.Anchor)
	}
}

// TestSpawnerDeterministic verifies equal seeds give equal placements
func TestSpawnerDeterministic(t *testing.T) {
	a, spA, _ := newTestState(t, 99)
	b, spB, _ := newTestState(t, 99)

	for i := 0; i < 10; i++ {
		spA.SpawnFood(a)
		spB.SpawnFood(b)
		if a.Food.Pos != b.Food.Pos {
			t.Fatalf("Round %d: expected equal placements, got %v and %v", i, a.Food.Pos, b.Food.Pos)
		}
	}
}

func TestSpawnHazardIgnoresBadIndex(t *testing.T) {
	gs, sp, _ := newTestState(t, 1)
	sp.SpawnHazard(gs, -1)
	sp.SpawnHazard(gs, len(gs.Hazards))
	for i, h := range gs.Hazards {
		if h.Active {
			t.Errorf("Expected hazard %d to stay inactive", i)
		}
	}
}
