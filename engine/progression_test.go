package engine

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

// TestLevelRecomputeIdempotent applies the level rule twice with an unchanged score
func TestLevelRecomputeIdempotent(t *testing.T) {
	gs, _, _ := newTestState(t, 1)
	gs.Score = 6

	UpdateLevel(gs)
	first := gs.Level
	changed := UpdateLevel(gs)

	if first != 4 {
		t.Errorf("Expected level 4 for score 6, got %d", first)
	}
	if changed || gs.Level != first {
		t.Errorf("Expected second recompute to keep level %d, got %d (changed=%v)", first, gs.Level, changed)
	}
}

func TestLevelGuard(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 1},
		{4, 3},
		{-2, 1},
		{10, 6},
	}
	for _, tt := range tests {
		gs, _, _ := newTestState(t, 1)
		gs.Score = tt.score
		UpdateLevel(gs)
		if gs.Level != tt.expected {
			t.Errorf("Score %d: expected level %d, got %d", tt.score, tt.expected, gs.Level)
		}
	}
}

// TestSpeedCompoundsPerTick verifies the delay shrinks on every tick above level 4
func TestSpeedCompoundsPerTick(t *testing.T) {
	gs, _, _ := newTestState(t, 1)

	gs.Level = 4
	UpdateSpeed(gs)
	if gs.TickDelayMs != 400 {
		t.Errorf("Expected no speed-up at level 4, got %d", gs.TickDelayMs)
	}

	gs.Level = 5
	expected := []int{320, 256, 204, 163, 130}
	for i, want := range expected {
		UpdateSpeed(gs)
		if gs.TickDelayMs != want {
			t.Errorf("Tick %d: expected delay %d, got %d", i, want, gs.TickDelayMs)
		}
	}

	// Delay bottoms out at zero
	for i := 0; i < 100; i++ {
		UpdateSpeed(gs)
	}
	if gs.TickDelayMs != 0 {
		t.Errorf("Expected delay to reach 0, got %d", gs.TickDelayMs)
	}
}

func TestHazardTarget(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 0},
		{3, 0},
		{4, 1},
		{5, 2},
		{8, 5},
		{12, 5},
	}
	for _, tt := range tests {
		if got := HazardTarget(tt.level); got != tt.expected {
			t.Errorf("HazardTarget(%d) = %d, want %d", tt.level, got, tt.expected)
		}
	}
}

// TestTwoPickupScenario: score 0 -> 1 keeps level 1, score 2 reaches level 2 with a barrier
func TestTwoPickupScenario(t *testing.T) {
	gs, sp, _ := newTestState(t, 5)
	sp.SpawnFood(gs)

	if gs.Score != 0 || gs.Level != 1 || gs.Snake.Len() != 2 {
		t.Fatalf("Unexpected start: score %d level %d len %d", gs.Score, gs.Level, gs.Snake.Len())
	}

	gs.Food.Pos = nextHead(gs)
	Advance(gs)
	UpdateProgression(gs, sp)

	if gs.Score != 1 || gs.Snake.Len() != 3 || gs.Level != 1 {
		t.Errorf("After first pickup: expected score 1 len 3 level 1, got %d %d %d",
			gs.Score, gs.Snake.Len(), gs.Level)
	}
	if gs.Barrier.Active {
		t.Error("Expected no barrier at level 1")
	}
	if !gs.Food.Active {
		t.Error("Expected food to respawn")
	}

	gs.Food.Pos = nextHead(gs)
	Advance(gs)
	UpdateProgression(gs, sp)

	if gs.Score != 2 || gs.Snake.Len() != 4 || gs.Level != 2 {
		t.Errorf("After second pickup: expected score 2 len 4 level 2, got %d %d %d",
			gs.Score, gs.Snake.Len(), gs.Level)
	}
	if !gs.Barrier.Active {
		t.Error("Expected barrier to activate at level 2")
	}
	if gs.BarrierBlocks(gs.Food.Pos) {
		t.Errorf("Expected respawned food %v clear of the new barrier", gs.Food.Pos)
	}
}

func TestProgressionFillsHazardSlots(t *testing.T) {
	gs, sp, _ := newTestState(t, 8)
	gs.Score = 8 // level 5

	UpdateProgression(gs, sp)

	if gs.Level != 5 {
		t.Fatalf("Expected level 5, got %d", gs.Level)
	}
	if gs.HazardTarget != 2 {
		t.Errorf("Expected 2 hazard slots, got %d", gs.HazardTarget)
	}
	for i := 0; i < gs.HazardTarget; i++ {
		if !gs.Hazards[i].Active {
			t.Errorf("Expected hazard %d to be active", i)
		}
	}
	for i := gs.HazardTarget; i < len(gs.Hazards); i++ {
		if gs.Hazards[i].Active {
			t.Errorf("Expected hazard %d to stay inactive", i)
		}
	}
	if gs.TickDelayMs != 320 {
		t.Errorf("Expected one speed-up step to 320ms, got %d", gs.TickDelayMs)
	}

	// Consumed hazards are refilled on the next update
	consumed := gs.Hazards[1].Pos
	gs.Hazards[1].Active = false
	UpdateProgression(gs, sp)
	if !gs.Hazards[1].Active {
		t.Errorf("Expected hazard 1 (was %v) to respawn", consumed)
	}
}

func TestProgressionBarrierPersists(t *testing.T) {
	gs, sp, _ := newTestState(t, 4)
	gs.Score = 2
	UpdateProgression(gs, sp)
	anchor := gs.Barrier.Anchor

	gs.Score = 6
	UpdateProgression(gs, sp)

	if !gs.Barrier.Active || gs.Barrier.Anchor != anchor {
		t.Errorf("Expected barrier to persist at %v, got %+v", anchor, gs.Barrier)
	}
	if head := gs.Snake.Head(); !gs.Grid.Contains(head) {
		t.Errorf("Expected head %v to remain a valid cell", head)
	}
}

// TestLevelDropRetiresHazards: hazard pickups lower the level and the hazard target with it
func TestLevelDropRetiresHazards(t *testing.T) {
	gs, sp, _ := newTestState(t, 11)
	gs.Score = 6 // level 4, one hazard slot

	if retired := UpdateProgression(gs, sp); len(retired) != 0 {
		t.Fatalf("Expected nothing retired on level-up, got %v", retired)
	}
	if gs.HazardTarget != 1 || !gs.Hazards[0].Active {
		t.Fatalf("Expected one active hazard at level 4, got target %d active %v",
			gs.HazardTarget, gs.Hazards[0].Active)
	}
	slot0 := gs.Hazards[0].Pos

	gs.Score = 4
	retired := UpdateProgression(gs, sp)

	if gs.Level != 3 {
		t.Fatalf("Expected level 3 after dropping to score 4, got %d", gs.Level)
	}
	if gs.HazardTarget != 0 {
		t.Errorf("Expected hazard target 0, got %d", gs.HazardTarget)
	}
	if gs.Hazards[0].Active {
		t.Error("Expected hazard 0 to be retired")
	}
	if len(retired) != 1 || retired[0] != slot0 {
		t.Errorf("Expected retired cells [%v], got %v", slot0, retired)
	}

	// Retired slot no longer scores
	mustLayout(t, gs, slot0, core.Cell{X: slot0.X, Y: slot0.Y + 10})
	gs.Food.Active = false
	if _, hazards := Pickup(gs); hazards != 0 || gs.Score != 4 {
		t.Errorf("Expected retired hazard to be inert, got %d hazards score %d", hazards, gs.Score)
	}
}

func TestRetireHazardsKeepsSlotsBelowTarget(t *testing.T) {
	gs, _, _ := newTestState(t, 1)
	for i := range gs.Hazards {
		gs.Hazards[i] = Food{Pos: core.Cell{X: i * 10, Y: 50}, Active: true}
	}
	gs.HazardTarget = 2

	retired := RetireHazards(gs)

	if len(retired) != 3 {
		t.Fatalf("Expected 3 retired slots, got %d", len(retired))
	}
	for i := range gs.Hazards {
		if expected := i < 2; gs.Hazards[i].Active != expected {
			t.Errorf("Slot %d: expected active %v, got %v", i, expected, gs.Hazards[i].Active)
		}
	}
	if again := RetireHazards(gs); len(again) != 0 {
		t.Errorf("Expected second retire to be a no-op, got %v", again)
	}
}
