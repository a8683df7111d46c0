package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestState builds a 320x240 state with a seeded spawner and mock clock
func newTestState(t *testing.T, seed uint64) (*GameState, *Spawner, *MockTimeProvider) {
	t.Helper()
	clock := NewMockTimeProvider(testEpoch)
	gs := NewGameState(core.NewGrid(320, 240, 10), 400)
	sp := NewSpawner(SpawnerConfig{Seed: seed}, clock)
	return gs, sp, clock
}

// mustLayout replaces the snake or fails the test
func mustLayout(t *testing.T, gs *GameState, cells ...core.Cell) {
	t.Helper()
	if err := gs.Snake.Layout(cells...); err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
}

// nextHead returns where the head lands on the next move
func nextHead(gs *GameState) core.Cell {
	return gs.Grid.Wrap(gs.Direction.Step(gs.Snake.Head(), gs.Grid.CellSize))
}
