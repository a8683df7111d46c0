package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// TestGameStateInitialization verifies the start-of-process state
func TestGameStateInitialization(t *testing.T) {
	gs := NewGameState(core.NewGrid(320, 240, 10), 400)

	if gs.Score != 0 {
		t.Errorf("Expected initial score 0, got %d", gs.Score)
	}
	if gs.Level != 1 {
		t.Errorf("Expected initial level 1, got %d", gs.Level)
	}
	if gs.TickDelayMs != 400 {
		t.Errorf("Expected initial delay 400ms, got %d", gs.TickDelayMs)
	}
	if gs.Snake.Len() != constants.SnakeInitialLength {
		t.Errorf("Expected initial length %d, got %d", constants.SnakeInitialLength, gs.Snake.Len())
	}
	if head := gs.Snake.Head(); head != (core.Cell{X: 160, Y: 120}) {
		t.Errorf("Expected head at centre {160 120}, got %v", head)
	}
	// Tail trails opposite to the initial heading
	if tail := gs.Snake.Segment(1); tail != (core.Cell{X: 150, Y: 120}) {
		t.Errorf("Expected tail at {150 120}, got %v", tail)
	}
	if gs.Direction != core.DirRight {
		t.Errorf("Expected initial direction Right, got %s", gs.Direction)
	}
	if gs.Food.Active || gs.Barrier.Active || gs.HazardTarget != 0 {
		t.Error("Expected no active food, barrier or hazards before the first spawn")
	}
	for _, c := range gs.Snake.Segments() {
		if !gs.Grid.Contains(c) {
			t.Errorf("Expected segment %v to be a valid cell", c)
		}
	}
}

func TestSnakeGrowthIsCapped(t *testing.T) {
	var s Snake
	cells := make([]core.Cell, constants.SnakeCapacity)
	for i := range cells {
		cells[i] = core.Cell{X: (i % 32) * 10, Y: (i / 32) * 10}
	}
	if err := s.Layout(cells...); err != nil {
		t.Fatalf("Expected full-capacity layout to succeed, got %v", err)
	}

	if s.Grow() {
		t.Error("Expected Grow to refuse past capacity")
	}
	if s.Len() != constants.SnakeCapacity {
		t.Errorf("Expected length %d, got %d", constants.SnakeCapacity, s.Len())
	}

	// Shift at capacity drops the tail instead of writing past the arena
	tail := s.Segment(constants.SnakeCapacity - 2)
	s.shift()
	if got := s.Segment(constants.SnakeCapacity - 1); got != tail {
		t.Errorf("Expected last segment %v after shift, got %v", tail, got)
	}
}

func TestSnakeLayoutRejectsBadSizes(t *testing.T) {
	var s Snake
	if err := s.Layout(); !errors.Is(err, ErrSnakeCapacity) {
		t.Errorf("Expected ErrSnakeCapacity for empty layout, got %v", err)
	}
	tooMany := make([]core.Cell, constants.SnakeCapacity+1)
	if err := s.Layout(tooMany...); !errors.Is(err, ErrSnakeCapacity) {
		t.Errorf("Expected ErrSnakeCapacity for oversized layout, got %v", err)
	}
}

func TestBarrierBlocksOnlyWhenActiveAtLevel(t *testing.T) {
	gs := NewGameState(core.NewGrid(320, 240, 10), 400)
	gs.Barrier = Barrier{Anchor: core.Cell{X: 100, Y: 100}}
	inside := core.Cell{X: 110, Y: 110}

	gs.Level = 2
	if gs.BarrierBlocks(inside) {
		t.Error("Expected inactive barrier not to block")
	}

	gs.Barrier.Active = true
	gs.Level = 1
	if gs.BarrierBlocks(inside) {
		t.Error("Expected barrier not to block below level 2")
	}

	gs.Level = 2
	if !gs.BarrierBlocks(inside) {
		t.Error("Expected active barrier to block a cell inside its footprint")
	}
	if gs.BarrierBlocks(core.Cell{X: 130, Y: 100}) {
		t.Error("Expected barrier not to block a cell past its footprint")
	}
}

func TestBarrierKillZoneMatchesCollision(t *testing.T) {
	g := core.NewGrid(320, 240, 10)
	anchors := []core.Cell{{X: 100, Y: 60}, {X: 150, Y: 108}, {X: 0, Y: 0}, {X: 300, Y: 220}}

	for _, anchor := range anchors {
		b := Barrier{Anchor: anchor, Active: true}
		zone := b.KillZone(g.CellSize)

		for row := 0; row < g.Rows(); row++ {
			for col := 0; col < g.Cols(); col++ {
				c := g.CellAt(col, row)
				if hits, shown := b.Footprint().Contains(c), zone.Contains(c); hits != shown {
					t.Errorf("Anchor %v cell %v: collides %v but shown %v", anchor, c, hits, shown)
				}
			}
		}
		if zone.Width%g.CellSize != 0 || zone.Height%g.CellSize != 0 {
			t.Errorf("Anchor %v: expected whole cells, got %+v", anchor, zone)
		}
	}
}
