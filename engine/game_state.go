package engine

import (
	"errors"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// ErrSnakeCapacity is returned when a snake layout exceeds the segment arena
var ErrSnakeCapacity = errors.New("snake exceeds segment capacity")

// Snake is a fixed-capacity arena of segments with the head at index 0
type Snake struct {
	segments [constants.SnakeCapacity]core.Cell
	length   int
}

// NewSnake places a head and lays the remaining initial segments behind it, opposite to dir
func NewSnake(grid core.Grid, head core.Cell, dir core.Direction) Snake {
	var s Snake
	s.segments[0] = head
	back := (dir + 2) % 4
	for i := 1; i < constants.SnakeInitialLength; i++ {
		s.segments[i] = grid.Wrap(back.Step(s.segments[i-1], grid.CellSize))
	}
	s.length = constants.SnakeInitialLength
	return s
}

// Len returns the number of live segments
func (s *Snake) Len() int {
	return s.length
}

// Head returns segment 0
func (s *Snake) Head() core.Cell {
	return s.segments[0]
}

// SetHead overwrites segment 0 without touching the body
func (s *Snake) SetHead(c core.Cell) {
	s.segments[0] = c
}

// Segment returns segment i; i must be below Len
func (s *Snake) Segment(i int) core.Cell {
	return s.segments[i]
}

// Segments returns the live segments, head first. The slice aliases the arena.
func (s *Snake) Segments() []core.Cell {
	return s.segments[:s.length]
}

// Layout replaces the snake with the given cells, head first
func (s *Snake) Layout(cells ...core.Cell) error {
	if len(cells) == 0 || len(cells) > constants.SnakeCapacity {
		return ErrSnakeCapacity
	}
	s.length = copy(s.segments[:], cells)
	return nil
}

// shift moves every segment one index toward the tail, freeing index 0 for the new head.
// The slot just past the tail receives the old tail so Grow can expose it.
func (s *Snake) shift() {
	for i := min(s.length, constants.SnakeCapacity-1); i > 0; i-- {
		s.segments[i] = s.segments[i-1]
	}
}

// Grow extends the snake by one segment, reporting false at capacity
func (s *Snake) Grow() bool {
	if s.length >= constants.SnakeCapacity {
		return false
	}
	s.length++
	return true
}

// BodyContains reports whether c matches any segment after the head
func (s *Snake) BodyContains(c core.Cell) bool {
	for i := 1; i < s.length; i++ {
		if s.segments[i] == c {
			return true
		}
	}
	return false
}

// Food is a pickup slot; primary food and hazards share the layout
type Food struct {
	Pos    core.Cell
	Active bool
}

// Barrier is the fixed digit obstacle active from BarrierLevel onward
type Barrier struct {
	Anchor core.Cell
	Active bool
}

// Footprint returns the collision rectangle of the glyph
func (b Barrier) Footprint() core.Area {
	return core.Area{
		X:      b.Anchor.X,
		Y:      b.Anchor.Y,
		Width:  constants.BarrierWidth,
		Height: constants.BarrierHeight,
	}
}

// KillZone returns the cells whose origin lies inside the footprint, as a pixel rectangle.
// A head on any of these cells collides, so this is the area a frontend must show.
func (b Barrier) KillZone(cellSize int) core.Area {
	f := b.Footprint()
	x0 := ceilTo(f.X, cellSize)
	y0 := ceilTo(f.Y, cellSize)
	return core.Area{
		X:      x0,
		Y:      y0,
		Width:  ceilTo(f.X+f.Width, cellSize) - x0,
		Height: ceilTo(f.Y+f.Height, cellSize) - y0,
	}
}

func ceilTo(v, step int) int {
	if r := v % step; r != 0 {
		if v < 0 {
			return v - r
		}
		return v + step - r
	}
	return v
}

// GameState is the single owned aggregate of entity and progression state.
// It is mutated only by the loop goroutine and needs no locking.
type GameState struct {
	Grid core.Grid

	// ===== ENTITIES =====

	Snake     Snake
	Direction core.Direction

	Food         Food
	Hazards      [constants.MaxHazards]Food
	HazardTarget int // Hazard slots in play, derived from level

	Barrier Barrier

	// ===== PROGRESSION =====

	Score       int // May go negative
	Level       int
	TickDelayMs int

	// ===== TIMERS =====

	Countdown int       // Seconds left on primary food, meaningful from TimedFoodLevel
	FoodTimer time.Time // Last spawn or countdown step

	Phase Phase
}

// NewGameState creates the start-of-process state: head centred, heading right, level 1
func NewGameState(grid core.Grid, tickDelayMs int) *GameState {
	head := grid.Center()
	return &GameState{
		Grid:        grid,
		Snake:       NewSnake(grid, head, core.DirRight),
		Direction:   core.DirRight,
		Level:       1,
		TickDelayMs: tickDelayMs,
		Countdown:   constants.FoodCountdownSeconds,
		Phase:       PhaseIdle,
	}
}

// BarrierBlocks reports whether a size x size block at c overlaps the active barrier.
// The barrier only counts from BarrierLevel onward.
func (gs *GameState) BarrierBlocks(c core.Cell) bool {
	if gs.Level < constants.BarrierLevel || !gs.Barrier.Active {
		return false
	}
	return gs.Barrier.Footprint().Overlaps(c, gs.Grid.CellSize)
}

// TickDelay returns the current pause between ticks
func (gs *GameState) TickDelay() time.Duration {
	return time.Duration(gs.TickDelayMs) * time.Millisecond
}
