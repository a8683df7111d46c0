package constants

import "time"

// Grid Geometry Constants
const (
	// CellSize is the edge length of one grid cell in display pixels
	CellSize = 10

	// DefaultDisplayWidth and DefaultDisplayHeight match the rotated 320x240 panel
	DefaultDisplayWidth  = 320
	DefaultDisplayHeight = 240
)

// Snake Constants
const (
	// SnakeCapacity is the maximum number of segments the snake can hold
	SnakeCapacity = 100

	// SnakeInitialLength is the segment count at game start
	SnakeInitialLength = 2
)

// Food and Hazard Constants
const (
	// MaxHazards is the number of hazard slots
	MaxHazards = 5

	// FoodCountdownSeconds is the primary food lifetime once timed food is enabled
	FoodCountdownSeconds = 5

	// FoodCountdownStep is the real-time interval between countdown decrements
	FoodCountdownStep = time.Second
)

// Barrier Constants
const (
	// BarrierWidth and BarrierHeight are the collision footprint of the barrier glyph in pixels
	BarrierWidth  = 20
	BarrierHeight = 24

	// BarrierGlyph is the digit drawn as the barrier
	BarrierGlyph = "7"

	// BarrierEscapeX and BarrierEscapeY are where the head is moved when the barrier spawns
	// while the head sits in the central region
	BarrierEscapeX = 10
	BarrierEscapeY = 10
)

// Level Thresholds
const (
	// BarrierLevel is the first level with an active barrier
	BarrierLevel = 2

	// TimedFoodLevel is the first level where primary food expires
	TimedFoodLevel = 3

	// HazardLevel is the first level with hazard food
	HazardLevel = 4

	// SpeedUpLevel is the level above which the tick delay shrinks
	SpeedUpLevel = 4
)

// Pacing Constants
const (
	// InitialTickDelayMs is the starting pause between ticks
	InitialTickDelayMs = 400

	// SpeedUpNumerator / SpeedUpDenominator is the per-tick delay factor above SpeedUpLevel
	SpeedUpNumerator   = 8
	SpeedUpDenominator = 10

	// IdlePollInterval is the pause between button polls before the game starts
	// and between idle iterations after game over
	IdlePollInterval = 20 * time.Millisecond
)

// Spawner Constants
const (
	// DefaultMaxSpawnAttempts bounds the retry-until-valid placement loop
	DefaultMaxSpawnAttempts = 1000
)
