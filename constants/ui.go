package constants

// Label Layout (display pixels)
const (
	LabelTextSize = 2

	ScoreLabelX = 0
	ScoreLabelY = 0
	LevelLabelX = 0
	LevelLabelY = 20
	TimerLabelX = 180
	TimerLabelY = 0

	// LabelClearWidth and LabelClearHeight are the score and level erase regions
	LabelClearWidth  = 170
	LabelClearHeight = 20

	// TimerClearWidth is the countdown erase region width
	TimerClearWidth = 120

	// Start screen label positions
	StartLevelLabelX = 100
	StartPromptX     = 60
	StartPromptY     = 100

	// StartPromptClear* is the region erased when the game starts
	StartPromptClearX = 50
	StartPromptClearY = 95
	StartPromptClearW = 270
	StartPromptClearH = 30
)

// Game Over Screen
const (
	GameOverTextSize = 3
	GameOverX        = 60
	GameOverY        = 100
	FinalScoreX      = 40
	FinalScoreY      = 150
)

// Barrier rendering
const (
	// BarrierTextSize renders the glyph at 18x24 pixels, inside the collision footprint
	BarrierTextSize = 3
)

// Glyph metrics of the classic 5x7 font in a 6x8 box, per text size unit
const (
	GlyphWidth  = 6
	GlyphHeight = 8
)
