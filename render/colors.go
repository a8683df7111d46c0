package render

import "github.com/lixenwraith/vi-snake/core"

// Entity colors
var (
	RgbBackground  = core.RGBBlack
	RgbSnakeHead   = core.RGBWhite
	RgbSnakeBody   = core.RGBBlue
	RgbFood        = core.RGBGreen
	RgbHazard      = core.RGBRed
	RgbBarrier     = core.RGBWhite
	RgbBarrierZone = core.RGBWhite.Scale(0.3) // Cells under the glyph that end the game
	RgbText        = core.RGBWhite
)
