package core

// RGB stores explicit 8-bit color channels, decoupled from any display backend
type RGB struct {
	R, G, B uint8
}

// Palette of the 16-bit TFT panel colors used by the game
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
	RGBBlue  = RGB{0, 0, 255}
	RGBGreen = RGB{0, 255, 0}
	RGBRed   = RGB{255, 0, 0}
)

// Hex packs the color as 0xRRGGBB
func (c RGB) Hex() int32 {
	return int32(c.R)<<16 | int32(c.G)<<8 | int32(c.B)
}

// Scale multiplies each channel by factor (for dimmed variants)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
