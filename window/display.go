package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Display implements core.Display on a persistent render texture.
// Draw calls accumulate on the texture like on panel memory; Show presents it scaled.
type Display struct {
	target        rl.RenderTexture2D
	width, height int
	scale         int

	cursorX, cursorY int
	textSize         int
	textColor        rl.Color

	// Callback run after each presented frame, while input events are fresh
	afterShow func()
}

func newDisplay(width, height, scale int) *Display {
	d := &Display{
		target:    rl.LoadRenderTexture(int32(width), int32(height)),
		width:     width,
		height:    height,
		scale:     scale,
		textSize:  1,
		textColor: toColor(core.RGBWhite),
	}
	rl.BeginTextureMode(d.target)
	rl.ClearBackground(rl.Black)
	rl.EndTextureMode()
	return d
}

func toColor(c core.RGB) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// fontSize maps a panel text size to a raylib font height
func fontSize(textSize int) int32 {
	return int32(constants.GlyphHeight * textSize)
}

func (d *Display) FillRect(x, y, w, h int, color core.RGB) {
	rl.BeginTextureMode(d.target)
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), toColor(color))
	rl.EndTextureMode()
}

func (d *Display) SetCursor(x, y int) {
	d.cursorX, d.cursorY = x, y
}

func (d *Display) SetTextSize(n int) {
	d.textSize = max(n, 1)
}

func (d *Display) SetTextColor(color core.RGB) {
	d.textColor = toColor(color)
}

// Print draws text at the cursor and advances it by the rendered width
func (d *Display) Print(text string) {
	size := fontSize(d.textSize)
	rl.BeginTextureMode(d.target)
	rl.DrawText(text, int32(d.cursorX), int32(d.cursorY), size, d.textColor)
	rl.EndTextureMode()
	d.cursorX += int(rl.MeasureText(text, size))
}

func (d *Display) Width() int  { return d.width }
func (d *Display) Height() int { return d.height }

// Show presents the panel texture and processes pending window events
func (d *Display) Show() {
	w := float32(d.width)
	h := float32(d.height)
	s := float32(d.scale)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	// Render textures are stored bottom-up; a negative source height flips them
	rl.DrawTexturePro(d.target.Texture,
		rl.NewRectangle(0, 0, w, -h),
		rl.NewRectangle(0, 0, w*s, h*s),
		rl.NewVector2(0, 0), 0, rl.White)
	rl.EndDrawing()

	if d.afterShow != nil {
		d.afterShow()
	}
}

func (d *Display) unload() {
	rl.UnloadRenderTexture(d.target)
}
