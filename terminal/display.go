package terminal

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// Pixels covered by one character cell
const (
	ColumnPixels = 5
	RowPixels    = 10
)

// Display implements core.Display on a tcell screen
type Display struct {
	screen     tcell.Screen
	cols, rows int

	// Background color of every cell, as last filled
	bg []core.RGB

	cursorX, cursorY int
	textSize         int
	textColor        core.RGB
}

// NewDisplay creates a display over screen, limited to maxWidth x maxHeight pixels
// (<= 0 means the full screen)
func NewDisplay(screen tcell.Screen, maxWidth, maxHeight int) *Display {
	cols, rows := screen.Size()
	if maxWidth > 0 {
		cols = min(cols, maxWidth/ColumnPixels)
	}
	if maxHeight > 0 {
		rows = min(rows, maxHeight/RowPixels)
	}
	return &Display{
		screen:    screen,
		cols:      cols,
		rows:      rows,
		bg:        make([]core.RGB, cols*rows),
		textSize:  1,
		textColor: core.RGBWhite,
	}
}

func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FillRect paints every character cell the rectangle touches
func (d *Display) FillRect(x, y, w, h int, color core.RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	c0 := max(x/ColumnPixels, 0)
	r0 := max(y/RowPixels, 0)
	c1 := min((x+w+ColumnPixels-1)/ColumnPixels, d.cols)
	r1 := min((y+h+RowPixels-1)/RowPixels, d.rows)

	style := tcell.StyleDefault.Background(toColor(color)).Foreground(toColor(color))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			d.bg[row*d.cols+col] = color
			d.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (d *Display) SetCursor(x, y int) {
	d.cursorX, d.cursorY = x, y
}

// SetTextSize is recorded for cursor advance only; the terminal font has one size
func (d *Display) SetTextSize(n int) {
	d.textSize = max(n, 1)
}

func (d *Display) SetTextColor(color core.RGB) {
	d.textColor = color
}

// Print writes text at the cursor, one column per rune, and advances the cursor
func (d *Display) Print(text string) {
	col := d.cursorX / ColumnPixels
	row := d.cursorY / RowPixels
	if row >= 0 && row < d.rows {
		for _, r := range text {
			if col >= 0 && col < d.cols {
				style := tcell.StyleDefault.
					Foreground(toColor(d.textColor)).
					Background(toColor(d.bg[row*d.cols+col]))
				d.screen.SetContent(col, row, r, nil, style)
			}
			col++
		}
	}
	d.cursorX += utf8.RuneCountInString(text) * ColumnPixels
}

// Width returns the drawable width in pixels
func (d *Display) Width() int {
	return d.cols * ColumnPixels
}

// Height returns the drawable height in pixels
func (d *Display) Height() int {
	return d.rows * RowPixels
}

func (d *Display) Show() {
	d.screen.Show()
}

// Background returns the fill color of the character cell at (col, row)
func (d *Display) Background(col, row int) core.RGB {
	if col < 0 || row < 0 || col >= d.cols || row >= d.rows {
		return core.RGBBlack
	}
	return d.bg[row*d.cols+col]
}

// Cursor returns the text cursor in pixels
func (d *Display) Cursor() (x, y int) {
	return d.cursorX, d.cursorY
}
