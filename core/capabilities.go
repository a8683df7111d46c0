package core

import "time"

// Analog joystick channels
const (
	AxisX = 0
	AxisY = 1
)

// AxisMax is the full-scale reading of a 10-bit analog channel
const AxisMax = 1023

// AxisCenter is the resting reading of a centred stick
const AxisCenter = 512

// Display is the primitive drawing surface of a framebuffer-less panel.
// Draw calls take effect immediately on the panel; buffered backends publish them on Show.
type Display interface {
	FillRect(x, y, w, h int, color RGB)
	SetCursor(x, y int)
	SetTextSize(n int)
	SetTextColor(color RGB)
	Print(text string)
	Width() int
	Height() int
	Show()
}

// Input exposes raw joystick readings
type Input interface {
	// ReadAxis returns the channel reading in [0, AxisMax]
	ReadAxis(channel int) int
	// ReadButton reports whether the stick button is pressed
	ReadButton() bool
}

// QuitSignal is implemented by inputs that can request process exit
type QuitSignal interface {
	QuitRequested() bool
}

// Tone drives the buzzer. PlayTone returns immediately; the tone plays in the background.
type Tone interface {
	PlayTone(frequencyHz, durationMs int)
}

// Clock supplies monotonic time and the blocking pause between ticks
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}
