package core

import "sync"

// Text records one Print call together with the cursor and style in effect
type Text struct {
	X, Y  int
	Size  int
	Color RGB
	Value string
}

// RecordingDisplay is an in-memory Display for tests.
// Rectangles land in a pixel framebuffer; text is recorded rather than rasterized.
type RecordingDisplay struct {
	width, height int
	pixels        []RGB

	cursorX, cursorY int
	textSize         int
	textColor        RGB

	Texts []Text
	Fills int
	Shows int
}

// NewRecordingDisplay creates a black framebuffer of the given extents
func NewRecordingDisplay(width, height int) *RecordingDisplay {
	return &RecordingDisplay{
		width:     width,
		height:    height,
		pixels:    make([]RGB, width*height),
		textSize:  1,
		textColor: RGBWhite,
	}
}

func (d *RecordingDisplay) FillRect(x, y, w, h int, color RGB) {
	d.Fills++
	for py := max(y, 0); py < min(y+h, d.height); py++ {
		for px := max(x, 0); px < min(x+w, d.width); px++ {
			d.pixels[py*d.width+px] = color
		}
	}
}

func (d *RecordingDisplay) SetCursor(x, y int) {
	d.cursorX, d.cursorY = x, y
}

func (d *RecordingDisplay) SetTextSize(n int) {
	d.textSize = n
}

func (d *RecordingDisplay) SetTextColor(color RGB) {
	d.textColor = color
}

func (d *RecordingDisplay) Print(text string) {
	d.Texts = append(d.Texts, Text{
		X:     d.cursorX,
		Y:     d.cursorY,
		Size:  d.textSize,
		Color: d.textColor,
		Value: text,
	})
}

func (d *RecordingDisplay) Width() int  { return d.width }
func (d *RecordingDisplay) Height() int { return d.height }
func (d *RecordingDisplay) Show()       { d.Shows++ }

// At returns the framebuffer color at pixel (x, y)
func (d *RecordingDisplay) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return RGBBlack
	}
	return d.pixels[y*d.width+x]
}

// TextsContaining returns recorded prints whose value equals s
func (d *RecordingDisplay) TextsContaining(s string) []Text {
	var out []Text
	for _, t := range d.Texts {
		if t.Value == s {
			out = append(out, t)
		}
	}
	return out
}

// ResetTexts discards recorded prints
func (d *RecordingDisplay) ResetTexts() {
	d.Texts = d.Texts[:0]
}

// ScriptedInput is an Input whose readings are set directly by tests
type ScriptedInput struct {
	mu      sync.Mutex
	axes    [2]int
	presses int
	quit    bool
}

// NewScriptedInput creates an input with a centred stick and no pending press
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{axes: [2]int{AxisCenter, AxisCenter}}
}

// SetAxes sets both channel readings
func (s *ScriptedInput) SetAxes(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.axes = [2]int{x, y}
}

// Press queues one button press, consumed by the next ReadButton
func (s *ScriptedInput) Press() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presses++
}

// RequestQuit makes QuitRequested report true
func (s *ScriptedInput) RequestQuit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quit = true
}

func (s *ScriptedInput) ReadAxis(channel int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if channel < 0 || channel >= len(s.axes) {
		return AxisCenter
	}
	return s.axes[channel]
}

func (s *ScriptedInput) ReadButton() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.presses == 0 {
		return false
	}
	s.presses--
	return true
}

func (s *ScriptedInput) QuitRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quit
}

// PlayedTone is one recorded buzzer request
type PlayedTone struct {
	FrequencyHz int
	DurationMs  int
}

// RecordingTone records every PlayTone request
type RecordingTone struct {
	mu    sync.Mutex
	tones []PlayedTone
}

func (r *RecordingTone) PlayTone(frequencyHz, durationMs int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = append(r.tones, PlayedTone{FrequencyHz: frequencyHz, DurationMs: durationMs})
}

// Tones returns a copy of the recorded requests
func (r *RecordingTone) Tones() []PlayedTone {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]PlayedTone(nil), r.tones...)
}
