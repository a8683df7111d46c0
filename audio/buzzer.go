package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
)

// Buzzer plays tones on the beep speaker.
// Like a piezo driven by a single timer pin, a new tone cuts off the one still playing.
type Buzzer struct {
	mu     sync.Mutex
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// NewBuzzer initializes the speaker and starts the mixer
func NewBuzzer(volume float64) (*Buzzer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferMs*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	b := &Buzzer{
		volume: volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(b.mixer)
	return b, nil
}

// PlayTone replaces the current tone and returns immediately
func (b *Buzzer) PlayTone(frequencyHz, durationMs int) {
	if frequencyHz <= 0 || durationMs <= 0 {
		return
	}
	tone := NewTone(frequencyHz, durationMs, b.volume, sampleRate)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	speaker.Lock()
	b.mixer.Clear()
	b.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops playback and releases the device
func (b *Buzzer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	speaker.Clear()
	speaker.Close()
}
