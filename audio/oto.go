package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/oto/v2"

	"github.com/lixenwraith/vi-snake/core"
)

const (
	otoChannels = 2
	// Bytes per stereo frame of float32 samples
	otoFrameBytes = otoChannels * 4
)

// OtoBuzzer plays tones through an oto context.
// Tones are rendered to PCM up front and fed to a fresh player; a new tone stops the previous one.
// Each player is closed only by the goroutine watching it.
type OtoBuzzer struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu      sync.Mutex
	current oto.Player
	closed  bool
}

// NewOtoBuzzer creates the oto context; the device becomes usable once ready closes
func NewOtoBuzzer(volume float64) (*OtoBuzzer, error) {
	ctx, ready, err := oto.NewContext(int(sampleRate), otoChannels, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("create oto context: %w", err)
	}
	return &OtoBuzzer{ctx: ctx, ready: ready, volume: volume}, nil
}

// PlayTone starts a tone and returns immediately; tones requested before the device is ready are dropped
func (o *OtoBuzzer) PlayTone(frequencyHz, durationMs int) {
	if frequencyHz <= 0 || durationMs <= 0 {
		return
	}
	select {
	case <-o.ready:
	default:
		return
	}

	pcm := RenderPCM(NewTone(frequencyHz, durationMs, 1, sampleRate))
	player := o.ctx.NewPlayer(bytes.NewReader(pcm))
	player.SetVolume(o.volume)

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		player.Close()
		return
	}
	prev := o.current
	o.current = player
	o.mu.Unlock()

	if prev != nil {
		// Its watcher sees it stop and closes it
		prev.Pause()
	}
	player.Play()

	core.Go(func() {
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		o.mu.Lock()
		if o.current == player {
			o.current = nil
		}
		o.mu.Unlock()
		player.Close()
	})
}

// Close stops the current tone; the oto context lives for the rest of the process
func (o *OtoBuzzer) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	if o.current != nil {
		o.current.Pause()
	}
}

// RenderPCM drains s into interleaved float32 little-endian stereo frames
func RenderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, otoFrameBytes)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(frame[0:], math.Float32bits(float32(buf[i][0])))
			binary.LittleEndian.PutUint32(frame[4:], math.Float32bits(float32(buf[i][1])))
			out = append(out, frame...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}
