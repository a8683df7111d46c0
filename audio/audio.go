// Package audio plays the buzzer cues through a real sound device
package audio

import (
	"fmt"
	"log"
	"strings"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Backend names a tone output
type Backend string

const (
	BackendBeep Backend = "beep"
	BackendOto  Backend = "oto"
	BackendNone Backend = "none"
)

// ParseBackend resolves a backend name, case-insensitively
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendBeep, BackendOto, BackendNone:
		return b, nil
	default:
		return "", fmt.Errorf("unknown audio backend %q", s)
	}
}

// Sink is a tone output that holds a device
type Sink interface {
	core.Tone
	Close()
}

// sampleRate is shared by every backend
const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// Open initializes the requested backend.
// On failure it returns a Silent sink together with the error, so callers can log and continue.
func Open(backend Backend, volume float64) (Sink, error) {
	volume = min(max(volume, 0), 1)

	var (
		sink Sink
		err  error
	)
	switch backend {
	case BackendBeep:
		sink, err = NewBuzzer(volume)
	case BackendOto:
		sink, err = NewOtoBuzzer(volume)
	case BackendNone:
		return Silent{}, nil
	default:
		err = fmt.Errorf("unknown audio backend %q", backend)
	}
	if err != nil {
		return Silent{}, fmt.Errorf("open %s audio: %w", backend, err)
	}
	log.Printf("audio: %s backend at volume %.2f", backend, volume)
	return sink, nil
}
