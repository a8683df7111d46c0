package constants

// Buzzer cues (frequency in Hz, duration in milliseconds)
const (
	ToneEatHz = 1000
	ToneEatMs = 500

	ToneHazardHz = 500
	ToneHazardMs = 1000

	ToneGameOverHz = 100
	ToneGameOverMs = 2000
)

// Audio Engine Constants
const (
	// AudioSampleRate is the output sample rate for all tone backends
	AudioSampleRate = 44100

	// AudioBufferMs is the speaker buffer length
	AudioBufferMs = 100

	// ToneAttackMs and ToneReleaseMs shape the buzzer square wave to avoid clicks
	ToneAttackMs  = 5
	ToneReleaseMs = 20

	// DefaultVolume is the master volume in [0, 1]
	DefaultVolume = 0.3
)
