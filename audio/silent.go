package audio

// Silent discards every tone
type Silent struct{}

func (Silent) PlayTone(frequencyHz, durationMs int) {}

func (Silent) Close() {}
