package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// Bounce Blip
const (
	BlipFrequency = 880.0
	BlipDuration  = 50 * time.Millisecond

	// SpeakerBufferDuration determines playback latency
	SpeakerBufferDuration = 100 * time.Millisecond
)
