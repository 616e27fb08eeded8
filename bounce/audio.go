package bounce

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/termgrid/parameter"
)

const blipRate = beep.SampleRate(parameter.AudioSampleRate)

// Blip plays a short sine tone whenever the ball bounces.
type Blip struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       atomic.Bool
	initialized bool
}

// NewBlip creates the bounce sound effect
func NewBlip() *Blip {
	return &Blip{mixer: &beep.Mixer{}}
}

// Initialize sets up the audio system. Failure leaves the blip
// permanently silent; callers treat it as non-fatal.
func (b *Blip) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	err := speaker.Init(blipRate, blipRate.N(parameter.SpeakerBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Cleanup silences and shuts down the audio system
func (b *Blip) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	b.mixer.Clear()
	b.initialized = false
}

// Play queues one blip tone
func (b *Blip) Play() {
	if b.muted.Load() {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	speaker.Lock()
	b.mixer.Add(newSineTone(parameter.BlipFrequency, blipRate.N(parameter.BlipDuration)))
	speaker.Unlock()
}

// ToggleMute flips the mute state and reports the new value
func (b *Blip) ToggleMute() bool {
	muted := !b.muted.Load()
	b.muted.Store(muted)
	return muted
}

// Muted reports whether the blip is muted
func (b *Blip) Muted() bool {
	return b.muted.Load()
}

// sineTone is a fixed-length sine wave streamer
type sineTone struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func newSineTone(freq float64, samples int) beep.Streamer {
	return &sineTone{freq: freq, duration: samples}
}

func (s *sineTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(blipRate)
		s.phase = s.phase - math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sineTone) Err() error { return nil }
