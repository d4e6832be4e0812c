// Package audio plays the collision cue. The speaker mixes on its own
// goroutine, so triggering a cue never blocks the simulation tick.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cue owns the speaker and plays a short blip on demand.
type Cue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCue creates an uninitialized cue player.
func NewCue() *Cue {
	return &Cue{mixer: &beep.Mixer{}}
}

// Initialize sets up the audio device. Safe to call more than once.
// A failure (no audio device, headless host) leaves the cue silent;
// callers may ignore the error and play on.
func (c *Cue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences the mixer. The speaker itself has no close operation.
func (c *Cue) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	c.mixer.Clear()
	c.initialized = false
}

// Blip plays one collision cue. No-op until Initialize succeeds.
func (c *Cue) Blip() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Add(newBlipGenerator(sampleRate))
	speaker.Unlock()
}

// blipGenerator produces a short decaying sine ping and then drains.
type blipGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

func newBlipGenerator(sr beep.SampleRate) *blipGenerator {
	return &blipGenerator{
		sr:      sr,
		samples: sr.N(time.Millisecond * 60),
	}
}

func (g *blipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}

	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		// 880 Hz ping with a fast exponential decay
		envelope := math.Exp(-t * 60)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*880*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blipGenerator) Err() error {
	return nil
}
