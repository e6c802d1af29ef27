// Package sound provides the collision feedback tone.
package sound

import (
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	toneFreq     = 880 // Hz, A5
	toneDuration = 60 * time.Millisecond
	toneGain     = -0.8 // amplitude scales by 1+toneGain
)

// Beeper plays a short tone on each wall bounce. If the speaker cannot be
// initialized the beeper runs in silent mode and Bounce becomes a no-op; a
// missing audio device never interrupts the render loop.
type Beeper struct {
	ready bool
}

// NewBeeper initializes the speaker once for the session.
func NewBeeper() *Beeper {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		slog.Warn("audio unavailable, running silent", "error", err)
		return &Beeper{}
	}
	return &Beeper{ready: true}
}

// Bounce emits the tone and returns immediately; the speaker mixes it on its
// own goroutine. Fire-and-forget, any failure is silently dropped.
func (b *Beeper) Bounce() {
	if b == nil || !b.ready {
		return
	}
	tone, err := generators.SinTone(sampleRate, toneFreq)
	if err != nil {
		return
	}
	speaker.Play(&effects.Gain{
		Streamer: beep.Take(sampleRate.N(toneDuration), tone),
		Gain:     toneGain,
	})
}
