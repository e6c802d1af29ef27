package sim

import "math/rand"

// Session owns all simulation state for one run of the visualization: the
// motion integrator, the jitter model, the countdown timer and the playback
// flag they share. It is stepped once per rendered frame.
type Session struct {
	motion  *Motion
	jitter  *Jitter
	timer   *Timer
	playing bool
}

// NewSession builds a paused session with the object resting at the left
// wall and the timer armed.
func NewSession(radius, duration float64, rng *rand.Rand) *Session {
	return &Session{
		motion: NewMotion(radius),
		jitter: NewJitter(rng),
		timer:  NewTimer(duration),
	}
}

// Step advances the simulation by dt seconds. It is a no-op while paused.
// While playing it runs the jitter model, integrates the position, ticks the
// countdown, and stops playback when the countdown expires. It reports
// whether the object bounced off a wall this frame.
func (s *Session) Step(dt, speed, radius, width float64, jitterOn bool) bool {
	if !s.playing {
		return false
	}

	mult := s.jitter.Step(dt, jitterOn)
	bounced := s.motion.Advance(dt, speed*mult, radius, width)

	if s.timer.Tick(dt) {
		s.playing = false
	}
	return bounced
}

// TogglePlayback flips the play state. The countdown runs only while
// playing; toggling after an expiry re-arms it from the full duration.
func (s *Session) TogglePlayback() {
	s.playing = !s.playing
	if s.playing {
		s.timer.Start()
	} else {
		s.timer.Stop()
	}
}

// Reset stops playback and restores the countdown to its full duration.
func (s *Session) Reset() {
	s.playing = false
	s.timer.Reset()
}

// Resize clamps the object back into the drawable area after the surface or
// the radius changed. Called between frames, before the next draw.
func (s *Session) Resize(radius, width float64) {
	s.motion.Clamp(radius, width)
}

// SetDuration forwards to the timer; it reports whether the change was
// applied (duration changes are rejected while the countdown runs).
func (s *Session) SetDuration(d float64) bool { return s.timer.SetDuration(d) }

// Playing reports whether the simulation is advancing.
func (s *Session) Playing() bool { return s.playing }

// Position returns the object's horizontal offset.
func (s *Session) Position() float64 { return s.motion.Position() }

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining() float64 { return s.timer.Remaining() }

// Multiplier returns the current jitter multiplier.
func (s *Session) Multiplier() float64 { return s.jitter.Multiplier() }
