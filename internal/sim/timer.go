package sim

// Timer is the countdown that stops playback when it expires. It is ticked
// from the frame loop, so sub-second precision comes for free and no
// cross-goroutine coordination is needed.
type Timer struct {
	duration  float64 // seconds, >= 1
	remaining float64 // seconds, >= 0, <= duration
	running   bool
}

// NewTimer creates an idle timer armed with the given duration (floored at
// one second).
func NewTimer(duration float64) *Timer {
	if duration < 1 {
		duration = 1
	}
	return &Timer{duration: duration, remaining: duration}
}

// Start arms the countdown. An expired timer re-arms from the full duration;
// a paused one resumes from where it stopped.
func (t *Timer) Start() {
	if t.running {
		return
	}
	if t.remaining <= 0 {
		t.remaining = t.duration
	}
	t.running = true
}

// Stop pauses the countdown, preserving the remaining time.
func (t *Timer) Stop() { t.running = false }

// Tick advances the countdown by dt seconds and reports whether the timer
// expired on this tick. Expiry fires exactly once: remaining pins at zero and
// the timer stops itself.
func (t *Timer) Tick(dt float64) bool {
	if !t.running {
		return false
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.remaining = 0
		t.running = false
		return true
	}
	return false
}

// SetDuration changes the countdown length and resets the remaining time to
// it. Permitted only while idle; it reports whether the change was applied.
func (t *Timer) SetDuration(d float64) bool {
	if t.running {
		return false
	}
	if d < 1 {
		d = 1
	}
	t.duration = d
	t.remaining = d
	return true
}

// Reset forces the timer idle with the full duration remaining, regardless of
// its current state. Calling it twice is a no-op the second time.
func (t *Timer) Reset() {
	t.running = false
	t.remaining = t.duration
}

// Remaining returns the seconds left on the countdown.
func (t *Timer) Remaining() float64 { return t.remaining }

// Duration returns the configured countdown length.
func (t *Timer) Duration() float64 { return t.duration }

// Running reports whether the countdown is active.
func (t *Timer) Running() bool { return t.running }
