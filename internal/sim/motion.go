package sim

// Motion integrates the horizontal position of the bouncing object.
type Motion struct {
	position  float64
	direction float64 // +1 right, -1 left
}

// NewMotion places the object at the left wall, moving right.
func NewMotion(radius float64) *Motion {
	return &Motion{position: radius, direction: 1}
}

// Advance moves the object by speed*dt in the current direction and resolves
// wall contact: crossing a bound flips the direction and clamps the position
// back inside [radius, width-radius]. It reports whether the object bounced
// on this step.
func (m *Motion) Advance(dt, speed, radius, width float64) bool {
	low, high := radius, width-radius
	if high < low {
		// Surface narrower than the object: pin to the center and keep
		// the current direction instead of flip-thrashing every frame.
		m.position = width / 2
		return false
	}

	m.position += m.direction * speed * dt
	switch {
	case m.position > high:
		m.position = high
		m.direction = -1
		return true
	case m.position < low:
		m.position = low
		m.direction = 1
		return true
	}
	return false
}

// Clamp forces the position back into bounds after a radius or surface-size
// change, without signalling a bounce.
func (m *Motion) Clamp(radius, width float64) {
	low, high := radius, width-radius
	if high < low {
		m.position = width / 2
		return
	}
	if m.position < low {
		m.position = low
	}
	if m.position > high {
		m.position = high
	}
}

// Position returns the current horizontal offset.
func (m *Motion) Position() float64 { return m.position }

// Direction returns +1 or -1.
func (m *Motion) Direction() float64 { return m.direction }
