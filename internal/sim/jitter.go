// Package sim holds the per-frame simulation: jitter model, motion
// integrator, countdown timer and the session that owns them. It has no
// rendering or audio dependencies so everything here is unit-testable.
package sim

import "math/rand"

// Jitter model parameters. The multiplier relaxes toward a randomized target
// with a time constant of about one second; targets and redraw intervals are
// drawn uniformly from the ranges below.
const (
	jitterRate = 1.0 // relaxation rate, 1/s

	jitterMinInterval = 1.0 // seconds
	jitterMaxInterval = 2.0

	jitterMinTarget = 0.5
	jitterMaxTarget = 1.5
)

// Jitter produces a smoothed, time-varying multiplier applied to the nominal
// speed to emulate inconsistent motion.
type Jitter struct {
	rng        *rand.Rand
	multiplier float64
	target     float64
	phase      float64 // seconds since the last target draw
	interval   float64 // seconds until the next target draw
}

// NewJitter creates a neutral jitter model. The random source is injected so
// tests can seed it.
func NewJitter(rng *rand.Rand) *Jitter {
	return &Jitter{rng: rng, multiplier: 1, target: 1}
}

// Step advances the model by dt seconds and returns the current multiplier.
// While disabled the multiplier is exactly 1 and all internal state resets to
// neutral, so re-enabling starts a fresh cycle with an immediate target draw.
func (j *Jitter) Step(dt float64, enabled bool) float64 {
	if !enabled {
		j.multiplier, j.target = 1, 1
		j.phase, j.interval = 0, 0
		return 1
	}

	j.phase += dt
	if j.phase >= j.interval {
		j.phase = 0
		j.interval = jitterMinInterval + j.rng.Float64()*(jitterMaxInterval-jitterMinInterval)
		j.target = jitterMinTarget + j.rng.Float64()*(jitterMaxTarget-jitterMinTarget)
	}

	// Exponential relaxation. A very large dt can overshoot the target;
	// convergence resumes on the next tick, so no clamp is needed.
	j.multiplier += (j.target - j.multiplier) * dt * jitterRate
	return j.multiplier
}

// Multiplier returns the value produced by the last Step.
func (j *Jitter) Multiplier() float64 { return j.multiplier }
