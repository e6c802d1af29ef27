package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerCountsDownToExactlyZero(t *testing.T) {
	tm := NewTimer(30)
	tm.Start()

	expiries := 0
	prev := tm.Remaining()
	for i := 0; i < 30; i++ {
		if tm.Tick(1) {
			expiries++
		}
		assert.LessOrEqual(t, tm.Remaining(), prev, "remaining must be monotone non-increasing")
		prev = tm.Remaining()
	}

	assert.Equal(t, 0.0, tm.Remaining())
	assert.False(t, tm.Running())
	assert.Equal(t, 1, expiries, "expiry must fire exactly once")

	// Further ticks are no-ops.
	assert.False(t, tm.Tick(1))
	assert.Equal(t, 0.0, tm.Remaining())
}

func TestTimerSubSecondTicks(t *testing.T) {
	tm := NewTimer(2)
	tm.Start()

	expiries := 0
	for i := 0; i < 240; i++ { // 4 s at 60 fps
		if tm.Tick(1.0 / 60) {
			expiries++
		}
		assert.GreaterOrEqual(t, tm.Remaining(), 0.0)
	}
	assert.Equal(t, 1, expiries)
	assert.Equal(t, 0.0, tm.Remaining())
}

func TestTimerStopPreservesRemaining(t *testing.T) {
	tm := NewTimer(10)
	tm.Start()
	tm.Tick(4)

	tm.Stop()
	remaining := tm.Remaining()
	assert.False(t, tm.Running())

	// Idle ticks change nothing.
	assert.False(t, tm.Tick(100))
	assert.Equal(t, remaining, tm.Remaining())

	// Resuming continues from where it stopped.
	tm.Start()
	assert.Equal(t, remaining, tm.Remaining())
	assert.True(t, tm.Running())
}

func TestTimerSetDuration(t *testing.T) {
	tests := []struct {
		name          string
		running       bool
		set           float64
		wantApplied   bool
		wantRemaining float64
	}{
		{name: "idle applies and resets", running: false, set: 10, wantApplied: true, wantRemaining: 10},
		{name: "idle clamps below one", running: false, set: 0.2, wantApplied: true, wantRemaining: 1},
		{name: "running rejects", running: true, set: 10, wantApplied: false, wantRemaining: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTimer(30)
			if tt.running {
				tm.Start()
			}

			assert.Equal(t, tt.wantApplied, tm.SetDuration(tt.set))
			assert.Equal(t, tt.wantRemaining, tm.Remaining())
		})
	}
}

func TestTimerResetIsIdempotent(t *testing.T) {
	tm := NewTimer(20)
	tm.Start()
	tm.Tick(7)

	tm.Reset()
	assert.False(t, tm.Running())
	assert.Equal(t, 20.0, tm.Remaining())

	tm.Reset()
	assert.False(t, tm.Running())
	assert.Equal(t, 20.0, tm.Remaining())
}

func TestTimerStartAfterExpiryRearms(t *testing.T) {
	tm := NewTimer(5)
	tm.Start()
	assert.True(t, tm.Tick(5))
	assert.Equal(t, 0.0, tm.Remaining())

	tm.Start()
	assert.True(t, tm.Running())
	assert.Equal(t, 5.0, tm.Remaining())
}

func TestTimerConstructorFloorsDuration(t *testing.T) {
	tm := NewTimer(0)
	assert.Equal(t, 1.0, tm.Duration())
	assert.Equal(t, 1.0, tm.Remaining())
}
