package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BOUNCE_SPEED", "BOUNCE_RADIUS", "BOUNCE_DURATION",
		"BOUNCE_JITTER", "BOUNCE_SOUND",
		"BOUNCE_COLOR", "BOUNCE_BACKGROUND",
		"BOUNCE_WINDOW_WIDTH", "BOUNCE_WINDOW_HEIGHT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s := Load()
	assert.Equal(t, Default(), s)
	assert.Equal(t, DefaultSpeed, s.Speed)
	assert.True(t, s.SoundEnabled)
	assert.False(t, s.JitterEnabled)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOUNCE_SPEED", "750")
	t.Setenv("BOUNCE_RADIUS", "40")
	t.Setenv("BOUNCE_DURATION", "12.5")
	t.Setenv("BOUNCE_JITTER", "true")
	t.Setenv("BOUNCE_SOUND", "false")
	t.Setenv("BOUNCE_COLOR", "#ff0000")

	s := Load()
	assert.Equal(t, 750.0, s.Speed)
	assert.Equal(t, 40.0, s.Radius)
	assert.Equal(t, 12.5, s.Duration)
	assert.True(t, s.JitterEnabled)
	assert.False(t, s.SoundEnabled)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, s.ObjectColor)
}

func TestLoadClampsOutOfRange(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOUNCE_SPEED", "99999")
	t.Setenv("BOUNCE_RADIUS", "1")
	t.Setenv("BOUNCE_DURATION", "0")

	s := Load()
	assert.Equal(t, MaxSpeed, s.Speed)
	assert.Equal(t, MinRadius, s.Radius)
	assert.Equal(t, MinDuration, s.Duration)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOUNCE_SPEED", "fast")
	t.Setenv("BOUNCE_JITTER", "maybe")
	t.Setenv("BOUNCE_COLOR", "reddish")
	t.Setenv("BOUNCE_WINDOW_WIDTH", "10") // below the floor

	s := Load()
	assert.Equal(t, Default(), s)
}

func TestClampHelpers(t *testing.T) {
	assert.Equal(t, MinSpeed, ClampSpeed(0))
	assert.Equal(t, MaxSpeed, ClampSpeed(5000))
	assert.Equal(t, 300.0, ClampSpeed(300))

	assert.Equal(t, MinRadius, ClampRadius(-3))
	assert.Equal(t, MaxRadius, ClampRadius(1000))

	assert.Equal(t, MinDuration, ClampDuration(0.1))
	assert.Equal(t, 90.0, ClampDuration(90))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{name: "with hash", in: "#3b82f6", want: color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}},
		{name: "without hash", in: "112233", want: color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}},
		{name: "uppercase", in: "#FFA500", want: color.RGBA{R: 0xff, G: 0xa5, A: 0xff}},
		{name: "too short", in: "#fff", wantErr: true},
		{name: "not hex", in: "zzzzzz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
