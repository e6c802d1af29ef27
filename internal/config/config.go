// Package config centralizes all tunable parameters of the visualization.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
)

// Window defaults. The window itself stays resizable at runtime.
const (
	WindowWidth  = 800
	WindowHeight = 400
)

// Bounds for the user-adjustable values. Inputs outside these ranges are
// clamped at the boundary, never rejected with an error.
const (
	MinSpeed = 10.0
	MaxSpeed = 2000.0

	MinRadius = 5.0
	MaxRadius = 200.0

	MinDuration = 1.0
)

// Defaults used when the environment overrides nothing.
const (
	DefaultSpeed    = 300.0
	DefaultRadius   = 25.0
	DefaultDuration = 30.0
)

// Adjustment rates for held arrow keys, units per second.
const (
	SpeedRate  = 400.0
	RadiusRate = 40.0
)

var (
	DefaultObjectColor     = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	DefaultBackgroundColor = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
)

// Settings holds the startup configuration of one session. All fields remain
// user-adjustable afterwards through the input surface.
type Settings struct {
	Speed    float64 // nominal speed, px/s
	Radius   float64 // object radius, px
	Duration float64 // timer duration, seconds

	JitterEnabled bool
	SoundEnabled  bool

	ObjectColor     color.RGBA
	BackgroundColor color.RGBA

	WindowWidth  int
	WindowHeight int
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Speed:           DefaultSpeed,
		Radius:          DefaultRadius,
		Duration:        DefaultDuration,
		SoundEnabled:    true,
		ObjectColor:     DefaultObjectColor,
		BackgroundColor: DefaultBackgroundColor,
		WindowWidth:     WindowWidth,
		WindowHeight:    WindowHeight,
	}
}

// Load builds Settings from BOUNCE_* environment variables. Out-of-range
// values are clamped, unparseable ones ignored.
func Load() Settings {
	s := Default()

	if v := os.Getenv("BOUNCE_SPEED"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.Speed = ClampSpeed(f)
		}
	}
	if v := os.Getenv("BOUNCE_RADIUS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.Radius = ClampRadius(f)
		}
	}
	if v := os.Getenv("BOUNCE_DURATION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.Duration = ClampDuration(f)
		}
	}
	if v := os.Getenv("BOUNCE_JITTER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.JitterEnabled = b
		}
	}
	if v := os.Getenv("BOUNCE_SOUND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.SoundEnabled = b
		}
	}
	if v := os.Getenv("BOUNCE_COLOR"); v != "" {
		if c, err := ParseHexColor(v); err == nil {
			s.ObjectColor = c
		}
	}
	if v := os.Getenv("BOUNCE_BACKGROUND"); v != "" {
		if c, err := ParseHexColor(v); err == nil {
			s.BackgroundColor = c
		}
	}
	if v := os.Getenv("BOUNCE_WINDOW_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 100 {
			s.WindowWidth = n
		}
	}
	if v := os.Getenv("BOUNCE_WINDOW_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 100 {
			s.WindowHeight = n
		}
	}

	return s
}

// ClampSpeed limits a nominal speed to the slider range.
func ClampSpeed(v float64) float64 { return clamp(v, MinSpeed, MaxSpeed) }

// ClampRadius limits an object radius to the slider range.
func ClampRadius(v float64) float64 { return clamp(v, MinRadius, MaxRadius) }

// ClampDuration floors the timer length at one second.
func ClampDuration(v float64) float64 {
	if v < MinDuration {
		return MinDuration
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseHexColor parses an rrggbb color, with or without a leading '#'.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}
