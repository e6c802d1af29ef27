package main

import (
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/iburimskiy/bounce-visualization/internal/config"
	"github.com/iburimskiy/bounce-visualization/internal/game"
	"github.com/iburimskiy/bounce-visualization/internal/sound"
)

func main() {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()
	settings := config.Load()

	slog.Info("starting bounce visualization",
		"speed", settings.Speed,
		"radius", settings.Radius,
		"duration", settings.Duration,
		"jitter", settings.JitterEnabled,
		"sound", settings.SoundEnabled)

	beeper := sound.NewBeeper()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Bounce Visualization - Space: Play/Pause, R: Reset, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(settings, beeper, rng)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("render loop stopped", "error", err)
		os.Exit(1)
	}
}
