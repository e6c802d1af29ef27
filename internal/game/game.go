// Package game drives the render loop: per-frame timing, input handling,
// simulation stepping and drawing.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bounce-visualization/internal/config"
	"github.com/iburimskiy/bounce-visualization/internal/sim"
	"github.com/iburimskiy/bounce-visualization/internal/sound"
)

// Game owns one visualization session. Everything is touched only from
// ebiten's update goroutine; dialog goroutines hand their results back
// through the updates channel, drained at the top of each frame.
type Game struct {
	settings config.Settings
	session  *sim.Session
	beeper   *sound.Beeper

	width, height int
	lastTick      time.Time

	// applied between frames so input-handler writes are visible to the
	// next frame without locking
	updates    chan func(*Game)
	dialogOpen bool

	lastWidth  int
	lastRadius float64
}

// New builds a paused session from the startup settings.
func New(settings config.Settings, beeper *sound.Beeper, rng *rand.Rand) *Game {
	return &Game{
		settings:   settings,
		session:    sim.NewSession(settings.Radius, settings.Duration, rng),
		beeper:     beeper,
		width:      settings.WindowWidth,
		height:     settings.WindowHeight,
		updates:    make(chan func(*Game), 4),
		lastWidth:  settings.WindowWidth,
		lastRadius: settings.Radius,
	}
}

// Update runs once per display frame: compute the elapsed time, apply any
// pending dialog results, handle input, and step the simulation if playing.
// Drawing is unconditional and happens in Draw.
func (g *Game) Update() error {
	now := time.Now()
	var dt float64
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
	}
	g.lastTick = now

drain:
	for {
		select {
		case apply := <-g.updates:
			apply(g)
		default:
			break drain
		}
	}

	if err := g.handleInput(dt); err != nil {
		return err
	}

	// Resizes and radius changes clamp the position before the next draw.
	if g.width != g.lastWidth || g.settings.Radius != g.lastRadius {
		g.session.Resize(g.settings.Radius, float64(g.width))
		g.lastWidth, g.lastRadius = g.width, g.settings.Radius
	}

	bounced := g.session.Step(dt, g.settings.Speed, g.settings.Radius, float64(g.width), g.settings.JitterEnabled)
	if bounced && g.settings.SoundEnabled {
		g.beeper.Bounce()
	}

	return nil
}

func (g *Game) handleInput(dt float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePlayback()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		g.settings.JitterEnabled = !g.settings.JitterEnabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.settings.SoundEnabled = !g.settings.SoundEnabled
	}

	// Held arrow keys act like sliders.
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.settings.Speed = config.ClampSpeed(g.settings.Speed + config.SpeedRate*dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.settings.Speed = config.ClampSpeed(g.settings.Speed - config.SpeedRate*dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.settings.Radius = config.ClampRadius(g.settings.Radius + config.RadiusRate*dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.settings.Radius = config.ClampRadius(g.settings.Radius - config.RadiusRate*dt)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.openColorPicker(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.openColorPicker(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.openDurationEntry()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// openColorPicker shows the native color dialog on its own goroutine. The
// render loop keeps running; the result is applied on a later frame.
func (g *Game) openColorPicker(background bool) {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true

	initial := g.settings.ObjectColor
	title := "Object color"
	if background {
		initial = g.settings.BackgroundColor
		title = "Background color"
	}

	go func() {
		picked, err := zenity.SelectColor(zenity.Title(title), zenity.Color(initial))
		g.updates <- func(g *Game) {
			g.dialogOpen = false
			if err != nil {
				if !errors.Is(err, zenity.ErrCanceled) {
					slog.Warn("color picker failed", "error", err)
				}
				return
			}
			rgba := color.RGBAModel.Convert(picked).(color.RGBA)
			if background {
				g.settings.BackgroundColor = rgba
			} else {
				g.settings.ObjectColor = rgba
			}
		}
	}()
}

// openDurationEntry shows a numeric entry dialog for the timer duration.
// Values below one second are clamped; changes while the countdown runs are
// rejected, matching the timer contract.
func (g *Game) openDurationEntry() {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true

	current := strconv.FormatFloat(g.settings.Duration, 'f', -1, 64)
	go func() {
		entered, err := zenity.Entry("Timer duration in seconds",
			zenity.Title("Set timer"), zenity.EntryText(current))
		g.updates <- func(g *Game) {
			g.dialogOpen = false
			if err != nil {
				if !errors.Is(err, zenity.ErrCanceled) {
					slog.Warn("duration entry failed", "error", err)
				}
				return
			}
			d, perr := strconv.ParseFloat(strings.TrimSpace(entered), 64)
			if perr != nil {
				slog.Warn("ignoring invalid duration", "value", entered)
				return
			}
			d = config.ClampDuration(d)
			if !g.session.SetDuration(d) {
				slog.Warn("duration change rejected while timer is running")
				return
			}
			g.settings.Duration = d
		}
	}()
}

// Draw clears the surface to the background color and renders the object
// centered vertically at its current horizontal position, every frame,
// playing or not.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.settings.BackgroundColor)

	x := float32(g.session.Position())
	y := float32(g.height) / 2
	vector.DrawFilledCircle(screen, x, y, float32(g.settings.Radius), g.settings.ObjectColor, true)

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	status := "Paused - Space to play"
	if g.session.Playing() {
		status = "Playing - Space to pause"
	}
	remaining := time.Duration(g.session.Remaining() * float64(time.Second))

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s | timer %s", status, formatDuration(remaining)), 12, 12)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("speed %.0f px/s | radius %.0f px | jitter %s | sound %s",
		g.settings.Speed, g.settings.Radius, onOff(g.settings.JitterEnabled), onOff(g.settings.SoundEnabled)), 12, 28)
	ebitenutil.DebugPrintAt(screen, "Up/Down: speed  Left/Right: size  J: jitter  S: sound  C/B: colors  D: timer  R: reset  Esc/Q: quit", 12, 44)
}

// Layout tracks the resizable window; the drawable surface always matches
// the outside size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
