// Package window provides the Ebiten windowed front end for Pizza Rush.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pizza-rush/internal/core"
	"github.com/vovakirdan/pizza-rush/internal/game"
	"github.com/vovakirdan/pizza-rush/internal/platform"
)

const (
	hudHeight = 24 // Status strip above the playfield, in logical pixels
	barWidth  = 120
	barHeight = 10
	glyphW    = 6 // Debug font glyph width
	scale     = 2 // Window pixels per logical pixel
)

var (
	colorHUD     = color.RGBA{0x18, 0x16, 0x20, 0xff}
	colorField   = color.RGBA{0x2b, 0x5d, 0x34, 0xff}
	colorPickup  = color.RGBA{0xff, 0x8c, 0x00, 0xff}
	colorPlayer  = color.RGBA{0x3c, 0xc8, 0xe6, 0xff}
	colorTurbo   = color.RGBA{0xff, 0xe0, 0x40, 0xff}
	colorBar     = color.RGBA{0xff, 0x5e, 0x00, 0xff}
	colorOutline = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	colorPanel   = color.RGBA{0x00, 0x00, 0x00, 0xb4}
)

// App adapts a Pizza Rush game to ebiten.Game.
type App struct {
	game   *game.Game
	clock  core.Clock
	logger *log.Logger
	keys   Keyboard
	snap   game.Snapshot
	width  int
	height int
}

// NewApp creates an App reading the given keyboard. A nil logger discards
// log output.
func NewApp(g *game.Game, clock core.Clock, kb Keyboard, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	field := g.Playfield()
	return &App{
		game:   g,
		clock:  clock,
		logger: logger,
		keys:   kb,
		snap:   g.Snapshot(clock.Now()),
		width:  field.W,
		height: field.H + hudHeight,
	}
}

// Update runs one simulation tick.
func (a *App) Update() error {
	now := a.clock.Now()
	result := a.game.Step(ReadInput(a.keys), now)
	platform.LogEvents(a.logger, result)
	a.snap = a.game.Snapshot(now)

	if result.Quit {
		return ebiten.Termination
	}
	return nil
}

// Snapshot returns the snapshot of the latest tick.
func (a *App) Snapshot() game.Snapshot {
	return a.snap
}

// Draw draws the latest snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorHUD)

	for _, e := range a.snap.Entities {
		r := e.Rect
		x, y := float32(r.X), float32(r.Y+hudHeight)
		w, h := float32(r.W), float32(r.H)
		switch e.Role {
		case game.RoleBackground:
			vector.DrawFilledRect(screen, x, y, w, h, colorField, false)
		case game.RolePickup:
			vector.DrawFilledRect(screen, x, y, w, h, colorPickup, false)
		case game.RolePlayer:
			c := colorPlayer
			if a.snap.Boost == game.BoostStatusActive {
				c = colorTurbo
			}
			vector.DrawFilledRect(screen, x, y, w, h, c, false)
		}
	}

	a.drawHUD(screen)

	if a.snap.Title != "" {
		a.drawGate(screen)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score: %d  Turbo: %s", a.snap.Score, a.snap.Boost), 4, 4)

	bx := float32(a.width - barWidth - 6)
	by := float32((hudHeight - barHeight) / 2)
	frac := float32(core.ClampF(a.snap.TimeRemaining, 0, 1))
	vector.DrawFilledRect(screen, bx, by, barWidth*frac, barHeight, colorBar, false)
	vector.StrokeRect(screen, bx, by, barWidth, barHeight, 1, colorOutline, false)
}

func (a *App) drawGate(screen *ebiten.Image) {
	panelW, panelH := 200, 56
	px := (a.width - panelW) / 2
	py := hudHeight + (a.height-hudHeight-panelH)/2

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), colorPanel, false)
	vector.StrokeRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), 1, colorOutline, false)

	a.printCentered(screen, a.snap.Title, py+12)
	a.printCentered(screen, a.snap.Subtitle, py+30)
}

func (a *App) printCentered(screen *ebiten.Image, text string, y int) {
	x := (a.width - len(text)*glyphW) / 2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

// Layout returns the logical screen size: the playfield plus the HUD strip.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// Run opens a window and runs the game until quit or the window is closed.
func Run(g *game.Game, rt core.RuntimeConfig, clock core.Clock, logger *log.Logger) error {
	app := NewApp(g, clock, ebitenKeyboard{}, logger)

	ebiten.SetWindowSize(app.width*scale, app.height*scale)
	ebiten.SetWindowTitle(g.Title())
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}

	app.logger.Info("window opened", "width", app.width, "height", app.height, "tps", ebiten.TPS())
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
