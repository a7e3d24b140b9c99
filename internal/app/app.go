//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"d1ca/internal/core"
	"d1ca/internal/render"
	"d1ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 220

type directionChanger interface {
	ChangeDirection()
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	log     *slog.Logger

	onColor  color.Color
	offColor color.Color

	view     int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The lattice is shown in
// a square view of size.W*scale pixels regardless of later resizes.
func New(sim core.Sim, scale int, seed int64, log *slog.Logger) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, HUDWidth),
		log:      log,
		onColor:  color.RGBA{R: 235, G: 235, B: 220, A: 255},
		offColor: color.RGBA{R: 12, G: 12, B: 18, A: 255},
		view:     size.W * scale,
		seed:     seed,
	}
}

// WindowSize returns the window dimensions including the HUD.
func (g *Game) WindowSize() (int, int) { return g.view + HUDWidth, g.view }

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.log.Info("reset", "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if dc, ok := g.sim.(directionChanger); ok {
			dc.ChangeDirection()
			g.log.Debug("direction changed")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update(g.view)

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	if size.W <= 0 {
		return
	}
	g.painter.Resize(size.W, size.H)
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, float64(g.view)/float64(size.W))
	g.hud.Draw(screen, g.view, g.view)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
