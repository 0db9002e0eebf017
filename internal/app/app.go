//go:build ebiten

package app

import (
	"image/color"
	"time"

	"cleangrid/internal/core"
	"cleangrid/internal/render"
	"cleangrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the pixel width of the side panel.
const HUDWidth = 220

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface. The simulation
// ticks at its own rate via a FixedStep pacer, independent of the frame rate.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, tps int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, HUDWidth),
		pacer:   core.NewFixedStep(tps),
		palette: []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		scale:   scale,
		seed:    seed,
	}
	if provider, ok := sim.(paletteProvider); ok {
		g.palette = provider.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update()

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	} else if !g.paused && g.pacer.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size, including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
