//go:build ebiten

package ui

import (
	"image/color"

	"cleangrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type agentPositionsProvider interface {
	AgentPositions() [][2]int
}

// Overlay draws optional visuals on top of the base simulation view: cell
// grid lines and markers around occupied cells.
type Overlay struct {
	sim   core.Sim
	scale int

	showGrid   bool
	showAgents bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showAgents: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.showAgents = !o.showAgents
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showGrid {
		o.drawGridLines(screen, size, scale)
	}
	if o.showAgents {
		if provider, ok := o.sim.(agentPositionsProvider); ok {
			o.drawAgentMarkers(screen, provider.AgentPositions(), scale)
		}
	}
}

func (o *Overlay) drawGridLines(screen *ebiten.Image, size core.Size, scale int) {
	line := color.RGBA{R: 40, G: 40, B: 44, A: 90}
	w := float64(size.W * scale)
	h := float64(size.H * scale)
	for x := 1; x < size.W; x++ {
		o.drawRect(screen, float64(x*scale), 0, 1, h, line)
	}
	for y := 1; y < size.H; y++ {
		o.drawRect(screen, 0, float64(y*scale), w, 1, line)
	}
}

func (o *Overlay) drawAgentMarkers(screen *ebiten.Image, positions [][2]int, scale int) {
	marker := color.RGBA{R: 255, G: 214, B: 64, A: 200}
	s := float64(scale)
	for _, pos := range positions {
		x := float64(pos[0]) * s
		y := float64(pos[1]) * s
		o.drawRect(screen, x, y, s, 1, marker)
		o.drawRect(screen, x, y+s-1, s, 1, marker)
		o.drawRect(screen, x, y, 1, s, marker)
		o.drawRect(screen, x+s-1, y, 1, s, marker)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
