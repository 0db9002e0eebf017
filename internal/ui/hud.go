//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"cleangrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type metricsProvider interface {
	CurrentStep() int
	PercentClean() float64
	TotalMoves() int
	Terminated() bool
}

// HUD renders the metrics readout and parameter panel to the right of the
// simulation view. Parameter edits are sent to the sim immediately but only
// take effect when the run is reset.
type HUD struct {
	sim   core.Sim
	width int

	panel      *ebiten.Image
	lastHeight int

	controls []core.ParameterControl
	setter   core.IntParameterSetter
	snapshot core.ParameterSnapshot
	selected int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot and handles the control
// keys: up/down select a parameter, left/right adjust it.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.setter == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}

	delta := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		delta = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		delta = -1
	}
	if delta == 0 {
		return
	}

	ctrl := h.controls[h.selected]
	value, err := strconv.Atoi(h.valueFor(ctrl.Key))
	if err != nil {
		return
	}
	value += delta * ctrl.Step
	if value < ctrl.Min {
		value = ctrl.Min
	}
	if value > ctrl.Max {
		value = ctrl.Max
	}
	h.setter.SetIntParameter(ctrl.Key, value)
}

func (h *HUD) valueFor(key string) string {
	for _, p := range h.snapshot.Params {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	bright := color.RGBA{R: 230, G: 230, B: 235, A: 255}
	dim := color.RGBA{R: 150, G: 150, B: 160, A: 255}

	y := 18
	text.Draw(h.panel, "cleaning", face, 10, y, bright)
	y += 22

	if m, ok := h.sim.(metricsProvider); ok {
		state := "running"
		if m.Terminated() {
			state = "done"
		}
		lines := []string{
			fmt.Sprintf("step   %d", m.CurrentStep()),
			fmt.Sprintf("clean  %.1f%%", m.PercentClean()),
			fmt.Sprintf("moves  %d", m.TotalMoves()),
			fmt.Sprintf("state  %s", state),
		}
		for _, line := range lines {
			text.Draw(h.panel, line, face, 10, y, bright)
			y += 16
		}
		y += 10
	}

	if len(h.controls) > 0 {
		text.Draw(h.panel, "params (apply on R)", face, 10, y, dim)
		y += 18
		for i, ctrl := range h.controls {
			col := dim
			prefix := "  "
			if i == h.selected {
				col = bright
				prefix = "> "
			}
			line := fmt.Sprintf("%s%s %s", prefix, ctrl.Label, h.valueFor(ctrl.Key))
			text.Draw(h.panel, line, face, 10, y, col)
			y += 16
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
