package cleaning

import "image/color"

// Display buffer values. Robots draw over dirt, like the larger robot marker
// covering the dirt marker in the reference portrayal.
const (
	displayClean uint8 = iota
	displayDirty
	displayRobot
	displayRobotOnDirt
)

var cleaningPalette = []color.RGBA{
	{R: 233, G: 229, B: 220, A: 255}, // clean floor
	{R: 122, G: 85, B: 60, A: 255},   // dirt
	{R: 31, G: 119, B: 180, A: 255},  // robot
	{R: 22, G: 86, B: 133, A: 255},   // robot on a still-dirty cell
}

// Palette exposes the color palette used for rendering the cleaning world.
func (m *Model) Palette() []color.RGBA {
	return cleaningPalette
}

func (m *Model) rebuildDisplay() {
	for i, dirty := range m.dirt.dirty {
		if dirty {
			m.display[i] = displayDirty
		} else {
			m.display[i] = displayClean
		}
	}
	for _, a := range m.agents {
		idx := m.grid.Index(a.cell)
		if m.display[idx] == displayDirty {
			m.display[idx] = displayRobotOnDirt
		} else {
			m.display[idx] = displayRobot
		}
	}
}
