package cleaning

import "cleangrid/internal/core"

// AgentKind distinguishes agent visual styles for the renderer.
type AgentKind uint8

const (
	// KindCleaner is a cleaning robot.
	KindCleaner AgentKind = iota
)

// Agent is a reactive cleaning robot. It has no memory and no plan: each
// activation looks only at the cell under it and either cleans it or wanders
// to a uniformly random neighbor.
type Agent struct {
	id    int
	cell  Cell
	moves int
}

// NewAgent places a new agent on the start cell.
func NewAgent(id int, start Cell) *Agent {
	return &Agent{id: id, cell: start}
}

// ID returns the agent's stable index.
func (a *Agent) ID() int { return a.id }

// Kind returns the agent's kind.
func (a *Agent) Kind() AgentKind { return KindCleaner }

// Position returns the agent's current cell coordinates.
func (a *Agent) Position() (int, int) { return a.cell.X, a.cell.Y }

// Moves returns the cumulative move count.
func (a *Agent) Moves() int { return a.moves }

// Step runs one activation. If the current cell is dirty the agent cleans it
// and stays put; otherwise it moves to a random neighbor. The move counter
// only advances when the agent actually relocates, so on a 1x1 grid with an
// empty neighborhood the agent idles without counting moves.
func (a *Agent) Step(dirt *DirtState, grid *Grid, rng *core.RNG) {
	if dirt.IsDirty(a.cell) {
		dirt.Clean(a.cell)
		return
	}
	neighbors := grid.Neighbors(a.cell)
	if len(neighbors) == 0 {
		return
	}
	a.cell = neighbors[rng.IntN(len(neighbors))]
	a.moves++
}
