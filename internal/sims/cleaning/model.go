package cleaning

import (
	"strconv"

	"cleangrid/internal/core"
)

// Model owns the grid, the dirt layer and the robots, and drives the tick
// loop. It implements core.Sim. A run terminates when the step budget is
// exhausted or every cell is clean; after that Step is a no-op.
type Model struct {
	cfg Config

	grid   *Grid
	dirt   *DirtState
	agents []*Agent
	start  Cell

	step    int
	history []Snapshot
	display []uint8

	rng *core.RNG

	// HUD edits land here and take effect on the next Reset.
	pending Params
}

// NewWithConfig returns a cleaning model for the provided configuration, or
// an *InvalidConfigError when a parameter is out of range.
func NewWithConfig(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := NewGrid(cfg.Width, cfg.Height)
	start, err := grid.CellAt(0, 0)
	if err != nil {
		return nil, err
	}
	m := &Model{
		cfg:     cfg,
		grid:    grid,
		start:   start,
		display: make([]uint8, grid.NumCells()),
		pending: cfg.Params,
	}
	m.Reset(cfg.Seed)
	return m, nil
}

// Name returns the simulation identifier.
func (m *Model) Name() string { return "cleaning" }

// Size reports the grid dimensions.
func (m *Model) Size() core.Size { return core.Size{W: m.grid.Width(), H: m.grid.Height()} }

// Cells exposes the current display buffer.
func (m *Model) Cells() []uint8 { return m.display }

// Grid exposes the immutable grid.
func (m *Model) Grid() *Grid { return m.grid }

// Agents exposes the agent collection. The slice is shared and must not be
// modified.
func (m *Model) Agents() []*Agent { return m.agents }

// Reset rebuilds the run from the given seed; seed 0 falls back to the
// configured seed. Dirt placement, neighbor choice and activation order all
// draw from the one stream seeded here, so a fixed seed reproduces an entire
// run bit for bit.
func (m *Model) Reset(seed int64) {
	if seed == 0 {
		seed = m.cfg.Seed
	}
	m.cfg.Params = m.pending
	m.rng = core.NewRNG(seed)
	m.dirt = NewDirtState(m.grid, m.cfg.Params.DirtyPercent, m.rng)
	m.agents = make([]*Agent, m.cfg.Params.Agents)
	for i := range m.agents {
		m.agents[i] = NewAgent(i, m.start)
	}
	m.step = 0
	m.history = append(m.history[:0], m.snapshot())
	m.rebuildDisplay()
}

// Step advances the simulation by one tick: every agent activates exactly
// once, in a fresh random order. Agents activated later in the tick see dirt
// cleaned by earlier ones; state is not snapshotted per tick. Once the run
// has terminated Step does nothing.
func (m *Model) Step() {
	if m.Terminated() {
		return
	}
	for _, i := range m.rng.Perm(len(m.agents)) {
		m.agents[i].Step(m.dirt, m.grid, m.rng)
	}
	m.step++
	m.history = append(m.history, m.snapshot())
	m.rebuildDisplay()
}

// Terminated reports whether the run has ended, either because the step
// budget is exhausted or because the grid is fully clean.
func (m *Model) Terminated() bool {
	return m.step >= m.cfg.Params.MaxSteps || m.dirt.DirtyCount() == 0
}

// AgentPositions returns the coordinates of every agent, for overlays.
func (m *Model) AgentPositions() [][2]int {
	positions := make([][2]int, len(m.agents))
	for i, a := range m.agents {
		x, y := a.Position()
		positions[i] = [2]int{x, y}
	}
	return positions
}

// ParameterControls lists the HUD-adjustable parameters. Edits apply on the
// next Reset, since agent count and dirt placement only exist at
// construction time.
func (m *Model) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "n", Label: "Agents", Step: 1, Min: 1, Max: 50},
		{Key: "dirty_percent", Label: "Initial dirty %", Step: 5, Min: 0, Max: 100},
		{Key: "max_steps", Label: "Step budget", Step: 50, Min: 50, Max: 5000},
	}
}

// SetIntParameter stores a pending parameter edit, clamped to its bounds.
func (m *Model) SetIntParameter(key string, value int) bool {
	switch key {
	case "n":
		m.pending.Agents = clampInt(value, 1, 50)
	case "dirty_percent":
		m.pending.DirtyPercent = clampInt(value, 0, 100)
	case "max_steps":
		m.pending.MaxSteps = clampInt(value, 50, 5000)
	default:
		return false
	}
	return true
}

// Parameters reports the pending parameter values for the HUD.
func (m *Model) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "n", Label: "Agents", Value: strconv.Itoa(m.pending.Agents)},
		{Key: "dirty_percent", Label: "Initial dirty %", Value: strconv.Itoa(m.pending.DirtyPercent)},
		{Key: "max_steps", Label: "Step budget", Value: strconv.Itoa(m.pending.MaxSteps)},
	}}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	core.Register("cleaning", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		m, err := NewWithConfig(c)
		if err != nil {
			// FromMap never yields an out-of-range config.
			panic(err)
		}
		return m
	})
}
