package cleaning

// Snapshot captures the aggregate metrics after one completed step. Step 0 is
// the state right after Reset.
type Snapshot struct {
	Step         int
	DirtyCount   int
	PercentClean float64
	TotalMoves   int
}

// PercentClean returns the percentage of clean cells, in [0, 100].
func (m *Model) PercentClean() float64 {
	total := m.grid.NumCells()
	if total == 0 {
		return 100
	}
	return 100 * (1 - float64(m.dirt.DirtyCount())/float64(total))
}

// TotalMoves returns the sum of every agent's move counter.
func (m *Model) TotalMoves() int {
	sum := 0
	for _, a := range m.agents {
		sum += a.Moves()
	}
	return sum
}

// DirtyCount returns the number of dirty cells remaining.
func (m *Model) DirtyCount() int {
	return m.dirt.DirtyCount()
}

// CurrentStep returns the number of completed ticks.
func (m *Model) CurrentStep() int {
	return m.step
}

// History returns the snapshot series collected so far: one entry taken at
// Reset plus one per completed tick. The slice is shared and must not be
// modified.
func (m *Model) History() []Snapshot {
	return m.history
}

func (m *Model) snapshot() Snapshot {
	return Snapshot{
		Step:         m.step,
		DirtyCount:   m.dirt.DirtyCount(),
		PercentClean: m.PercentClean(),
		TotalMoves:   m.TotalMoves(),
	}
}
