package cleaning

import "cleangrid/internal/core"

// DirtState tracks which cells are dirty as a flat side table over the grid's
// row-major index space. Dirt only ever disappears: cells are marked once at
// construction and cleaned by agents, never re-dirtied.
type DirtState struct {
	grid  *Grid
	dirty []bool
	count int
}

// NewDirtState marks floor(total * dirtyPercent / 100) distinct cells dirty,
// chosen uniformly without replacement from the shared random stream. All
// other cells start clean.
func NewDirtState(grid *Grid, dirtyPercent int, rng *core.RNG) *DirtState {
	total := grid.NumCells()
	d := &DirtState{grid: grid, dirty: make([]bool, total)}
	num := total * dirtyPercent / 100
	for _, idx := range rng.SampleIndices(total, num) {
		d.dirty[idx] = true
		d.count++
	}
	return d
}

// IsDirty reports whether the cell is dirty.
func (d *DirtState) IsDirty(c Cell) bool {
	return d.dirty[d.grid.Index(c)]
}

// Clean marks the cell clean. Cleaning an already-clean cell is a no-op.
func (d *DirtState) Clean(c Cell) {
	idx := d.grid.Index(c)
	if !d.dirty[idx] {
		return
	}
	d.dirty[idx] = false
	d.count--
}

// DirtyCount returns the number of dirty cells. O(1) via the running counter.
func (d *DirtState) DirtyCount() int {
	return d.count
}
