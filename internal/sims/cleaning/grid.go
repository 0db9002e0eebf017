package cleaning

// Cell identifies one grid position. Cells are immutable values; two cells
// with the same coordinates are the same cell.
type Cell struct {
	X, Y int
}

// Grid is a bounded 2-D lattice with Moore (8-way) adjacency. The grid does
// not wrap: edge cells simply have smaller neighborhoods (3 in a corner, 5
// along an edge). Fully immutable after construction.
type Grid struct {
	w, h      int
	cells     []Cell
	neighbors [][]Cell
}

// NewGrid allocates a grid with the given dimensions and precomputes every
// cell's neighborhood.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{
		w:         w,
		h:         h,
		cells:     make([]Cell, w*h),
		neighbors: make([][]Cell, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[y*w+x] = Cell{X: x, Y: y}
		}
	}
	for idx, c := range g.cells {
		var ns []Cell
		for dy := -1; dy <= 1; dy++ {
			ny := c.Y + dy
			if ny < 0 || ny >= h {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				nx := c.X + dx
				if nx < 0 || nx >= w {
					continue
				}
				if dx == 0 && dy == 0 {
					continue
				}
				ns = append(ns, Cell{X: nx, Y: ny})
			}
		}
		g.neighbors[idx] = ns
	}
	return g
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height.
func (g *Grid) Height() int { return g.h }

// NumCells returns the total cell count.
func (g *Grid) NumCells() int { return len(g.cells) }

// Index returns the row-major slice index for the cell.
func (g *Grid) Index(c Cell) int { return c.Y*g.w + c.X }

// CellAt returns the cell at (x, y), or an *OutOfRangeError when the
// coordinates fall outside [0,w)x[0,h).
func (g *Grid) CellAt(x, y int) (Cell, error) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return Cell{}, &OutOfRangeError{X: x, Y: y, W: g.w, H: g.h}
	}
	return g.cells[y*g.w+x], nil
}

// Neighbors returns the Moore neighborhood of c, clipped at the boundary.
// The returned slice is shared and must not be modified.
func (g *Grid) Neighbors(c Cell) []Cell {
	return g.neighbors[g.Index(c)]
}

// AllCells returns every cell in row-major order. The returned slice is
// shared and must not be modified.
func (g *Grid) AllCells() []Cell {
	return g.cells
}
