package cleaning

import (
	"errors"
	"testing"
)

func TestCellAtBounds(t *testing.T) {
	g := NewGrid(4, 3)

	c, err := g.CellAt(0, 0)
	if err != nil {
		t.Fatalf("CellAt(0,0) returned error: %v", err)
	}
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("CellAt(0,0) = %v", c)
	}

	if _, err := g.CellAt(3, 2); err != nil {
		t.Fatalf("CellAt(3,2) returned error: %v", err)
	}

	for _, bad := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}} {
		_, err := g.CellAt(bad[0], bad[1])
		if err == nil {
			t.Fatalf("CellAt(%d,%d) expected error", bad[0], bad[1])
		}
		var oor *OutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("CellAt(%d,%d) error type %T, expected *OutOfRangeError", bad[0], bad[1], err)
		}
		if oor.X != bad[0] || oor.Y != bad[1] || oor.W != 4 || oor.H != 3 {
			t.Fatalf("unexpected error detail: %+v", oor)
		}
	}
}

func TestNeighborsMooreClippedAtEdges(t *testing.T) {
	g := NewGrid(3, 3)

	counts := map[[2]int]int{
		{0, 0}: 3, {2, 0}: 3, {0, 2}: 3, {2, 2}: 3,
		{1, 0}: 5, {0, 1}: 5, {2, 1}: 5, {1, 2}: 5,
		{1, 1}: 8,
	}
	for pos, want := range counts {
		c, err := g.CellAt(pos[0], pos[1])
		if err != nil {
			t.Fatalf("CellAt(%d,%d): %v", pos[0], pos[1], err)
		}
		if got := len(g.Neighbors(c)); got != want {
			t.Fatalf("cell (%d,%d) has %d neighbors, expected %d", pos[0], pos[1], got, want)
		}
	}

	corner, _ := g.CellAt(0, 0)
	want := map[Cell]bool{{X: 1, Y: 0}: true, {X: 0, Y: 1}: true, {X: 1, Y: 1}: true}
	for _, n := range g.Neighbors(corner) {
		if !want[n] {
			t.Fatalf("unexpected corner neighbor %v", n)
		}
		delete(want, n)
	}
	if len(want) != 0 {
		t.Fatalf("missing corner neighbors: %v", want)
	}
}

func TestSingleCellGridHasNoNeighbors(t *testing.T) {
	g := NewGrid(1, 1)
	c, err := g.CellAt(0, 0)
	if err != nil {
		t.Fatalf("CellAt(0,0): %v", err)
	}
	if got := len(g.Neighbors(c)); got != 0 {
		t.Fatalf("1x1 grid reported %d neighbors", got)
	}
}

func TestAllCellsRowMajor(t *testing.T) {
	g := NewGrid(2, 2)
	want := []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	cells := g.AllCells()
	if len(cells) != len(want) {
		t.Fatalf("AllCells length %d, expected %d", len(cells), len(want))
	}
	for i, c := range cells {
		if c != want[i] {
			t.Fatalf("AllCells[%d] = %v, expected %v", i, c, want[i])
		}
		if g.Index(c) != i {
			t.Fatalf("Index(%v) = %d, expected %d", c, g.Index(c), i)
		}
	}
}
