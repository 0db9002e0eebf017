package cleaning

import (
	"slices"
	"testing"

	"cleangrid/internal/core"
)

func countDirty(g *Grid, d *DirtState) int {
	count := 0
	for _, c := range g.AllCells() {
		if d.IsDirty(c) {
			count++
		}
	}
	return count
}

func TestDirtSamplingExactCounts(t *testing.T) {
	cases := []struct {
		w, h    int
		percent int
		want    int
	}{
		{10, 10, 0, 0},
		{10, 10, 37, 37},
		{10, 10, 100, 100},
		{3, 3, 50, 4}, // floor(9 * 50 / 100)
		{1, 1, 100, 1},
	}
	for _, tc := range cases {
		g := NewGrid(tc.w, tc.h)
		d := NewDirtState(g, tc.percent, core.NewRNG(7))
		if d.DirtyCount() != tc.want {
			t.Fatalf("%dx%d at %d%%: DirtyCount = %d, expected %d", tc.w, tc.h, tc.percent, d.DirtyCount(), tc.want)
		}
		if got := countDirty(g, d); got != tc.want {
			t.Fatalf("%dx%d at %d%%: %d flags set, expected %d", tc.w, tc.h, tc.percent, got, tc.want)
		}
	}
}

func TestDirtSamplingDeterministic(t *testing.T) {
	g := NewGrid(8, 8)
	a := NewDirtState(g, 40, core.NewRNG(99))
	b := NewDirtState(g, 40, core.NewRNG(99))
	if !slices.Equal(a.dirty, b.dirty) {
		t.Fatal("same seed produced different dirty sets")
	}

	c := NewDirtState(g, 40, core.NewRNG(100))
	if slices.Equal(a.dirty, c.dirty) {
		t.Fatal("different seeds produced identical dirty sets")
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	g := NewGrid(2, 2)
	d := NewDirtState(g, 100, core.NewRNG(1))

	cell, err := g.CellAt(1, 1)
	if err != nil {
		t.Fatalf("CellAt(1,1): %v", err)
	}
	if !d.IsDirty(cell) {
		t.Fatal("expected every cell dirty at 100%")
	}

	d.Clean(cell)
	if d.IsDirty(cell) {
		t.Fatal("cell still dirty after Clean")
	}
	if d.DirtyCount() != 3 {
		t.Fatalf("DirtyCount = %d after one clean, expected 3", d.DirtyCount())
	}

	d.Clean(cell)
	if d.DirtyCount() != 3 {
		t.Fatalf("cleaning a clean cell changed the count to %d", d.DirtyCount())
	}
}
