package cleaning

import (
	"testing"

	"cleangrid/internal/core"
)

func TestAgentCleansWithoutMoving(t *testing.T) {
	g := NewGrid(3, 3)
	d := NewDirtState(g, 100, core.NewRNG(5))
	start, _ := g.CellAt(1, 1)
	a := NewAgent(0, start)

	a.Step(d, g, core.NewRNG(5))

	if x, y := a.Position(); x != 1 || y != 1 {
		t.Fatalf("agent moved while cleaning: at (%d,%d)", x, y)
	}
	if a.Moves() != 0 {
		t.Fatalf("Moves = %d after cleaning, expected 0", a.Moves())
	}
	if d.IsDirty(start) {
		t.Fatal("cell still dirty after the agent's activation")
	}
	if d.DirtyCount() != 8 {
		t.Fatalf("DirtyCount = %d, expected 8", d.DirtyCount())
	}
}

func TestAgentWandersOnCleanCell(t *testing.T) {
	g := NewGrid(3, 3)
	d := NewDirtState(g, 0, core.NewRNG(5))
	start, _ := g.CellAt(0, 0)
	a := NewAgent(0, start)

	a.Step(d, g, core.NewRNG(5))

	if a.Moves() != 1 {
		t.Fatalf("Moves = %d after wandering, expected 1", a.Moves())
	}
	x, y := a.Position()
	found := false
	for _, n := range g.Neighbors(start) {
		if n.X == x && n.Y == y {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("agent at (%d,%d) is not a neighbor of the start cell", x, y)
	}
}

func TestAgentIdlesOnSingleCellGrid(t *testing.T) {
	g := NewGrid(1, 1)
	d := NewDirtState(g, 0, core.NewRNG(5))
	start, _ := g.CellAt(0, 0)
	a := NewAgent(0, start)

	for i := 0; i < 5; i++ {
		a.Step(d, g, core.NewRNG(5))
	}

	if x, y := a.Position(); x != 0 || y != 0 {
		t.Fatalf("agent left a 1x1 grid: at (%d,%d)", x, y)
	}
	if a.Moves() != 0 {
		t.Fatalf("Moves = %d on a 1x1 grid, expected 0", a.Moves())
	}
}

func TestAgentIdentity(t *testing.T) {
	a := NewAgent(3, Cell{X: 2, Y: 1})
	if a.ID() != 3 {
		t.Fatalf("ID = %d, expected 3", a.ID())
	}
	if a.Kind() != KindCleaner {
		t.Fatalf("Kind = %d, expected KindCleaner", a.Kind())
	}
	if x, y := a.Position(); x != 2 || y != 1 {
		t.Fatalf("Position = (%d,%d), expected (2,1)", x, y)
	}
}
