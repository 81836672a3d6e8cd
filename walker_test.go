package rooms

import (
	"math/rand"
	"testing"
)

func TestHeadStepCarves(t *testing.T) {
	g := NewGrid(10, 10)
	d := newDoors(10, 10)
	start := Point{X: 4, Y: 4}
	if err := g.PlaceBigCell(start.X, start.Y); err != nil {
		t.Fatalf("Initial placement failed: %v", err)
	}

	h := &head{pos: start}
	rng := rand.New(rand.NewSource(1))

	if !h.step(g, d, rng) {
		t.Fatal("Step on an open grid should succeed")
	}
	if h.state != headAlive {
		t.Fatalf("Head state after a successful step = %v, want alive", h.state)
	}

	// The head moved exactly one big cell along one axis
	dx, dy := h.pos.X-start.X, h.pos.Y-start.Y
	if !((dx == -BigCellSize || dx == BigCellSize) && dy == 0) &&
		!((dy == -BigCellSize || dy == BigCellSize) && dx == 0) {
		t.Fatalf("Head moved from %v to %v, not a single big-cell step", start, h.pos)
	}

	// The new big cell was carved and the traversed edge has a door
	if !g.Corner(h.pos.X, h.pos.Y) {
		t.Errorf("No corner marked at the new position %v", h.pos)
	}
	if !d.connected(start, h.pos) {
		t.Errorf("No door between %v and %v", start, h.pos)
	}
	if d.count != 1 {
		t.Errorf("Door count = %d, want 1", d.count)
	}
}

func TestHeadStepDeadEnd(t *testing.T) {
	// A 2x2 grid leaves the single head nowhere to go
	g := NewGrid(2, 2)
	d := newDoors(2, 2)
	if err := g.PlaceBigCell(0, 0); err != nil {
		t.Fatalf("Placement failed: %v", err)
	}

	h := &head{pos: Point{X: 0, Y: 0}}
	rng := rand.New(rand.NewSource(1))

	if h.step(g, d, rng) {
		t.Fatal("Step with no free neighbors should fail")
	}
	if h.state != headDeadEnd {
		t.Errorf("Head state = %v, want dead-end", h.state)
	}
	if d.count != 0 {
		t.Errorf("Dead end must not record doors, count = %d", d.count)
	}
}

func TestHeadStepSurrounded(t *testing.T) {
	// Box the head in on all four sides
	g := NewGrid(10, 10)
	d := newDoors(10, 10)
	center := Point{X: 4, Y: 4}
	for _, p := range []Point{{4, 4}, {2, 4}, {6, 4}, {4, 2}, {4, 6}} {
		if err := g.PlaceBigCell(p.X, p.Y); err != nil {
			t.Fatalf("Placement at %v failed: %v", p, err)
		}
	}

	h := &head{pos: center}
	rng := rand.New(rand.NewSource(1))

	if h.step(g, d, rng) {
		t.Fatal("Step from a surrounded position should fail")
	}
	if h.state != headDeadEnd {
		t.Errorf("Head state = %v, want dead-end", h.state)
	}
}

func TestHeadStateString(t *testing.T) {
	cases := []struct {
		state headState
		want  string
	}{
		{headAlive, "alive"},
		{headDeadEnd, "dead-end"},
		{headDead, "dead"},
		{headState(99), "unknown"},
	}

	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("headState(%d).String() = %q, want %q", int(tc.state), got, tc.want)
		}
	}
}
