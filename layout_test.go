package rooms

import (
	"context"
	"strings"
	"testing"
)

// chainLayout builds a 6x2 layout by hand: rooms at (0,0), (2,0) and (4,0),
// one door joining the first two, and a treasure on the third.
func chainLayout() *Layout {
	l := &Layout{
		Width:     6,
		Height:    2,
		Rooms:     []Point{{0, 0}, {2, 0}, {4, 0}},
		Treasures: []Point{{X: 4, Y: 0}},
		Epicenter: Point{X: 0, Y: 0},
		Seed:      1,
	}
	l.Cells = make([][]bool, l.Height)
	l.Corners = make([][]bool, l.Height)
	l.HorizontalDoors = make([][]bool, l.Height)
	l.VerticalDoors = make([][]bool, l.Height)
	for y := 0; y < l.Height; y++ {
		l.Cells[y] = make([]bool, l.Width)
		l.Corners[y] = make([]bool, l.Width)
		l.HorizontalDoors[y] = make([]bool, l.Width)
		l.VerticalDoors[y] = make([]bool, l.Width)
		for x := 0; x < l.Width; x++ {
			l.Cells[y][x] = true
		}
	}
	l.Corners[0][0] = true
	l.Corners[0][2] = true
	l.Corners[0][4] = true
	l.HorizontalDoors[0][0] = true
	return l
}

func TestLayoutAccessors(t *testing.T) {
	l := chainLayout()

	if !l.CellOccupied(0, 0) || !l.CellOccupied(5, 1) {
		t.Error("Carved cells should read as occupied")
	}
	if l.CellOccupied(-1, 0) || l.CellOccupied(6, 0) || l.CellOccupied(0, 2) {
		t.Error("Cells outside the grid should read as not carved")
	}

	if !l.BigCellAt(2, 0) {
		t.Error("BigCellAt(2,0) = false, want true")
	}
	if l.BigCellAt(1, 0) || l.BigCellAt(-2, 0) {
		t.Error("BigCellAt should be false off corners and off the grid")
	}

	if !l.HasDoorRight(0, 0) {
		t.Error("HasDoorRight(0,0) = false, want true")
	}
	if l.HasDoorRight(2, 0) || l.HasDoorRight(-2, 0) {
		t.Error("HasDoorRight should be false without a door")
	}
	if l.HasDoorDown(0, 0) {
		t.Error("HasDoorDown(0,0) = true, want false")
	}
}

func TestLayoutCounts(t *testing.T) {
	l := chainLayout()

	if l.RoomCount() != 3 {
		t.Errorf("RoomCount = %d, want 3", l.RoomCount())
	}
	if l.DoorCount() != 1 {
		t.Errorf("DoorCount = %d, want 1", l.DoorCount())
	}
	if l.TreasureCount() != 1 {
		t.Errorf("TreasureCount = %d, want 1", l.TreasureCount())
	}
}

func TestLayoutDoorNeighbors(t *testing.T) {
	l := chainLayout()

	nbrs := l.DoorNeighbors(0, 0)
	if len(nbrs) != 1 || nbrs[0] != (Point{X: 2, Y: 0}) {
		t.Errorf("DoorNeighbors(0,0) = %v, want [(2,0)]", nbrs)
	}

	nbrs = l.DoorNeighbors(2, 0)
	if len(nbrs) != 1 || nbrs[0] != (Point{X: 0, Y: 0}) {
		t.Errorf("DoorNeighbors(2,0) = %v, want [(0,0)]", nbrs)
	}

	if nbrs = l.DoorNeighbors(4, 0); len(nbrs) != 0 {
		t.Errorf("DoorNeighbors(4,0) = %v, want none for the doorless room", nbrs)
	}

	if nbrs = l.DoorNeighbors(1, 1); nbrs != nil {
		t.Errorf("DoorNeighbors off a corner = %v, want nil", nbrs)
	}
}

func TestLayoutString(t *testing.T) {
	l := chainLayout()

	want := "@+.#T\n"
	if got := l.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLayoutStringSingleRoom(t *testing.T) {
	// A 2x2 grid always generates one room, no doors and one treasure,
	// whatever the seed
	opts := Options{Width: 2, Height: 2, Chance: 1, MaxHeads: 3, Seed: 6}
	l, err := Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("Generation failed: %v", err)
	}

	if l.RoomCount() != 1 || l.DoorCount() != 0 || l.TreasureCount() != 1 {
		t.Fatalf("Expected 1 room, 0 doors, 1 treasure, got %d/%d/%d",
			l.RoomCount(), l.DoorCount(), l.TreasureCount())
	}
	if got := l.String(); got != "@\n" {
		t.Errorf("String() = %q, want %q", got, "@\n")
	}
}

func TestLayoutStringMarksTreasures(t *testing.T) {
	// The single-chain scenario must show the epicenter and its treasure
	opts := Options{
		Width: 10, Height: 10,
		EpicenterX: 5, EpicenterY: 5,
		Chance: 0, MaxHeads: 1,
		Seed: 1,
	}
	l, err := Generate(context.Background(), opts)
	if err != nil {
		t.Fatalf("Generation failed: %v", err)
	}

	s := l.String()
	if strings.Count(s, "@") != 1 {
		t.Errorf("Rendered layout should contain exactly one '@':\n%s", s)
	}
	if strings.Count(s, "T") != 1 {
		t.Errorf("Rendered layout should contain exactly one 'T':\n%s", s)
	}
	if strings.Count(s, "+") != l.DoorCount() {
		t.Errorf("Rendered layout shows %d doors, want %d:\n%s", strings.Count(s, "+"), l.DoorCount(), s)
	}
	if strings.Count(s, ".") != l.RoomCount()-2 {
		t.Errorf("Rendered layout shows %d plain rooms, want %d:\n%s",
			strings.Count(s, "."), l.RoomCount()-2, s)
	}
}
