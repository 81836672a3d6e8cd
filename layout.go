package rooms

import "strings"

// Layout is the finished output of a generation run. All slices are owned by
// the layout and must be treated as read-only once Generate returns.
type Layout struct {
	// Width and Height are the grid extent in common cells.
	Width  int
	Height int

	// Cells marks every common cell carved by a big cell, indexed [y][x].
	Cells [][]bool

	// Corners marks the top-left common cell of every placed big cell.
	Corners [][]bool

	// HorizontalDoors[y][x] joins the big cells cornered at (x, y) and
	// (x+BigCellSize, y).
	HorizontalDoors [][]bool

	// VerticalDoors[y][x] joins the big cells cornered at (x, y) and
	// (x, y+BigCellSize).
	VerticalDoors [][]bool

	// Rooms lists big-cell corners in the order they were carved. The first
	// entry is always the epicenter.
	Rooms []Point

	// Treasures lists terminal dead ends in the order they were finalized.
	Treasures []Point

	// Epicenter is the corner of the first big cell.
	Epicenter Point

	// Seed is the seed the run actually used.
	Seed int64
}

// CellOccupied reports whether the common cell (x, y) was carved. Positions
// outside the grid read as not carved.
func (l *Layout) CellOccupied(x, y int) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return false
	}
	return l.Cells[y][x]
}

// BigCellAt reports whether (x, y) is the top-left corner of a placed big
// cell.
func (l *Layout) BigCellAt(x, y int) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return false
	}
	return l.Corners[y][x]
}

// HasDoorRight reports whether a door joins the big cell cornered at (x, y)
// to the one on its right.
func (l *Layout) HasDoorRight(x, y int) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return false
	}
	return l.HorizontalDoors[y][x]
}

// HasDoorDown reports whether a door joins the big cell cornered at (x, y)
// to the one below it.
func (l *Layout) HasDoorDown(x, y int) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return false
	}
	return l.VerticalDoors[y][x]
}

// DoorNeighbors returns the corners of the big cells joined by a door to the
// one cornered at (x, y), in left, right, up, down order. It returns nil
// when (x, y) is not a big-cell corner.
func (l *Layout) DoorNeighbors(x, y int) []Point {
	if !l.BigCellAt(x, y) {
		return nil
	}
	var nbrs []Point
	if l.HasDoorRight(x-BigCellSize, y) {
		nbrs = append(nbrs, Point{X: x - BigCellSize, Y: y})
	}
	if l.HasDoorRight(x, y) {
		nbrs = append(nbrs, Point{X: x + BigCellSize, Y: y})
	}
	if l.HasDoorDown(x, y-BigCellSize) {
		nbrs = append(nbrs, Point{X: x, Y: y - BigCellSize})
	}
	if l.HasDoorDown(x, y) {
		nbrs = append(nbrs, Point{X: x, Y: y + BigCellSize})
	}
	return nbrs
}

// RoomCount returns the number of placed big cells.
func (l *Layout) RoomCount() int {
	return len(l.Rooms)
}

// DoorCount returns the number of doors in the layout.
func (l *Layout) DoorCount() int {
	n := 0
	for y := range l.HorizontalDoors {
		for x := range l.HorizontalDoors[y] {
			if l.HorizontalDoors[y][x] {
				n++
			}
			if l.VerticalDoors[y][x] {
				n++
			}
		}
	}
	return n
}

// TreasureCount returns the number of treasure sites.
func (l *Layout) TreasureCount() int {
	return len(l.Treasures)
}

// String renders a half-scale topology view of the layout, one glyph per
// big-cell slot: '@' epicenter, 'T' treasure, '.' room, '+' door, '#' rock.
func (l *Layout) String() string {
	x0 := l.Epicenter.X % BigCellSize
	y0 := l.Epicenter.Y % BigCellSize
	cols := latticeSpan(x0, l.Width)
	rows := latticeSpan(y0, l.Height)
	if cols == 0 || rows == 0 {
		return ""
	}

	treasure := make(map[Point]struct{}, len(l.Treasures))
	for _, p := range l.Treasures {
		treasure[p] = struct{}{}
	}

	var b strings.Builder
	b.Grow((2*cols)*(2*rows-1) + 1)
	for j := 0; j < rows; j++ {
		y := y0 + j*BigCellSize
		for i := 0; i < cols; i++ {
			x := x0 + i*BigCellSize
			b.WriteByte(l.slotGlyph(x, y, treasure))
			if i < cols-1 {
				if l.HasDoorRight(x, y) {
					b.WriteByte('+')
				} else {
					b.WriteByte('#')
				}
			}
		}
		b.WriteByte('\n')
		if j == rows-1 {
			break
		}
		for i := 0; i < cols; i++ {
			x := x0 + i*BigCellSize
			if l.HasDoorDown(x, y) {
				b.WriteByte('+')
			} else {
				b.WriteByte('#')
			}
			if i < cols-1 {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (l *Layout) slotGlyph(x, y int, treasure map[Point]struct{}) byte {
	switch {
	case x == l.Epicenter.X && y == l.Epicenter.Y && l.BigCellAt(x, y):
		return '@'
	case hasPoint(treasure, x, y):
		return 'T'
	case l.BigCellAt(x, y):
		return '.'
	default:
		return '#'
	}
}

func hasPoint(set map[Point]struct{}, x, y int) bool {
	_, ok := set[Point{X: x, Y: y}]
	return ok
}

// latticeSpan counts how many big-cell corners fit along one axis of length
// extent when the lattice is phased at start.
func latticeSpan(start, extent int) int {
	last := extent - BigCellSize
	if start < 0 || start > last {
		return 0
	}
	return (last-start)/BigCellSize + 1
}
