package rooms

// doors records which big-cell edges the walk traversed. Both arrays share
// the grid's height by width shape; a door is keyed by the corner of the
// left (horizontal) or top (vertical) big cell of the joined pair.
type doors struct {
	horizontal [][]bool
	vertical   [][]bool
	count      int
}

func newDoors(width, height int) *doors {
	horizontal := make([][]bool, height)
	vertical := make([][]bool, height)
	for y := 0; y < height; y++ {
		horizontal[y] = make([]bool, width)
		vertical[y] = make([]bool, width)
	}
	return &doors{horizontal: horizontal, vertical: vertical}
}

// connect marks the door between the big cells cornered at from and to.
// Corners that are not exactly one big-cell step apart on a single axis
// record nothing.
func (d *doors) connect(from, to Point) {
	switch {
	case to.X-from.X == BigCellSize && to.Y == from.Y:
		d.markHorizontal(from.X, from.Y)
	case from.X-to.X == BigCellSize && to.Y == from.Y:
		d.markHorizontal(to.X, to.Y)
	case to.Y-from.Y == BigCellSize && to.X == from.X:
		d.markVertical(from.X, from.Y)
	case from.Y-to.Y == BigCellSize && to.X == from.X:
		d.markVertical(to.X, to.Y)
	}
}

// connected reports whether a door joins the big cells cornered at a and b.
func (d *doors) connected(a, b Point) bool {
	switch {
	case b.X-a.X == BigCellSize && b.Y == a.Y:
		return d.horizontal[a.Y][a.X]
	case a.X-b.X == BigCellSize && b.Y == a.Y:
		return d.horizontal[b.Y][b.X]
	case b.Y-a.Y == BigCellSize && b.X == a.X:
		return d.vertical[a.Y][a.X]
	case a.Y-b.Y == BigCellSize && b.X == a.X:
		return d.vertical[b.Y][b.X]
	}
	return false
}

func (d *doors) markHorizontal(x, y int) {
	if !d.horizontal[y][x] {
		d.horizontal[y][x] = true
		d.count++
	}
}

func (d *doors) markVertical(x, y int) {
	if !d.vertical[y][x] {
		d.vertical[y][x] = true
		d.count++
	}
}
