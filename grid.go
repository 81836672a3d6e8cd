package rooms

import "fmt"

// BigCellSize is the edge length of a big cell in common cells. Rooms are
// always carved as whole big cells, never as single common cells.
const BigCellSize = 2

// Point identifies a grid position by column and row.
type Point struct {
	X int
	Y int
}

// bigCellOffsets enumerates the four single-step moves between big-cell
// corners in left, right, up, down order. Candidate scans keep this order so
// that a seeded run is reproducible.
var bigCellOffsets = [4]Point{
	{X: -BigCellSize},
	{X: BigCellSize},
	{Y: -BigCellSize},
	{Y: BigCellSize},
}

// Grid is the mutable cell surface a generation run carves big cells into.
// Cells and corner markers only ever flip from empty to occupied; a big cell
// is placed whole or not at all.
type Grid struct {
	Width  int
	Height int

	cells   [][]bool // common-cell occupancy, indexed [y][x]
	corners [][]bool // top-left corner markers of placed big cells
}

// NewGrid returns an empty grid of the given extent.
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	corners := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]bool, width)
		corners[y] = make([]bool, width)
	}
	return &Grid{Width: width, Height: height, cells: cells, corners: corners}
}

// InBounds reports whether the common cell (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Occupied reports whether the common cell (x, y) belongs to a placed big
// cell. Positions outside the grid read as occupied.
func (g *Grid) Occupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.cells[y][x]
}

// Corner reports whether (x, y) is the top-left corner of a placed big cell.
func (g *Grid) Corner(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.corners[y][x]
}

// CanPlaceBigCell reports whether PlaceBigCell would succeed for the big
// cell cornered at (x, y).
func (g *Grid) CanPlaceBigCell(x, y int) bool {
	if x < 0 || y < 0 || x+BigCellSize > g.Width || y+BigCellSize > g.Height {
		return false
	}
	for dy := 0; dy < BigCellSize; dy++ {
		for dx := 0; dx < BigCellSize; dx++ {
			if g.cells[y+dy][x+dx] {
				return false
			}
		}
	}
	return true
}

// PlaceBigCell carves the big cell cornered at (x, y), marking its common
// cells occupied and (x, y) as a corner. It returns ErrOutOfBounds when any
// part of the big cell falls outside the grid and ErrCollision when any of
// its cells is already occupied. On error the grid is left untouched.
func (g *Grid) PlaceBigCell(x, y int) error {
	if x < 0 || y < 0 || x+BigCellSize > g.Width || y+BigCellSize > g.Height {
		return fmt.Errorf("%w: corner (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	for dy := 0; dy < BigCellSize; dy++ {
		for dx := 0; dx < BigCellSize; dx++ {
			if g.cells[y+dy][x+dx] {
				return fmt.Errorf("%w: cell (%d,%d) already occupied", ErrCollision, x+dx, y+dy)
			}
		}
	}
	for dy := 0; dy < BigCellSize; dy++ {
		for dx := 0; dx < BigCellSize; dx++ {
			g.cells[y+dy][x+dx] = true
		}
	}
	g.corners[y][x] = true
	return nil
}

// freeNeighborCorners appends to dst the corners one big-cell step from p
// where a big cell can still be placed, in left, right, up, down order.
func (g *Grid) freeNeighborCorners(p Point, dst []Point) []Point {
	for _, d := range bigCellOffsets {
		nx, ny := p.X+d.X, p.Y+d.Y
		if g.CanPlaceBigCell(nx, ny) {
			dst = append(dst, Point{X: nx, Y: ny})
		}
	}
	return dst
}

// hasFreeNeighbor reports whether at least one big cell can still be placed
// one step from p.
func (g *Grid) hasFreeNeighbor(p Point) bool {
	for _, d := range bigCellOffsets {
		if g.CanPlaceBigCell(p.X+d.X, p.Y+d.Y) {
			return true
		}
	}
	return false
}
