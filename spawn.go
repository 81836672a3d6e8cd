package rooms

import (
	"fmt"
	"math/rand"
)

// controller drives the head population over a grid until every head has
// died, applying the continuation rule at each dead end. Heads advance in
// round-robin sweeps; successors spawned during a sweep take their first
// step on the next one.
type controller struct {
	grid   *Grid
	doors  *doors
	rng    *rand.Rand
	chance float64
	budget int // heads ever allowed, the initial one included

	heads     []*head
	spawned   int
	placed    []Point // big-cell corners in placement order
	treasures *treasureLog
}

func newController(g *Grid, d *doors, rng *rand.Rand, opts Options) *controller {
	return &controller{
		grid:      g,
		doors:     d,
		rng:       rng,
		chance:    opts.Chance,
		budget:    opts.MaxHeads,
		treasures: newTreasureLog(),
	}
}

// start carves the first big cell at p and seeds the initial head on it.
func (c *controller) start(p Point) error {
	if err := c.grid.PlaceBigCell(p.X, p.Y); err != nil {
		return fmt.Errorf("%w: epicenter (%d,%d): %v", ErrInvalidConfiguration, p.X, p.Y, err)
	}
	c.placed = append(c.placed, p)
	c.heads = append(c.heads, &head{pos: p})
	c.spawned = 1
	return nil
}

// run sweeps the population until it dies out. Successors appended during a
// sweep are not visited until the next sweep, and heads that died are
// compacted away between sweeps.
func (c *controller) run() {
	for len(c.heads) > 0 {
		for _, h := range c.heads {
			if h.step(c.grid, c.doors, c.rng) {
				c.placed = append(c.placed, h.pos)
				continue
			}
			c.finalize(h)
		}
		c.compact()
	}
}

// finalize applies the continuation rule to a head that has just reached a
// dead end. One chance trial decides between spawning a successor and
// finalizing the dead end as a treasure site; the spawn budget and the
// availability of an open big cell both gate the successor path.
func (c *controller) finalize(h *head) {
	h.state = headDead
	carryOn := c.rng.Float64() < c.chance
	if carryOn && c.spawned < c.budget {
		if origin, ok := c.pickOpenCell(); ok {
			c.heads = append(c.heads, &head{pos: origin})
			c.spawned++
			return
		}
	}
	c.treasures.Add(h.pos)
}

// pickOpenCell selects a placed big cell that still has a free neighboring
// slot. Scanning in placement order keeps the choice reproducible for a
// given seed.
func (c *controller) pickOpenCell() (Point, bool) {
	open := make([]Point, 0, len(c.placed))
	for _, p := range c.placed {
		if c.grid.hasFreeNeighbor(p) {
			open = append(open, p)
		}
	}
	if len(open) == 0 {
		return Point{}, false
	}
	return open[c.rng.Intn(len(open))], true
}

// compact drops heads that died during the sweep, keeping arrival order.
func (c *controller) compact() {
	alive := c.heads[:0]
	for _, h := range c.heads {
		if h.state == headAlive {
			alive = append(alive, h)
		}
	}
	c.heads = alive
}
