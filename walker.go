package rooms

import "math/rand"

// headState represents the lifecycle stage of a walker head.
type headState int

const (
	headAlive headState = iota
	headDeadEnd
	headDead
)

// String returns a human-readable name for the state.
func (s headState) String() string {
	switch s {
	case headAlive:
		return "alive"
	case headDeadEnd:
		return "dead-end"
	case headDead:
		return "dead"
	default:
		return "unknown"
	}
}

// head is one walker of the carving population. It keeps no history beyond
// its current big-cell corner; branching happens by spawning new heads, not
// by backtracking.
type head struct {
	pos   Point
	state headState
}

// step advances the head one move: it picks a random free neighboring slot,
// carves a big cell there and records the door on the traversed edge. It
// returns false when no slot is free and the head has reached a dead end.
func (h *head) step(g *Grid, d *doors, rng *rand.Rand) bool {
	cands := g.freeNeighborCorners(h.pos, make([]Point, 0, len(bigCellOffsets)))
	for len(cands) > 0 {
		i := rng.Intn(len(cands))
		next := cands[i]
		if err := g.PlaceBigCell(next.X, next.Y); err != nil {
			// A slot that fails to place is no longer a valid move.
			cands = append(cands[:i], cands[i+1:]...)
			continue
		}
		d.connect(h.pos, next)
		h.pos = next
		return true
	}
	h.state = headDeadEnd
	return false
}
