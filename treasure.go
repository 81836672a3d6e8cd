package rooms

// treasureLog accumulates terminal dead ends in finalization order.
type treasureLog struct {
	order []Point
	seen  map[Point]struct{}
}

func newTreasureLog() *treasureLog {
	return &treasureLog{seen: make(map[Point]struct{})}
}

// Add records p unless the same position was already finalized.
func (t *treasureLog) Add(p Point) {
	if _, dup := t.seen[p]; dup {
		return
	}
	t.seen[p] = struct{}{}
	t.order = append(t.order, p)
}

// Positions returns the recorded positions in finalization order.
func (t *treasureLog) Positions() []Point {
	return t.order
}
