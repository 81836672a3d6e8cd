package rooms

import (
	"math/rand"
	"time"
)

// newRand builds the random source for one run. A zero seed asks for an
// environment-derived one; the seed actually used is returned alongside the
// source so the run can be replayed.
func newRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
