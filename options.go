package rooms

import "fmt"

// Defaults used by DefaultOptions and the roomsgen command.
const (
	DefaultWidth  = 40
	DefaultHeight = 24

	// DefaultChance is the probability that the walk continues from a new
	// head after one dies at a dead end.
	DefaultChance = 0.35

	// DefaultMaxHeads caps the number of heads spawned over a whole run,
	// the initial head included.
	DefaultMaxHeads = 3
)

// Options holds the parameters of a generation run.
type Options struct {
	// Width and Height are the grid extent in common cells. Each must be at
	// least BigCellSize so the first big cell fits.
	Width  int
	Height int

	// EpicenterX and EpicenterY locate the top-left corner of the first big
	// cell. Every later big cell sits on the two-step lattice anchored here.
	EpicenterX int
	EpicenterY int

	// Chance is the probability, in [0, 1], that a head dying at a dead end
	// is replaced by a successor instead of finalizing a treasure site.
	Chance float64

	// MaxHeads caps the total number of heads ever created, counting the
	// initial one. Must be at least 1.
	MaxHeads int

	// Seed drives all random choices. Zero means a seed is drawn from the
	// environment; the seed actually used is echoed in Layout.Seed.
	Seed int64
}

// DefaultOptions returns Options for a DefaultWidth by DefaultHeight grid
// with the epicenter at the grid center and a fresh seed on every run.
func DefaultOptions() Options {
	return Options{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		EpicenterX: DefaultWidth / 2,
		EpicenterY: DefaultHeight / 2,
		Chance:     DefaultChance,
		MaxHeads:   DefaultMaxHeads,
	}
}

// Validate returns nil when the options describe a runnable configuration,
// or an error wrapping ErrInvalidConfiguration naming the first violation.
func (o Options) Validate() error {
	if o.Width < BigCellSize || o.Height < BigCellSize {
		return fmt.Errorf("%w: grid %dx%d cannot hold a %dx%d big cell",
			ErrInvalidConfiguration, o.Width, o.Height, BigCellSize, BigCellSize)
	}
	if o.EpicenterX < 0 || o.EpicenterX > o.Width-BigCellSize ||
		o.EpicenterY < 0 || o.EpicenterY > o.Height-BigCellSize {
		return fmt.Errorf("%w: epicenter (%d,%d) cannot anchor a big cell on a %dx%d grid",
			ErrInvalidConfiguration, o.EpicenterX, o.EpicenterY, o.Width, o.Height)
	}
	if o.Chance < 0 || o.Chance > 1 {
		return fmt.Errorf("%w: chance %v is outside [0, 1]", ErrInvalidConfiguration, o.Chance)
	}
	if o.MaxHeads < 1 {
		return fmt.Errorf("%w: max heads %d, need at least 1", ErrInvalidConfiguration, o.MaxHeads)
	}
	return nil
}
