package rooms

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rooms/internal/telemetry"
)

// Generate runs one complete generation and returns the finished layout.
// It validates opts, carves the epicenter big cell, drives the head
// population to extinction and assembles the resulting rooms, doors and
// treasure sites. The only error callers see is ErrInvalidConfiguration;
// placement rejections during the walk are absorbed by the heads.
func Generate(ctx context.Context, opts Options) (*Layout, error) {
	tracer := telemetry.Tracer("generator")
	ctx, span := tracer.Start(ctx, "layout.generate")
	defer span.End()

	startTime := time.Now()

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rng, seed := newRand(opts.Seed)
	grid := NewGrid(opts.Width, opts.Height)
	drs := newDoors(opts.Width, opts.Height)

	// Seed the population and walk it to extinction
	ctrl := newController(grid, drs, rng, opts)
	if err := ctrl.start(Point{X: opts.EpicenterX, Y: opts.EpicenterY}); err != nil {
		return nil, err
	}
	ctrl.run()

	layout := &Layout{
		Width:           opts.Width,
		Height:          opts.Height,
		Cells:           grid.cells,
		Corners:         grid.corners,
		HorizontalDoors: drs.horizontal,
		VerticalDoors:   drs.vertical,
		Rooms:           ctrl.placed,
		Treasures:       ctrl.treasures.Positions(),
		Epicenter:       Point{X: opts.EpicenterX, Y: opts.EpicenterY},
		Seed:            seed,
	}

	// Record telemetry
	span.SetAttributes(
		attribute.Int("layout.width", layout.Width),
		attribute.Int("layout.height", layout.Height),
		attribute.Int("layout.room_count", layout.RoomCount()),
		attribute.Int("layout.door_count", drs.count),
		attribute.Int("layout.treasure_count", layout.TreasureCount()),
		attribute.Int("layout.head_count", ctrl.spawned),
		attribute.Int64("layout.seed", seed),
		attribute.Int64("layout.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return layout, nil
}
