// Package main is the entry point for roomsgen, a command line front end for
// the rooms layout generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/rooms"
	"github.com/samdwyer/rooms/internal/preset"
	"github.com/samdwyer/rooms/internal/telemetry"
)

var (
	width      = flag.Int("width", rooms.DefaultWidth, "grid width in common cells")
	height     = flag.Int("height", rooms.DefaultHeight, "grid height in common cells")
	epiX       = flag.Int("x", -1, "epicenter column (default: grid center)")
	epiY       = flag.Int("y", -1, "epicenter row (default: grid center)")
	chance     = flag.Float64("chance", rooms.DefaultChance, "continuation chance at dead ends, in [0, 1]")
	maxHeads   = flag.Int("heads", rooms.DefaultMaxHeads, "total head budget for the run")
	seed       = flag.Int64("seed", 0, "random seed (0 draws one and echoes it)")
	presetName = flag.String("preset", "", "generate from a named preset instead of the size flags")
	list       = flag.Bool("list", false, "list available presets and exit")
)

func main() {
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_ROOMS_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generation will run without observability")
		// Continue without telemetry - the generator still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry, err := preset.LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}

	if *list {
		printPresets(registry)
		return
	}

	opts, err := resolveOptions(registry)
	if err != nil {
		log.Fatalf("%v", err)
	}

	layout, err := rooms.Generate(ctx, opts)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	fmt.Print(layout)
	fmt.Printf("%d rooms, %d doors, %d treasure sites (seed %d)\n",
		layout.RoomCount(), layout.DoorCount(), layout.TreasureCount(), layout.Seed)
	fmt.Printf("treasures:%s\n", formatPoints(layout.Treasures))
}

// resolveOptions builds generator options from the preset flag or from the
// individual size flags, with the seed flag applied on top of either.
func resolveOptions(registry *preset.Registry) (rooms.Options, error) {
	var opts rooms.Options
	if *presetName != "" {
		def := registry.GetByName(*presetName)
		if def == nil {
			return rooms.Options{}, fmt.Errorf("unknown preset %q (available: %s)",
				*presetName, strings.Join(registry.Names(), ", "))
		}
		opts = def.Options()
	} else {
		opts = rooms.Options{
			Width:      *width,
			Height:     *height,
			EpicenterX: *epiX,
			EpicenterY: *epiY,
			Chance:     *chance,
			MaxHeads:   *maxHeads,
		}
		if opts.EpicenterX < 0 {
			opts.EpicenterX = opts.Width / 2
		}
		if opts.EpicenterY < 0 {
			opts.EpicenterY = opts.Height / 2
		}
	}
	opts.Seed = *seed
	return opts, nil
}

// printPresets writes one line per preset to stdout.
func printPresets(registry *preset.Registry) {
	for _, def := range registry.All() {
		fmt.Printf("%-10s %3dx%-3d chance %.2f, heads %d   %s\n",
			def.Name, def.Width, def.Height, def.Chance, def.MaxHeads, def.Description)
	}
}

// formatPoints renders treasure positions as " (x,y) (x,y) ...".
func formatPoints(points []rooms.Point) string {
	var b strings.Builder
	for _, p := range points {
		fmt.Fprintf(&b, " (%d,%d)", p.X, p.Y)
	}
	return b.String()
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_ROOMS_API_KEY")
	dataset := os.Getenv("HONEYCOMB_ROOMS_DATASET")
	if dataset == "" {
		dataset = "rooms" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
